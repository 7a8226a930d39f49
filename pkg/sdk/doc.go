// Package faunadex provides a Go client for the faunadex animal
// question-answering API.
//
//	client := faunadex.New("http://localhost:5000",
//	    faunadex.WithAPIKey("secret"),
//	)
//	answer, err := client.Query(ctx, "Which animals are wild?")
//	if err != nil {
//	    var apiErr *faunadex.APIError
//	    if errors.As(err, &apiErr) {
//	        log.Printf("server said %d: %s", apiErr.StatusCode, apiErr.Message)
//	    }
//	}
//	fmt.Println(answer.Message)
package faunadex
