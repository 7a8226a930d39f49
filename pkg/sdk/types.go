package faunadex

// Animal is one catalog record as returned by the /query endpoint.
// IsWild is "yes"/"no" and only present in full-catalog answers.
type Animal struct {
	Creature     string  `json:"creature"`
	IsWild       string  `json:"is_wild,omitempty"`
	Trainability float64 `json:"trainability"`
	Endangerment float64 `json:"endangered"`
}

// Answer is the structured response to a query.
type Answer struct {
	Intent  string   `json:"intent"`
	Animals []Animal `json:"animals"`
	Message string   `json:"message"`
}

// Health is the service liveness report from /health.
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
