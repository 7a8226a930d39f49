package domain

// Answer is the structured result of one query: the resolved intent, the
// (possibly truncated) record sequence, and a human-readable message.
// Transports decide how much of each record to expose per intent.
type Answer struct {
	Intent  Intent
	Animals []Animal
	Message string
}
