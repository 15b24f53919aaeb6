package audit

import "time"

// Entry is a single audit record: one executed pipeline.
type Entry struct {
	Seq      uint64    `json:"seq"`
	Time     time.Time `json:"ts"`
	PrevHash string    `json:"prev_hash"`
	Session  string    `json:"session"`         // session id, one per process
	Line     string    `json:"line"`            // raw input line
	Verbs    []string  `json:"verbs"`           // canonical verb of each stage
	Tiers    []string  `json:"tiers"`           // tier of each stage
	Cwd      string    `json:"cwd"`             // store-relative working directory
	Error    string    `json:"error,omitempty"` // error message if the pipeline failed
	Duration float64   `json:"duration_ms"`     // execution time in milliseconds
	Hash     string    `json:"hash"`            // SHA-256 of this entry (with hash field empty)
}
