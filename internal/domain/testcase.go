package domain

// TestCase is a normalized per-case record extracted from the results file
type TestCase struct {
	Name      string   `json:"name"`
	Classname string   `json:"classname"`
	Result    string   `json:"result"`
	Time      *float64 `json:"time"` // seconds, rounded to 3 decimals; nil when the report omits it
	Message   string   `json:"message,omitempty"`
	Details   string   `json:"details,omitempty"`
}

// Failed reports whether the case ended in a failure or error
func (tc TestCase) Failed() bool {
	return tc.Result == ResultFailure || tc.Result == ResultError
}

// Rendered status values for TestCase.Result
const (
	ResultPassed  = "passed"
	ResultFailure = "failure"
	ResultError   = "error"
	ResultSkipped = "skipped"
)
