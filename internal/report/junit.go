package report

import (
	"encoding/xml"

	"cotb/internal/domain"
)

// Report is an xUnit results document. The harness may emit either a
// <testsuites> root or a single bare <testsuite>; the loader normalizes both
// into this shape.
type Report struct {
	XMLName xml.Name     `xml:"testsuites"`
	Suites  []*TestSuite `xml:"testsuite"`
}

// TestSuite carries the suite-level aggregate counters. The counters are the
// authoritative totals: they are never recomputed from the listed cases, even
// when the two disagree.
type TestSuite struct {
	XMLName  xml.Name `xml:"testsuite"`
	Name     string   `xml:"name,attr"`
	Tests    int      `xml:"tests,attr"`
	Errors   int      `xml:"errors,attr"`
	Failures int      `xml:"failures,attr"`
	Skipped  int      `xml:"skipped,attr"`
	Time     float64  `xml:"time,attr"`

	Cases []*Case `xml:"testcase"`
}

// Case is one testcase element
type Case struct {
	Name      string   `xml:"name,attr"`
	Classname string   `xml:"classname,attr"`
	Time      *float64 `xml:"time,attr"`

	Skipped *Outcome `xml:"skipped"`
	Failure *Outcome `xml:"failure"`
	Error   *Outcome `xml:"error"`
}

// Outcome is a status-bearing child of a testcase
type Outcome struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Text    string `xml:",chardata"`
}

// Status renders the case outcome as a status string
func (c *Case) Status() string {
	switch {
	case c.Error != nil:
		return domain.ResultError
	case c.Failure != nil:
		return domain.ResultFailure
	case c.Skipped != nil:
		return domain.ResultSkipped
	}
	return domain.ResultPassed
}

func (c *Case) outcome() *Outcome {
	switch {
	case c.Error != nil:
		return c.Error
	case c.Failure != nil:
		return c.Failure
	case c.Skipped != nil:
		return c.Skipped
	}
	return nil
}

// Tests returns the total test count across suites
func (r *Report) Tests() int {
	total := 0
	for _, s := range r.Suites {
		if s != nil {
			total += s.Tests
		}
	}
	return total
}

// Errors returns the total error count across suites
func (r *Report) Errors() int {
	total := 0
	for _, s := range r.Suites {
		if s != nil {
			total += s.Errors
		}
	}
	return total
}

// Failures returns the total failure count across suites
func (r *Report) Failures() int {
	total := 0
	for _, s := range r.Suites {
		if s != nil {
			total += s.Failures
		}
	}
	return total
}

// Skipped returns the total skipped count across suites
func (r *Report) Skipped() int {
	total := 0
	for _, s := range r.Suites {
		if s != nil {
			total += s.Skipped
		}
	}
	return total
}

// Time returns the total reported time in seconds across suites
func (r *Report) Time() float64 {
	total := 0.0
	for _, s := range r.Suites {
		if s != nil {
			total += s.Time
		}
	}
	return total
}
