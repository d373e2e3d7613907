package model

import "time"

// Report is the complete output of one analysis run.
type Report struct {
	RunID       string
	Base        string
	Target      string
	Days        int
	GeneratedAt time.Time
	Series      DerivedSeries
	Stats       Statistics
	Insights    []Insight
	Failures    []UpstreamError
}
