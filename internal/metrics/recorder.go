// Package metrics records rollover activity.
package metrics

import "time"

// Recorder receives rollover observations. Implementations must be safe
// for concurrent use.
type Recorder interface {
	IncRolloverRun(result ResultLabel)
	AddDaysProcessed(n int)
	AddTasksArchived(n int)
	ObserveRolloverDuration(d time.Duration)
	SetWatermark(date time.Time)
}

// ResultLabel classifies a catch-up run
type ResultLabel string

const (
	ResultNoop     ResultLabel = "noop"      // already caught up
	ResultInit     ResultLabel = "init"      // watermark absent
	ResultRepaired ResultLabel = "repaired"  // watermark corrupt and reset
	ResultArchived ResultLabel = "caught_up" // one or more days processed
	ResultError    ResultLabel = "error"
)

// NoopRecorder discards everything
type NoopRecorder struct{}

func (NoopRecorder) IncRolloverRun(ResultLabel)            {}
func (NoopRecorder) AddDaysProcessed(int)                  {}
func (NoopRecorder) AddTasksArchived(int)                  {}
func (NoopRecorder) ObserveRolloverDuration(time.Duration) {}
func (NoopRecorder) SetWatermark(time.Time)                {}
