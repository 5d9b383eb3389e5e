package screenshot

import (
	"time"
)

// CaptureStats summarises capture behaviour for instrumentation.
type CaptureStats struct {
	Requests     uint64
	Captures     uint64 // PNG written successfully
	Rejected     uint64 // refused by admission control
	Aborted      uint64 // failed before a worker was started
	Failed       uint64 // worker failed to write the PNG
	Reallocs     uint64
	BytesWritten uint64
	AvgEncode    time.Duration
	LastFrame    int
	LastPath     string
	LastCapture  time.Time
	State        CaptureState
}
