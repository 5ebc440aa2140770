package constants

import "time"

const (
	// Countdown defaults
	DefaultTargetSeconds = 5
	TickInterval         = 1 * time.Second

	// Wall clock readout refresh
	ClockRefreshInterval = 1 * time.Second

	// The cue is stopped and rewound this long after it starts, whatever the clip length
	CueStopAfter = 1 * time.Second

	// Display layouts
	DateLayout    = "2006/01/02"
	Time24Layout  = "15:04:05"
	Time12Layout  = "03:04:05 PM"
	LogTimeLayout = "2006/1/2 15:04:05"
)

const (
	// Storage key holding the JSON encoded start log
	LogStorageKey = "timerLogs"

	// Text of a log entry, followed by the timestamp
	LogStartedPrefix = "Timer started - "
)
