package wizard

import "time"

// Scheduler runs a function after a delay
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a pending scheduled call
type Timer interface {
	Stop() bool
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
