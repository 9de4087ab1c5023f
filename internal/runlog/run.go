package runlog

import (
	"fmt"
	"time"
)

// Run is one recorded run.
type Run struct {
	Distance float64
	Date     time.Time
}

// NewRun returns a Run dated on the calendar day of date.
func NewRun(distance float64, date time.Time) Run {
	return Run{Distance: distance, Date: Day(date)}
}

func (r Run) String() string {
	return fmt.Sprintf("<Run %g miles %s>", r.Distance, r.Date.Format(time.DateOnly))
}

// Goal is a target distance for one day. A zero distance means no goal was set.
type Goal struct {
	Distance float64
	Date     time.Time
}

// NewGoal returns a Goal dated on the calendar day of date.
func NewGoal(distance float64, date time.Time) Goal {
	return Goal{Distance: distance, Date: Day(date)}
}

// IsSet reports whether the goal carries a real target.
func (g Goal) IsSet() bool {
	return g.Distance > 0
}

func (g Goal) hasDate() bool {
	return !g.Date.IsZero()
}

func (g Goal) String() string {
	return fmt.Sprintf("<Goal %g miles %s>", g.Distance, g.Date.Format(time.DateOnly))
}
