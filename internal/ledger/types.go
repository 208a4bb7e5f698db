package ledger

import (
	"errors"
	"time"
)

// Session is one completed interval of focused work. Sessions are
// immutable once appended to the ledger.
type Session struct {
	StartTime   time.Time `yaml:"start_time"`
	EndTime     time.Time `yaml:"end_time"`
	Duration    float64   `yaml:"duration"`
	Category    string    `yaml:"category"`
	Description string    `yaml:"description"`
}

// Pending is a started-but-not-yet-ended session. It is persisted so
// that 'start' and 'end' work across separate process invocations.
type Pending struct {
	StartTime time.Time `yaml:"start_time"`
	Category  string    `yaml:"category"`
}

// Goals maps a category to its target hours per week.
type Goals map[string]float64

// Ledger is the full persisted state: all completed sessions in
// insertion order, the optional pending session, and the weekly goals.
type Ledger struct {
	Sessions []Session `yaml:"sessions"`
	Pending  *Pending  `yaml:"pending,omitempty"`
	Goals    Goals     `yaml:"goals"`

	path string
}

var (
	ErrNoActiveSession = errors.New("no active session to end")
	ErrSessionActive   = errors.New("a session is already in progress")
	ErrInvalidSession  = errors.New("invalid session")
	ErrInvalidGoal     = errors.New("invalid goal")
)

// Period selects which sessions a summary covers.
type Period string

const (
	PeriodAll    Period = "all"
	PeriodDaily  Period = "daily"
	PeriodWeekly Period = "weekly"
)

// ParsePeriod validates a user-supplied period string.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodAll, PeriodDaily, PeriodWeekly:
		return Period(s), nil
	}
	return "", errors.New("invalid period " + s + " (expected daily, weekly, or all)")
}

// Summary aggregates the sessions that fall within a period.
type Summary struct {
	TotalTime    float64
	CategoryTime map[string]float64
	NumSessions  int
}

// GoalProgress reports weekly progress toward one category goal.
type GoalProgress struct {
	Category    string
	GoalHours   float64
	ActualHours float64
	ProgressPct float64
}
