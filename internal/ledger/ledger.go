package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads the ledger from path. A missing file yields an empty
// ledger; any other read or parse failure is fatal to the command.
func Load(path string) (*Ledger, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Ledger{Goals: Goals{}, path: path}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	var l Ledger
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing data file %s: %w", path, err)
	}
	if l.Goals == nil {
		l.Goals = Goals{}
	}
	l.path = path
	return &l, nil
}

// Path returns the backing file path.
func (l *Ledger) Path() string {
	return l.path
}

// Save rewrites the whole ledger. The document is written to a
// temporary file first and renamed into place, so a failed write
// leaves the previous file intact.
func (l *Ledger) Save() error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("marshaling ledger: %w", err)
	}

	dir := filepath.Dir(l.path)
	tmp, err := os.CreateTemp(dir, ".deepwork-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing data file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing data file: %w", err)
	}
	if err := os.Rename(tmp.Name(), l.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing data file: %w", err)
	}
	return nil
}

// Begin records a pending session starting at now. Only one session
// may be in progress at a time.
func (l *Ledger) Begin(category string, now time.Time) (*Pending, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, errors.New("category must not be empty")
	}
	if l.Pending != nil {
		return nil, fmt.Errorf("%w (category %q, started %s)",
			ErrSessionActive, l.Pending.Category, l.Pending.StartTime.Format(time.RFC3339))
	}
	l.Pending = &Pending{StartTime: now, Category: category}
	return l.Pending, nil
}

// End completes the pending session at now, appending it to the
// ledger. The ledger is left untouched on any validation failure.
func (l *Ledger) End(description string, now time.Time) (*Session, error) {
	if l.Pending == nil {
		return nil, ErrNoActiveSession
	}
	if now.Before(l.Pending.StartTime) {
		return nil, fmt.Errorf("%w: end time %s precedes start time %s",
			ErrInvalidSession, now.Format(time.RFC3339), l.Pending.StartTime.Format(time.RFC3339))
	}

	s := Session{
		StartTime:   l.Pending.StartTime,
		EndTime:     now,
		Duration:    round2(now.Sub(l.Pending.StartTime).Hours()),
		Category:    l.Pending.Category,
		Description: description,
	}
	l.Sessions = append(l.Sessions, s)
	l.Pending = nil
	return &s, nil
}

// TotalTime sums all session durations.
func (l *Ledger) TotalTime() float64 {
	var total float64
	for _, s := range l.Sessions {
		total += s.Duration
	}
	return round2(total)
}

// SummaryAt aggregates the sessions whose start date falls within
// period, evaluated relative to now. Weeks begin Monday.
func (l *Ledger) SummaryAt(now time.Time, period Period) Summary {
	sum := Summary{CategoryTime: map[string]float64{}}
	for _, s := range l.Sessions {
		if !inPeriod(s.StartTime, now, period) {
			continue
		}
		sum.TotalTime += s.Duration
		sum.CategoryTime[s.Category] += s.Duration
		sum.NumSessions++
	}
	sum.TotalTime = round2(sum.TotalTime)
	for c, h := range sum.CategoryTime {
		sum.CategoryTime[c] = round2(h)
	}
	return sum
}

// Summary is SummaryAt relative to the current time.
func (l *Ledger) Summary(period Period) Summary {
	return l.SummaryAt(time.Now(), period)
}

func inPeriod(start, now time.Time, period Period) bool {
	switch period {
	case PeriodDaily:
		y1, m1, d1 := start.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case PeriodWeekly:
		day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		return !day.Before(weekStart(now))
	default:
		return true
	}
}

// weekStart returns midnight on the Monday of now's week.
func weekStart(now time.Time) time.Time {
	offset := (int(now.Weekday()) + 6) % 7
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, -offset)
}

// SetGoal upserts the weekly goal for a category. The last write for
// a category wins.
func (l *Ledger) SetGoal(category string, hoursPerWeek float64) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return fmt.Errorf("%w: category must not be empty", ErrInvalidGoal)
	}
	if hoursPerWeek < 0 {
		return fmt.Errorf("%w: hours per week must be zero or greater", ErrInvalidGoal)
	}
	if l.Goals == nil {
		l.Goals = Goals{}
	}
	l.Goals[category] = hoursPerWeek
	return nil
}

// GoalProgressAt reports this week's progress for every goal, sorted
// by category. A zero-hour goal reports 0% rather than dividing by
// zero. Callers distinguish "no goals configured" via len(l.Goals).
func (l *Ledger) GoalProgressAt(now time.Time) []GoalProgress {
	weekly := l.SummaryAt(now, PeriodWeekly)

	categories := make([]string, 0, len(l.Goals))
	for c := range l.Goals {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	progress := make([]GoalProgress, 0, len(categories))
	for _, c := range categories {
		goal := l.Goals[c]
		actual := weekly.CategoryTime[c]
		var pct float64
		if goal > 0 {
			pct = actual / goal * 100
		}
		progress = append(progress, GoalProgress{
			Category:    c,
			GoalHours:   goal,
			ActualHours: actual,
			ProgressPct: pct,
		})
	}
	return progress
}

// ProductivityScoreAt is this week's total hours plus half a point per
// session. A deliberately simple linear heuristic, not a tunable model.
func (l *Ledger) ProductivityScoreAt(now time.Time) float64 {
	weekly := l.SummaryAt(now, PeriodWeekly)
	return round2(weekly.TotalTime + 0.5*float64(weekly.NumSessions))
}

// ExportCSV writes all sessions to path as CSV, one row per session
// in ledger order.
func (l *Ledger) ExportCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"start_time", "end_time", "duration", "category", "description"}); err != nil {
		f.Close()
		return fmt.Errorf("writing export header: %w", err)
	}
	for _, s := range l.Sessions {
		row := []string{
			s.StartTime.Format(time.RFC3339),
			s.EndTime.Format(time.RFC3339),
			strconv.FormatFloat(s.Duration, 'f', 2, 64),
			s.Category,
			s.Description,
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("writing export row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("writing export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
