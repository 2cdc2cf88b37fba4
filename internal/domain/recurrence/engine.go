package recurrence

import (
	"fmt"
	"time"

	"salon-scheduling/internal/pkg/clock"
)

// Engine expands recurrence patterns into bounded, deterministic occurrence
// sequences. It performs no I/O and is safe for concurrent use.
type Engine struct {
	clock clock.Clock
}

func NewEngine(clk clock.Clock) *Engine {
	if clk == nil {
		clk = clock.NewSystemClock()
	}
	return &Engine{clock: clk}
}

// NextOccurrence advances current by one step of the pattern.
func (e *Engine) NextOccurrence(current time.Time, p Pattern) time.Time {
	switch p.Type {
	case TypeDaily:
		return current.AddDate(0, 0, p.interval())
	case TypeWeekly:
		return current.AddDate(0, 0, 7*p.interval())
	case TypeBiweekly:
		return current.AddDate(0, 0, 14)
	case TypeMonthly:
		return current.AddDate(0, p.interval(), 0)
	default:
		return current
	}
}

// GenerateOccurrences expands the pattern starting at start. The start date is
// always the first occurrence. Generation stops when the next date would fall
// after the end date or the occurrence limit is reached, and the final element
// is flagged IsLast.
func (e *Engine) GenerateOccurrences(start time.Time, p Pattern) []Occurrence {
	if p.Type == TypeNone || !p.Type.IsValid() {
		return []Occurrence{{Date: start, Index: 0, IsLast: true}}
	}

	limit := p.limit()
	occurrences := make([]Occurrence, 0, limit)
	current := start
	for index := 0; index < limit; index++ {
		occurrences = append(occurrences, Occurrence{Date: current, Index: index})

		next := e.NextOccurrence(current, p)
		if p.EndDate != nil && next.After(*p.EndDate) {
			break
		}
		current = next
	}

	if n := len(occurrences); n > 0 {
		occurrences[n-1].IsLast = true
	}
	return occurrences
}

// ValidatePattern reports the first violated rule.
func (e *Engine) ValidatePattern(p Pattern) ValidationResult {
	if !p.Type.IsValid() {
		return invalid(ErrUnknownType)
	}
	if p.Type == TypeNone {
		return valid()
	}
	if p.Count == nil && p.EndDate == nil {
		return invalid(ErrMissingBound)
	}
	if p.Count != nil {
		if *p.Count > MaxOccurrences {
			return invalid(ErrCountExceedsMax)
		}
		if *p.Count < 1 {
			return invalid(ErrCountNotPositive)
		}
	}
	if p.EndDate != nil && !p.EndDate.After(e.clock.Now()) {
		return invalid(ErrEndDateNotFuture)
	}
	if p.Interval < 1 {
		return invalid(ErrIntervalTooSmall)
	}
	for _, day := range p.DaysOfWeek {
		if day < time.Sunday || day > time.Saturday {
			return invalid(ErrInvalidDayOfWeek)
		}
	}
	return valid()
}

// CalculateEndDate returns the explicit end date when set, otherwise the date of
// the last generated occurrence. It returns nil for non-recurring or unbounded
// patterns.
func (e *Engine) CalculateEndDate(start time.Time, p Pattern) *time.Time {
	if p.Type == TypeNone {
		return nil
	}
	if p.EndDate != nil {
		end := *p.EndDate
		return &end
	}
	if p.Count == nil {
		return nil
	}
	occurrences := e.GenerateOccurrences(start, p)
	if len(occurrences) == 0 {
		return nil
	}
	last := occurrences[len(occurrences)-1].Date
	return &last
}

// IsDateInPattern matches by calendar date; time of day is ignored except for
// non-recurring patterns, which require the exact instant.
func (e *Engine) IsDateInPattern(date, start time.Time, p Pattern) bool {
	if p.Type == TypeNone {
		return date.Equal(start)
	}
	loc := start.Location()
	for _, o := range e.GenerateOccurrences(start, p) {
		if sameDate(o.Date, date, loc) {
			return true
		}
	}
	return false
}

// ExpandWithExclusions drops occurrences falling on any excluded calendar date.
// Indexes keep their position in the unfiltered series; IsLast marks the last
// remaining occurrence.
func (e *Engine) ExpandWithExclusions(start time.Time, p Pattern, excluded []time.Time) []Occurrence {
	loc := start.Location()
	all := e.GenerateOccurrences(start, p)
	kept := make([]Occurrence, 0, len(all))
	for _, o := range all {
		if isExcluded(o.Date, excluded, loc) {
			continue
		}
		o.IsLast = false
		kept = append(kept, o)
	}
	if n := len(kept); n > 0 {
		kept[n-1].IsLast = true
	}
	return kept
}

func (e *Engine) Description(p Pattern) string {
	n := p.interval()
	switch p.Type {
	case TypeNone:
		return "No recurrence"
	case TypeDaily:
		return plural(n, "Daily", "days")
	case TypeWeekly:
		return plural(n, "Weekly", "weeks")
	case TypeBiweekly:
		return "Every 2 weeks"
	case TypeMonthly:
		return plural(n, "Monthly", "months")
	default:
		return "Unknown recurrence"
	}
}

func plural(n int, single, unit string) string {
	if n == 1 {
		return single
	}
	return fmt.Sprintf("Every %d %s", n, unit)
}

func isExcluded(date time.Time, excluded []time.Time, loc *time.Location) bool {
	for _, ex := range excluded {
		if sameDate(date, ex, loc) {
			return true
		}
	}
	return false
}

func sameDate(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
