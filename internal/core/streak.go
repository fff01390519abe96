package core

import "github.com/lockgoal/lockgoal-api/internal/clock"

// HistoryEntry records one completion event. One entry per completion,
// not one per day elapsed; entries are appended in chronological order.
type HistoryEntry struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// Tracker derives the continuity streak from completion events. Dates are
// calendar-day strings from the clock package; the tracker never reads the
// wall clock itself.
type Tracker struct {
	Streak            int            `json:"streak"`
	LastCompletedDate string         `json:"lastCompletedDate,omitempty"`
	History           []HistoryEntry `json:"history"`
}

// OnGoalSetCompleted records that all goals were met today. Called exactly
// when the met flag flips from false to true. Completing on the day after
// the previous completion extends the streak; a repeat signal on the same
// day leaves it unchanged; anything else starts the streak over at 1.
// Completion is sticky for the day — there is no un-complete transition.
func (t *Tracker) OnGoalSetCompleted(today string) {
	switch t.LastCompletedDate {
	case clock.Yesterday(today):
		t.Streak++
	case today:
		// already recorded today
	default:
		t.Streak = 1
	}
	t.LastCompletedDate = today
	t.History = append(t.History, HistoryEntry{Date: today, Completed: true})
}

// CheckStreak zeroes the streak when a full day has elapsed without a
// completion. LastCompletedDate and History are left untouched.
func (t *Tracker) CheckStreak(today string) {
	if t.LastCompletedDate != today && t.LastCompletedDate != clock.Yesterday(today) {
		t.Streak = 0
	}
}

// LastHistoryDate returns the date of the most recent history entry by
// array order. History is append-only and chronological, so the last
// element is the newest; no max-date scan is needed.
func (t *Tracker) LastHistoryDate() (string, bool) {
	if len(t.History) == 0 {
		return "", false
	}
	return t.History[len(t.History)-1].Date, true
}
