package core

import "github.com/google/uuid"

// Ledger owns the ordered set of daily goals and the derived "all goals
// met" flag. It does no I/O and never reads the clock; callers persist it
// after each mutation and supply dates where needed.
//
// Every operation is total: an unknown goal id is a silent no-op and
// out-of-range numeric inputs are clamped, never rejected.
type Ledger struct {
	Goals []Goal `json:"dailyGoals"`
	Met   bool   `json:"isGoalMet"`
}

// GoalSeed is the input shape for creating goals in bulk.
type GoalSeed struct {
	Title  string `json:"title"`
	Target int    `json:"target"`
	Type   string `json:"type,omitempty"`
}

// GoalUpdate carries the editable fields of a goal; nil means unchanged.
type GoalUpdate struct {
	Title  *string `json:"title"`
	Target *int    `json:"target"`
}

// AddGoal appends a new goal with zero progress. A target below 1 is
// clamped to 1. Returns the created goal.
func (l *Ledger) AddGoal(title string, target int, goalType string) Goal {
	g := Goal{
		ID:     uuid.NewString(),
		Title:  title,
		Type:   NormalizeType(goalType),
		Target: clampTarget(target),
	}
	l.Goals = append(l.Goals, g)
	l.recompute()
	return g
}

// UpdateGoal applies the provided fields to the matching goal. When the
// target drops below the current progress, progress is clamped down so it
// never exceeds the target. Unknown id is a no-op.
func (l *Ledger) UpdateGoal(id string, upd GoalUpdate) {
	for i := range l.Goals {
		if l.Goals[i].ID != id {
			continue
		}
		if upd.Title != nil {
			l.Goals[i].Title = *upd.Title
		}
		if upd.Target != nil {
			l.Goals[i].Target = clampTarget(*upd.Target)
			if l.Goals[i].Progress > l.Goals[i].Target {
				l.Goals[i].Progress = l.Goals[i].Target
			}
		}
		break
	}
	l.recompute()
}

// RemoveGoal deletes the goal with the given id, preserving the order of
// the rest. Unknown id is a no-op.
func (l *Ledger) RemoveGoal(id string) {
	for i := range l.Goals {
		if l.Goals[i].ID == id {
			l.Goals = append(l.Goals[:i], l.Goals[i+1:]...)
			break
		}
	}
	l.recompute()
}

// IncrementProgress adds amount to the goal's progress, clamped to
// [0, target]. It reports whether the "all goals met" flag flipped from
// false to true, which is the caller's cue to record a completion.
// Unknown id is a no-op.
func (l *Ledger) IncrementProgress(id string, amount int) (becameMet bool) {
	wasMet := l.Met
	for i := range l.Goals {
		if l.Goals[i].ID != id {
			continue
		}
		p := l.Goals[i].Progress + amount
		if p > l.Goals[i].Target {
			p = l.Goals[i].Target
		}
		if p < 0 {
			p = 0
		}
		l.Goals[i].Progress = p
		break
	}
	l.recompute()
	return l.Met && !wasMet
}

// ResetDailyProgress zeroes every goal's progress for a new day. Streak
// state is untouched; only the day-boundary check calls this.
func (l *Ledger) ResetDailyProgress() {
	for i := range l.Goals {
		l.Goals[i].Progress = 0
	}
	l.Met = false
}

// SetGoals replaces the whole goal set with freshly created goals. This is
// the destructive bulk-replace used by onboarding; prior goals and their
// progress are discarded.
func (l *Ledger) SetGoals(seeds []GoalSeed) {
	goals := make([]Goal, 0, len(seeds))
	for _, s := range seeds {
		goals = append(goals, Goal{
			ID:     uuid.NewString(),
			Title:  s.Title,
			Type:   NormalizeType(s.Type),
			Target: clampTarget(s.Target),
		})
	}
	l.Goals = goals
	l.Met = false
}

// Find returns the goal with the given id, if present.
func (l *Ledger) Find(id string) (Goal, bool) {
	for _, g := range l.Goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}

// recompute derives Met: non-empty set and every goal at target.
func (l *Ledger) recompute() {
	if len(l.Goals) == 0 {
		l.Met = false
		return
	}
	for _, g := range l.Goals {
		if !g.Met() {
			l.Met = false
			return
		}
	}
	l.Met = true
}

func clampTarget(target int) int {
	if target < 1 {
		return 1
	}
	return target
}
