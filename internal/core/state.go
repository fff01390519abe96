package core

import "encoding/json"

// State is one user's complete goal-tracking state: the goal ledger plus
// the streak tracker. It is an explicit container — loaded from the
// persistent store per request, mutated, then saved — never an ambient
// global. It coordinates the one cross-component rule: a false→true
// transition of the met flag is reported to the tracker with today's date.
type State struct {
	Ledger  Ledger  `json:"ledger"`
	Tracker Tracker `json:"tracker"`
}

// NewState returns the default empty state used when nothing is stored.
func NewState() *State {
	return &State{}
}

// IncrementProgress forwards to the ledger and, when the goal set just
// became fully met, records the completion with the tracker.
func (s *State) IncrementProgress(id string, amount int, today string) (becameMet bool) {
	if s.Ledger.IncrementProgress(id, amount) {
		s.Tracker.OnGoalSetCompleted(today)
		return true
	}
	return false
}

// CheckAndUpdateStreak is the day-boundary check. It must run before any
// goal read or mutation in a session. Two independent checks, always both,
// in this order: zero the streak if a day elapsed with no completion, then
// reset daily progress if the last recorded completion is not from today.
func (s *State) CheckAndUpdateStreak(today string) {
	s.Tracker.CheckStreak(today)
	if last, ok := s.Tracker.LastHistoryDate(); !ok || last != today {
		s.Ledger.ResetDailyProgress()
	}
}

// Encode serializes the state to the opaque blob stored under the user's
// key in the persistent store.
func (s *State) Encode() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeState restores a state from a stored blob.
func DecodeState(blob string) (*State, error) {
	var s State
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		return nil, err
	}
	return &s, nil
}
