package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstCompletionStartsStreak(t *testing.T) {
	var tr Tracker

	tr.OnGoalSetCompleted("2024-01-01")

	assert.Equal(t, 1, tr.Streak)
	assert.Equal(t, "2024-01-01", tr.LastCompletedDate)
	require.Len(t, tr.History, 1)
	assert.Equal(t, HistoryEntry{Date: "2024-01-01", Completed: true}, tr.History[0])
}

func TestCompletionOnConsecutiveDayExtendsStreak(t *testing.T) {
	tr := Tracker{Streak: 3, LastCompletedDate: "2024-01-01"}

	tr.OnGoalSetCompleted("2024-01-02")

	assert.Equal(t, 4, tr.Streak)
	assert.Equal(t, "2024-01-02", tr.LastCompletedDate)
}

func TestCompletionAfterGapRestartsStreak(t *testing.T) {
	tr := Tracker{Streak: 9, LastCompletedDate: "2024-01-01"}

	tr.OnGoalSetCompleted("2024-01-05")

	assert.Equal(t, 1, tr.Streak)
	assert.Equal(t, "2024-01-05", tr.LastCompletedDate)
}

func TestRepeatCompletionSameDayKeepsStreak(t *testing.T) {
	var tr Tracker

	tr.OnGoalSetCompleted("2024-01-02")
	tr.OnGoalSetCompleted("2024-01-02")

	assert.Equal(t, 1, tr.Streak)
	// Each completion event still appends to history.
	assert.Len(t, tr.History, 2)
}

func TestCompletionAcrossMonthBoundary(t *testing.T) {
	tr := Tracker{Streak: 1, LastCompletedDate: "2024-01-31"}

	tr.OnGoalSetCompleted("2024-02-01")

	assert.Equal(t, 2, tr.Streak)
}

func TestCheckStreakZeroesAfterMissedDay(t *testing.T) {
	tr := Tracker{
		Streak:            5,
		LastCompletedDate: "2024-01-01",
		History:           []HistoryEntry{{Date: "2024-01-01", Completed: true}},
	}

	tr.CheckStreak("2024-01-05")

	assert.Equal(t, 0, tr.Streak)
	assert.Equal(t, "2024-01-01", tr.LastCompletedDate, "last completed date is not cleared")
	assert.Len(t, tr.History, 1, "history is not cleared")
}

func TestCheckStreakKeepsStreakForYesterday(t *testing.T) {
	tr := Tracker{Streak: 5, LastCompletedDate: "2024-01-01"}

	tr.CheckStreak("2024-01-02")

	assert.Equal(t, 5, tr.Streak)
}

func TestCheckStreakKeepsStreakForToday(t *testing.T) {
	tr := Tracker{Streak: 5, LastCompletedDate: "2024-01-02"}

	tr.CheckStreak("2024-01-02")

	assert.Equal(t, 5, tr.Streak)
}

func TestCheckStreakZeroesWhenNeverCompleted(t *testing.T) {
	tr := Tracker{Streak: 2}

	tr.CheckStreak("2024-01-02")

	assert.Equal(t, 0, tr.Streak)
}

func TestLastHistoryDateUsesArrayOrder(t *testing.T) {
	var tr Tracker

	_, ok := tr.LastHistoryDate()
	assert.False(t, ok)

	tr.OnGoalSetCompleted("2024-01-01")
	tr.OnGoalSetCompleted("2024-01-02")

	last, ok := tr.LastHistoryDate()
	require.True(t, ok)
	assert.Equal(t, "2024-01-02", last)
}
