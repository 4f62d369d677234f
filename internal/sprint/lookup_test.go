package sprint

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDays_FiveInOrder(t *testing.T) {
	ds := Days()
	require.Len(t, ds, 5)
	for i, d := range ds {
		assert.Equal(t, i+1, d.Number)
		assert.NotEmpty(t, d.Activities, d.Name)
		assert.NotEmpty(t, d.Deliverables, d.Name)
	}
	assert.Equal(t, "Map", ds[0].Theme)
	assert.Equal(t, "Test", ds[4].Theme)
}

func TestDays_ReturnsCopies(t *testing.T) {
	first := Days()
	first[0].Name = "Funday"
	first[0].Activities[0].Minutes = 999
	first[0].Deliverables[0] = "nothing"

	second := Days()
	assert.Equal(t, "Monday", second[0].Name)
	assert.NotEqual(t, 999, second[0].Activities[0].Minutes)
	assert.Equal(t, "Long-term goal", second[0].Deliverables[0])

	day, ok := DayByNumber(1)
	require.True(t, ok)
	assert.Empty(t, cmp.Diff(second[0], day))
}

func TestDayByNumber(t *testing.T) {
	d, ok := DayByNumber(3)
	require.True(t, ok)
	assert.Equal(t, "Wednesday", d.Name)

	for _, n := range []int{0, 6, -1} {
		_, ok := DayByNumber(n)
		assert.False(t, ok, n)
	}
}

func TestDayByName(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"monday", 1},
		{"TUESDAY", 2},
		{"decide", 3},
		{" Prototype ", 4},
		{"test", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := DayByName(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, d.Number)
		})
	}

	_, ok := DayByName("saturday")
	assert.False(t, ok)
}

func TestActivitiesByRole(t *testing.T) {
	decider := ActivitiesByRole(RoleDecider)
	require.NotEmpty(t, decider)
	names := make([]string, len(decider))
	for i, a := range decider {
		assert.Equal(t, RoleDecider, a.Lead)
		names[i] = a.Name
	}
	assert.Contains(t, names, "Supervote")

	none := ActivitiesByRole(Role("janitor"))
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestTotalMinutes(t *testing.T) {
	assert.Equal(t, 0, TotalMinutes(Day{}))
	assert.Equal(t, 45, TotalMinutes(Day{Activities: []Activity{{Minutes: 30}, {Minutes: 15}}}))

	monday, _ := DayByNumber(1)
	assert.Equal(t, 285, TotalMinutes(monday))
}

func TestRoles(t *testing.T) {
	rs := Roles()
	require.Len(t, rs, 5)
	rs[0].Responsibilities[0] = "nap"

	decider, ok := RoleByKey(RoleDecider)
	require.True(t, ok)
	assert.NotEqual(t, "nap", decider.Responsibilities[0])

	_, ok = RoleByKey(Role("intern"))
	assert.False(t, ok)
}

func TestInterviewActs(t *testing.T) {
	acts := InterviewActs()
	require.Len(t, acts, 5)
	total := 0
	for i, a := range acts {
		assert.Equal(t, i+1, a.Number)
		total += a.Minutes
	}
	assert.Equal(t, 55, total)
}

func TestSchedule_FromMonday(t *testing.T) {
	monday := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	sessions := Schedule(monday)

	require.Len(t, sessions, 5)
	for i, s := range sessions {
		assert.Equal(t, monday.AddDate(0, 0, i).Truncate(24*time.Hour), s.Date)
		assert.Equal(t, i+1, s.Day.Number)
	}
}

func TestSchedule_SkipsWeekend(t *testing.T) {
	thursday := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	sessions := Schedule(thursday)

	require.Len(t, sessions, 5)
	want := []int{5, 6, 9, 10, 11}
	for i, s := range sessions {
		assert.Equal(t, want[i], s.Date.Day(), "session %d", i)
		assert.NotEqual(t, time.Saturday, s.Date.Weekday())
		assert.NotEqual(t, time.Sunday, s.Date.Weekday())
	}
}

func TestTally(t *testing.T) {
	votes := []Vote{
		{Voter: "ana", Option: "Quiz"},
		{Voter: "ben", Option: "Quiz"},
		{Voter: "cy", Option: "Chatbot"},
		{Voter: "dee", Option: "Catalog"},
		{Voter: "dee", Option: "Catalog"},
		{Voter: "dee", Option: "Catalog"},
		{Voter: "ceo", Option: "Chatbot", Supervote: true},
		{Voter: "ceo", Option: " "},
	}

	got := Tally(votes)

	want := []VoteCount{
		{Option: "Chatbot", Votes: 1, Supervotes: 1},
		{Option: "Catalog", Votes: 3},
		{Option: "Quiz", Votes: 2},
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestTally_TiesByName(t *testing.T) {
	got := Tally([]Vote{{Option: "b"}, {Option: "a"}})
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Option)
}

func TestTally_Empty(t *testing.T) {
	got := Tally(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
