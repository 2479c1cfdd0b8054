package status

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// FromColumnName
// ============================================================================

func TestFromColumnName_LiteralCases(t *testing.T) {
	tests := []struct {
		name string
		want Status
	}{
		{"To Do", ToDo},
		{"TODO", ToDo},
		{"In-Progress", InProgress},
		{"QA", InReview},
		{"Deployed", Done},
		{"On Hold", Blocked},
		{"", ToDo},
		{"Random Column", ToDo},
		{"Test", InReview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromColumnName(tt.name))
		})
	}
}

func TestFromColumnName_Normalization(t *testing.T) {
	assert.Equal(t, FromColumnName("done"), FromColumnName("DONE"))
	assert.Equal(t, Done, FromColumnName("   Done \t"))
	assert.Equal(t, ToDo, FromColumnName("   "))
}

func TestFromColumnName_WholeWordBeforeSubstring(t *testing.T) {
	tests := []struct {
		name string
		want Status
	}{
		// whole word "review"
		{"Code Review", InReview},
		// whole word "qa" precedes nothing earlier in the table
		{"Ready for QA", InReview},
		// "waiting" as a word
		{"Waiting on customer", Blocked},
		// only a substring hit on "review"
		{"Reviewed", InReview},
		// substring "blocked"
		{"Unblocked-ish", Blocked},
		// "done" as a whole word wins over later substring candidates
		{"Dev Done", Done},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromColumnName(tt.name))
		})
	}
}

func TestFromColumnName_FallbackHeuristic(t *testing.T) {
	tests := []struct {
		name string
		want Status
	}{
		{"Kickstart", ToDo},
		{"Planning", ToDo},
		{"Progressing", InProgress},
		{"Devops", InProgress},
		{"Finishing touches", Done},
		{"Blockers", Blocked},
		{"Holding pen", Blocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromColumnName(tt.name))
		})
	}
}

func TestFromColumnName_Total(t *testing.T) {
	inputs := []string{
		"", " ", "????", "日本語", "a", strings.Repeat("x", 4096),
		"to do done", "\n\n", "Column #42", "DONE!!!", "in_progress",
	}

	for _, in := range inputs {
		got := FromColumnName(in)
		if !IsValid(string(got)) {
			t.Errorf("FromColumnName(%q) = %q, not a valid status", in, got)
		}
	}
}

func TestFromColumnName_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, InReview, FromColumnName("Test"))
		assert.Equal(t, Blocked, FromColumnName("On Hold"))
	}
}

// ============================================================================
// ColumnName
// ============================================================================

func TestColumnName(t *testing.T) {
	assert.Equal(t, "To Do", ColumnName(ToDo))
	assert.Equal(t, "In Progress", ColumnName(InProgress))
	assert.Equal(t, "In Review", ColumnName(InReview))
	assert.Equal(t, "Blocked", ColumnName(Blocked))
	assert.Equal(t, "Done", ColumnName(Done))
	assert.Equal(t, "To Do", ColumnName(Status("archived")))
	assert.Equal(t, "To Do", ColumnName(""))
}

func TestColumnName_StableFixedPoint(t *testing.T) {
	for _, s := range Valid() {
		name := ColumnName(s)
		assert.Equal(t, name, ColumnName(FromColumnName(name)), "status %s", s)
	}
}

func TestRoundTripIsLossy(t *testing.T) {
	// "Deployed" maps to done, which names itself "Done"
	assert.NotEqual(t, "Deployed", ColumnName(FromColumnName("Deployed")))
}

// ============================================================================
// Valid / IsValid / Parse
// ============================================================================

func TestValid(t *testing.T) {
	got := Valid()
	assert.Equal(t, []Status{ToDo, InProgress, InReview, Blocked, Done}, got)

	// Mutating the returned slice must not affect later calls
	got[0] = "mutated"
	assert.Equal(t, ToDo, Valid()[0])
}

func TestIsValid(t *testing.T) {
	for _, s := range []string{"to_do", "in_progress", "in_review", "blocked", "done"} {
		assert.True(t, IsValid(s), s)
	}
	for _, s := range []string{"", "todo", "Done", "DONE", "in progress", "archived"} {
		assert.False(t, IsValid(s), s)
	}
}

func TestParse(t *testing.T) {
	s, err := Parse("blocked")
	assert.NoError(t, err)
	assert.Equal(t, Blocked, s)

	_, err = Parse("Blocked")
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "In Review", InReview.Label())
	assert.Equal(t, "in_review", InReview.String())
}
