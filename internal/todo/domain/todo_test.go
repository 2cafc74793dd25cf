package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Priority
	}{
		{"high", PriorityHigh},
		{"High", PriorityHigh},
		{"HIGH", PriorityHigh},
		{"low", PriorityLow},
		{" medium ", PriorityMedium},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePriority(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "urgent", "HIGHEST"} {
		_, err := ParsePriority(bad)
		require.ErrorIs(t, err, ErrInvalidEnum, "input %q", bad)
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	got, err := ParseStatus("completed")
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, got)

	got, err = ParseStatus("In_Progress")
	require.NoError(t, err)
	require.Equal(t, StatusInProgress, got)

	_, err = ParseStatus("in progress")
	require.ErrorIs(t, err, ErrInvalidEnum)

	_, err = ParseStatus("DONE")
	require.ErrorIs(t, err, ErrInvalidEnum)
}

func TestApplyStatusDerivesCompleted(t *testing.T) {
	t.Parallel()

	for _, s := range Statuses {
		todo := Todo{Completed: s != StatusCompleted}
		todo.ApplyStatus(s)
		require.Equal(t, s == StatusCompleted, todo.Completed, "status %s", s)
		require.Equal(t, s, todo.Status)
	}
}

func TestFullName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Ada Lovelace", User{FirstName: "Ada", LastName: "Lovelace"}.FullName())
	require.Equal(t, "Ada", User{FirstName: "Ada"}.FullName())
	require.Equal(t, "Lovelace", User{LastName: "Lovelace"}.FullName())
	require.Equal(t, "", User{}.FullName())
}
