package shell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	in := newTestInterpreter(t, nil)
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"he", "help ", true},
		{"ST", "status ", true},
		{"pdc", "podcast ", true},
		{"", "", false},
		{"echo hi", "", false},
		{"zzz", "", false},
		{"eth", "", false},
	}
	for _, tc := range cases {
		got, ok := in.Complete(tc.input)
		require.Equal(t, tc.ok, ok, "input %q", tc.input)
		require.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestCommonPrefix(t *testing.T) {
	require.Equal(t, "pod", commonPrefix([]string{"podcast", "podium", "pod"}))
	require.Equal(t, "", commonPrefix(nil))
}
