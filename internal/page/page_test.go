package page

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	now, ok := Lookup("now")
	require.True(t, ok)
	require.Equal(t, KindNow, now.Kind)
	require.Equal(t, "Now.md", now.File)
	require.False(t, now.Flatten)

	next, ok := Lookup("NEXT")
	require.True(t, ok)
	require.Equal(t, "Next", next.DisplayName)
	require.True(t, next.Flatten)

	_, ok = Lookup("later")
	require.False(t, ok)
}

func TestKinds(t *testing.T) {
	require.Equal(t, []Kind{KindNow, KindNext}, Kinds())
	require.Equal(t, []string{"now", "next"}, KindNames())
}
