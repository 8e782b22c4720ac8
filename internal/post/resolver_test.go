package post

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_ExactMatch(t *testing.T) {
	docs := []Post{{Title: "first"}, {Title: "second", Body: "two"}}

	p, err := Resolve("second", docs)
	require.NoError(t, err)
	require.Equal(t, "two", p.Body)
}

func TestResolve_FirstMatchWinsOnDuplicates(t *testing.T) {
	docs := []Post{
		{Title: "a", Body: "earlier"},
		{Title: "a", Body: "later"},
	}

	p, err := Resolve("a", docs)
	require.NoError(t, err)
	require.Equal(t, "earlier", p.Body)
}

func TestResolve_CaseSensitive(t *testing.T) {
	docs := []Post{{Title: "Hello"}}

	_, err := Resolve("hello", docs)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_Missing(t *testing.T) {
	docs := []Post{{Title: "a"}, {Title: "b"}}

	_, err := Resolve("missing", docs)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_EmptyList(t *testing.T) {
	_, err := Resolve("anything", nil)
	require.ErrorIs(t, err, ErrNotFound)
}
