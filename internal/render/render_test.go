package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/markd/markd/internal/post"
)

func TestIndex_OneLinkPerPostInOrder(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	posts := []post.Post{
		{Title: "hello-world"},
		{Title: "second-post"},
	}

	out, err := r.Index(posts)
	require.NoError(t, err)
	html := string(out)

	require.Equal(t, 2, strings.Count(html, `<a href="/post/`))
	// store order preserved
	require.Less(t, strings.Index(html, "hello-world"), strings.Index(html, "second-post"))
}

func TestIndex_DisplayFilterAppliesToTextOnly(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	out, err := r.Index([]post.Post{{Title: "hello-world"}})
	require.NoError(t, err)
	html := string(out)

	// link target keeps the raw title; only the visible text loses its dashes
	require.Contains(t, html, `href="/post/hello-world"`)
	require.Contains(t, html, ">hello world</a>")
}

func TestIndex_Empty(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	out, err := r.Index(nil)
	require.NoError(t, err)
	require.NotContains(t, string(out), `<a href="/post/`)
}

func TestPost_FormatsDate(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	p := post.Post{
		Title:     "hello-world",
		CreatedAt: time.Date(2023, 11, 5, 12, 30, 9, 0, time.UTC),
		Body:      "content",
	}

	out, err := r.Post(p)
	require.NoError(t, err)
	html := string(out)

	require.Contains(t, html, "2023-11-05 12:30:09")
	require.Contains(t, html, "content")
	require.Contains(t, html, "hello world")
}

func TestPost_BodyIsEscaped(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	out, err := r.Post(post.Post{Title: "t", Body: "<script>x</script>"})
	require.NoError(t, err)
	require.NotContains(t, string(out), "<script>")
}
