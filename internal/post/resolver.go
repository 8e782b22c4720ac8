package post

import "errors"

// ErrNotFound reports that no stored post carries the requested slug. It is
// an expected outcome, not a failure: handlers map it to a 404 response.
var ErrNotFound = errors.New("post not found")

// Resolve finds the post whose title exactly equals slug, scanning posts in
// the order given. Matching is case sensitive and the first match wins when
// the store holds duplicate titles.
func Resolve(slug string, posts []Post) (Post, error) {
	for _, p := range posts {
		if p.Title == slug {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}
