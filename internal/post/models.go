package post

import "time"

// TimeLayout is the timestamp format written by the ingest command and
// shown on rendered pages.
const TimeLayout = "2006-01-02 15:04:05"

// Post is a stored content record. Title doubles as the externally visible
// slug; the surrogate row id stays inside the repository and is never handed
// to the rendering layer.
type Post struct {
	Title     string
	CreatedAt time.Time
	Body      string
}
