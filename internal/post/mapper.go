package post

import "time"

// fieldMapping binds one column of the read query to a Post field. assign
// attempts the coercion; when the value cannot be coerced the field keeps its
// zero value and the rest of the row is unaffected.
type fieldMapping struct {
	column string
	assign func(*Post, any)
}

// rowMappings lists the columns of the fixed read query, in select order.
// The mapping is deliberately best effort: one malformed column must never
// drop an otherwise readable row.
var rowMappings = []fieldMapping{
	{column: "title", assign: func(p *Post, v any) {
		if s, ok := asString(v); ok {
			p.Title = s
		}
	}},
	{column: "created_at", assign: func(p *Post, v any) {
		if t, ok := asTime(v); ok {
			p.CreatedAt = t
		}
	}},
	{column: "body", assign: func(p *Post, v any) {
		if s, ok := asString(v); ok {
			p.Body = s
		}
	}},
}

// ReadColumns returns the columns of the read query, in mapping order. The
// repository builds its select list from this, so query order and mapping
// order cannot drift apart.
func ReadColumns() []string {
	cols := make([]string, len(rowMappings))
	for i, m := range rowMappings {
		cols[i] = m.column
	}
	return cols
}

// FromRow converts one raw result row into a Post. Rows shorter than the
// mapping leave the remaining fields at their zero values.
func FromRow(row []any) Post {
	var p Post
	for i, m := range rowMappings {
		if i >= len(row) {
			break
		}
		m.assign(&p, row[i])
	}
	return p
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	}
	return "", false
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		if parsed, err := time.Parse(TimeLayout, t); err == nil {
			return parsed, true
		}
	case []byte:
		if parsed, err := time.Parse(TimeLayout, string(t)); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
