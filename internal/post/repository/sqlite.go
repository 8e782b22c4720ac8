package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/markd/markd/internal/post"
)

// listQuery is the single fixed read issued by the repository. Its select
// list comes from the mapper, so scan positions always line up with the
// mapping; the surrogate id column is deliberately not selected.
var listQuery = "SELECT " + strings.Join(post.ReadColumns(), ", ") + " FROM posts"

// SQLiteRepo reads and writes posts through an injected sqlx handle. The
// handle is safe for concurrent use; the repo carries no other state.
type SQLiteRepo struct {
	db *sqlx.DB
}

func NewSQLiteRepo(db *sqlx.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db}
}

// ListAll materializes every stored post, preserving store-returned order.
// Every call hits the store, so results always reflect its current state.
// Query execution failure is the only error path; malformed individual
// fields degrade to zero values in the mapper instead.
func (r *SQLiteRepo) ListAll(ctx context.Context) ([]post.Post, error) {
	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, fmt.Errorf("querying posts: %w", err)
	}
	defer rows.Close()

	var posts []post.Post
	for rows.Next() {
		raw := make([]any, len(post.ReadColumns()))
		ptrs := make([]any, len(raw))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning post row: %w", err)
		}
		posts = append(posts, post.FromRow(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading post rows: %w", err)
	}
	return posts, nil
}

// Insert stores one new post under the given surrogate id. Values are bound
// as parameters, never spliced into the statement text.
func (r *SQLiteRepo) Insert(ctx context.Context, id string, p post.Post) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO posts (id, created_at, title, body) VALUES (:id, :created_at, :title, :body)`,
		map[string]any{
			"id":         id,
			"created_at": p.CreatedAt.Format(post.TimeLayout),
			"title":      p.Title,
			"body":       p.Body,
		})
	if err != nil {
		return fmt.Errorf("inserting post: %w", err)
	}
	return nil
}
