package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/markd/markd/internal/post"
)

//go:embed templates/*.html
var templateFS embed.FS

// rmdashes is the display filter: dashes in a title read as spaces on the
// page. The raw title stays the link target, so slug matching is unaffected.
func rmdashes(title string) string {
	return strings.ReplaceAll(title, "-", " ")
}

// Renderer projects posts into HTML pages. Templates are parsed once at
// construction; rendering itself is a pure projection with no side effects.
type Renderer struct {
	index *template.Template
	post  *template.Template
}

func New() (*Renderer, error) {
	funcs := template.FuncMap{"rmdashes": rmdashes}

	index, err := template.New("index.html").Funcs(funcs).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parsing index template: %w", err)
	}
	postTmpl, err := template.New("post.html").Funcs(funcs).ParseFS(templateFS, "templates/post.html")
	if err != nil {
		return nil, fmt.Errorf("parsing post template: %w", err)
	}

	return &Renderer{index: index, post: postTmpl}, nil
}

// postView is the context handed to the templates.
type postView struct {
	Title string
	Date  string
	Body  string
}

func toView(p post.Post) postView {
	return postView{
		Title: p.Title,
		Date:  p.CreatedAt.Format(post.TimeLayout),
		Body:  p.Body,
	}
}

// Index renders the list page: one link per post, in the order given.
func (r *Renderer) Index(posts []post.Post) ([]byte, error) {
	views := make([]postView, 0, len(posts))
	for _, p := range posts {
		views = append(views, toView(p))
	}

	var buf bytes.Buffer
	if err := r.index.Execute(&buf, struct{ Posts []postView }{Posts: views}); err != nil {
		return nil, fmt.Errorf("rendering index: %w", err)
	}
	return buf.Bytes(), nil
}

// Post renders the single-post page.
func (r *Renderer) Post(p post.Post) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.post.Execute(&buf, toView(p)); err != nil {
		return nil, fmt.Errorf("rendering post: %w", err)
	}
	return buf.Bytes(), nil
}
