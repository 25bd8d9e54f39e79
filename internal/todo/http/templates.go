package http

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/sellora/todone/internal/todo/domain"
	"github.com/sellora/todone/pkg/httpx"
	"github.com/sellora/todone/pkg/slogx"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	// dueLabel is the human-readable due date shown on the task row.
	"dueLabel": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("Jan 2, 2006")
	},
	// dueValue round-trips the due date back into the edit form's date input.
	"dueValue": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format(domain.DueDateLayout)
	},
}).ParseFS(templateFS, "templates/*.html"))

// loginPage backs login.html. Error re-renders inline; Username is echoed
// back so a typo in the password does not cost the username field.
type loginPage struct {
	Error    string
	Username string
	Flash    *domain.Flash
}

// registerPage backs register.html.
type registerPage struct {
	Error    string
	Email    string
	Username string
}

// dashboardPage backs dashboard.html.
type dashboardPage struct {
	Username string
	Flash    *domain.Flash
	List     domain.TaskList
	Today    time.Time
}

func render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		slogx.FromContext(r.Context()).Error("template render failed", "template", name, "error", err)
	}
}
