package http

import (
	"embed"
	"html/template"
	"net/http"

	"weatherfav/internal/logger"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

func parseTemplates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.gohtml"))
}

// render executes the named page template. When execution fails the
// response may already be partially written, so the error is logged and the
// status line is left as-is.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, statusCode int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("template", name).Msg("template execution failed")
	}
}
