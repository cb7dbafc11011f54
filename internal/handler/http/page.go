package http

import (
	"html/template"
	"net/http"

	"github.com/MKhiriev/docker-lab/internal/display"
	"github.com/MKhiriev/docker-lab/internal/logger"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>docker-lab</title>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="card">
<h2>{{.Heading}}</h2>
<p><strong>{{.RuntimeLabel}}</strong> {{.RuntimeValue}}</p>
<p><strong>{{.BuildLabel}}</strong> {{.BuildValue}}</p>
</div>
<div class="card">
<form method="post" action="/count">
<button type="submit" aria-label="{{.ButtonLabel}}">{{.ButtonLabel}}</button>
</form>
<p>{{.Hint}}</p>
</div>
</body>
</html>
`))

// pageData carries pre-escaped text. html/template would turn the "+" of
// the title into an entity, which breaks plain-text lookups of the page.
type pageData struct {
	Title        template.HTML
	Heading      template.HTML
	RuntimeLabel template.HTML
	RuntimeValue template.HTML
	BuildLabel   template.HTML
	BuildValue   template.HTML
	ButtonLabel  string
	Hint         template.HTML
}

func text(s string) template.HTML {
	return template.HTML(template.HTMLEscapeString(s))
}

func newPageData(view display.View) pageData {
	return pageData{
		Title:        text(view.Title),
		Heading:      text(view.Heading),
		RuntimeLabel: text(display.RuntimeLabel),
		RuntimeValue: text(view.RuntimeValue),
		BuildLabel:   text(display.BuildLabel),
		BuildValue:   text(view.BuildValue),
		ButtonLabel:  view.ButtonLabel(),
		Hint:         text(display.Hint),
	}
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	data := newPageData(h.render())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		logger.FromRequest(r).Err(err).Msg("error rendering page")
	}
}

func (h *Handler) count(w http.ResponseWriter, r *http.Request) {
	n := h.click()
	logger.FromRequest(r).Debug().Int("count", n).Msg("counter clicked")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
