package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/leopoldovcfonseca/ptashelf/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Each page is parsed together with the shared layout so every page can
// define its own "content" block.
var views = map[string]*template.Template{
	"list":  parseView("list.html"),
	"form":  parseView("form.html"),
	"view":  parseView("view.html"),
	"error": parseView("error.html"),
}

func parseView(page string) *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/base.html", "templates/"+page))
}

type fieldView struct {
	Key   string
	Label string
	Value string
}

func fieldViews(f domain.PtaFields) []fieldView {
	out := make([]fieldView, 0, len(domain.Fields))
	for _, fd := range domain.Fields {
		out = append(out, fieldView{Key: fd.Key, Label: fd.Label, Value: fd.Get(f)})
	}
	return out
}

type listPage struct {
	Base          string
	Ptas          []domain.Pta
	NextPageToken string
}

type formPage struct {
	Base   string
	Action string
	Pta    domain.Pta
	Fields []fieldView
}

type viewPage struct {
	Base   string
	Pta    domain.Pta
	Fields []fieldView
}

type errorPage struct {
	Base      string
	Status    int
	Message   string
	RequestID string
}

// render executes the named view into a buffer so a template failure can
// still produce a clean 500.
func render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := views[name].ExecuteTemplate(&buf, "base", data); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
