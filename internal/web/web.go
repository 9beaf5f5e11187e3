package web

import (
	"embed"
	"html/template"
	"strings"

	"github.com/MLR-5819/FSND-Fyyur/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

// FuncMap holds the helpers available to every page.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"datetime": func(value, format string) string {
			out, err := service.FormatDatetime(value, format)
			if err != nil {
				return value
			}
			return out
		},
		"join": strings.Join,
		"has": func(list []string, s string) bool {
			for _, v := range list {
				if v == s {
					return true
				}
			}
			return false
		},
	}
}

// Templates parses the embedded pages. Each page is named by its file name.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templatesFS, "templates/*.html")
}

func MustTemplates() *template.Template {
	return template.Must(Templates())
}
