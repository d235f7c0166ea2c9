// Package templates holds the embedded server-rendered pages. Pages are a
// thin shim over the core: they iterate and print what handlers hand them.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/lukeharding/bandstand/models"
)

//go:embed *.html
var files embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"datetime": func(ts int64) string {
		return time.Unix(ts, 0).Format("Mon Jan 2, 2006 3:04 PM")
	},
	"genreOptions": func() []string {
		return models.GenreOptions
	},
}).ParseFS(files, "*.html"))

// Page is the envelope every template receives.
type Page struct {
	Flash string
	Data  interface{}
}

// Render writes the named page.
func Render(w io.Writer, name string, page Page) error {
	if err := pages.ExecuteTemplate(w, name, page); err != nil {
		return fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return nil
}
