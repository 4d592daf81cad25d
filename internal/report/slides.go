package report

import (
	"bytes"
	"embed"
	"html/template"
	"sync"

	"github.com/kapu/pachinko-persona-lab/internal/constants"
	"github.com/kapu/pachinko-persona-lab/internal/domain"
)

//go:embed templates/*.tmpl
var reportTemplateFS embed.FS

var (
	slideTemplates *template.Template
	slideOnce      sync.Once
	slideErr       error
)

// SlideData is the view model of the presentation template.
type SlideData struct {
	Name   string
	Tags   []string
	Count  int
	Record *domain.PersonaRecord
}

func loadSlideTemplates() (*template.Template, error) {
	slideOnce.Do(func() {
		funcMap := template.FuncMap{
			"add": func(a, b int) int { return a + b },
		}
		tmpl := template.New("report").Funcs(funcMap)
		slideTemplates, slideErr = tmpl.ParseFS(reportTemplateFS, "templates/*.tmpl")
	})
	return slideTemplates, slideErr
}

// SlidesHTML renders the standalone four-slide presentation. Record text is
// HTML-escaped; the document only references the Tailwind CDN and fonts.
func SlidesHTML(p *domain.PersonaRecord) ([]byte, error) {
	tmpl, err := loadSlideTemplates()
	if err != nil {
		return nil, err
	}

	data := SlideData{
		Name:   p.Name,
		Tags:   Tags(p.Keywords),
		Count:  constants.SlideConfig.Count,
		Record: p,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "slides", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
