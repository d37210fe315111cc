package render

import (
	"embed"
	"html/template"
	"strings"

	"github.com/arabello/hub-frontend-new/internal/domain"
	"github.com/arabello/hub-frontend-new/internal/dto"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded page templates. The same set backs the gin
// server and the static exporter.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"markdown": Markdown,
		"join":     strings.Join,
	}).ParseFS(templateFS, "templates/*.tmpl")
}

// Page carries the fields every template expects.
type Page struct {
	SiteTitle  string
	LastUpdate string
}

type LandingData struct {
	Page
	Featured []dto.PackageResponse
	Tags     []domain.TagCount
	Total    int
}

type SearchData struct {
	Page
	Query   string
	Tags    []string
	AllTags []domain.TagCount
	Results []dto.PackageResponse
}

type PackageData struct {
	Page
	Package dto.PackageResponse
	// Latest is false when the page shows a pinned older version.
	Latest bool
}
