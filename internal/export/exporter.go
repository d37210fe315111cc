package export

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	"github.com/arabello/hub-frontend-new/internal/domain"
	"github.com/arabello/hub-frontend-new/internal/dto"
	"github.com/arabello/hub-frontend-new/internal/render"
	"github.com/arabello/hub-frontend-new/internal/usecase"
)

// Exporter writes the whole site to a directory: one HTML page per route the
// server would answer, plus JSON mirrors of the API so the exported tree can
// be served by any static file host.
type Exporter struct {
	catalogUC *usecase.CatalogUseCase
	searchUC  *usecase.SearchUseCase
	tpl       *template.Template
	siteTitle string
}

func New(catalogUC *usecase.CatalogUseCase, searchUC *usecase.SearchUseCase, tpl *template.Template, siteTitle string) *Exporter {
	return &Exporter{catalogUC: catalogUC, searchUC: searchUC, tpl: tpl, siteTitle: siteTitle}
}

// Export builds the static site under dir. The index is fetched and
// validated before anything is written; the finished tree replaces dir in
// one rename so a failed build leaves no partial output behind.
func (e *Exporter) Export(ctx context.Context, dir string) error {
	pkgs, err := e.catalogUC.List(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	tags, err := e.catalogUC.Tags(ctx)
	if err != nil {
		return err
	}

	featured, err := e.catalogUC.Featured(ctx)
	if err != nil {
		return err
	}
	if len(featured) == 0 && len(pkgs) > 6 {
		featured = pkgs[:6]
	} else if len(featured) == 0 {
		featured = pkgs
	}

	page := render.Page{SiteTitle: e.siteTitle}
	if lastUpdate, err := e.catalogUC.LastUpdate(ctx); err == nil {
		page.LastUpdate = lastUpdate.Format("Jan 2, 2006")
	}

	parent := filepath.Dir(filepath.Clean(dir))
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("create export parent: %w", err)
	}
	staging, err := os.MkdirTemp(parent, ".hub-export-*")
	if err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	defer os.RemoveAll(staging)

	pageCount := 0
	writePage := func(rel, tmpl string, data interface{}) error {
		path := filepath.Join(staging, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := e.tpl.ExecuteTemplate(f, tmpl, data); err != nil {
			return fmt.Errorf("render %s: %w", rel, err)
		}
		pageCount++
		return nil
	}

	writeJSON := func(rel string, data interface{}) error {
		path := filepath.Join(staging, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		raw, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(path, raw, 0o644)
	}

	featuredItems := make([]dto.PackageResponse, 0, len(featured))
	for _, p := range featured {
		featuredItems = append(featuredItems, dto.ToPackageResponse(p))
	}
	if err := writePage("index.html", "landing.tmpl", render.LandingData{
		Page:     page,
		Featured: featuredItems,
		Tags:     tags,
		Total:    len(pkgs),
	}); err != nil {
		return err
	}

	all, err := e.searchUC.Search(ctx, domain.SearchFilter{})
	if err != nil {
		return err
	}
	results := make([]dto.PackageResponse, 0, len(all))
	for _, p := range all {
		results = append(results, dto.ToPackageResponse(p))
	}
	if err := writePage(filepath.Join("search", "index.html"), "search.tmpl", render.SearchData{
		Page:    page,
		AllTags: tags,
		Results: results,
	}); err != nil {
		return err
	}

	for _, p := range pkgs {
		if err := writePage(filepath.Join(p.Name, "index.html"), "package.tmpl", render.PackageData{
			Page:    page,
			Package: dto.ToPackageResponse(p),
			Latest:  true,
		}); err != nil {
			return err
		}
		if err := writeJSON(filepath.Join("api", "v1", "packages", p.Name+".json"), dto.ToPackageResponse(p)); err != nil {
			return err
		}
		if err := writeJSON(filepath.Join("api", "v1", "packages", p.Name, "versions.json"), dto.ListVersionsResponse{Name: p.Name, Versions: p.Versions}); err != nil {
			return err
		}

		for _, v := range p.Versions {
			pinned, err := e.catalogUC.GetVersion(ctx, p.Name, v)
			if err != nil {
				return err
			}
			if err := writePage(filepath.Join(p.Name, v, "index.html"), "package.tmpl", render.PackageData{
				Page:    page,
				Package: dto.ToPackageResponse(pinned),
				Latest:  v == p.Version,
			}); err != nil {
				return err
			}
			if err := writeJSON(filepath.Join("api", "v1", "packages", p.Name, "versions", v+".json"), dto.ToPackageResponse(pinned)); err != nil {
				return err
			}
		}

		log.WithFields(log.Fields{"package": p.Name, "versions": len(p.Versions)}).Debug("package exported")
	}

	if err := writeJSON(filepath.Join("api", "v1", "packages.json"), dto.ToListPackagesResponse(pkgs)); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join("api", "v1", "tags.json"), dto.ToListTagsResponse(tags)); err != nil {
		return err
	}

	// MkdirTemp creates the staging root 0700; the exported tree has to be
	// readable by whatever serves it.
	if err := os.Chmod(staging, 0o755); err != nil {
		return fmt.Errorf("chmod staging: %w", err)
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("replace %s: %w", dir, err)
	}
	if err := os.Rename(staging, dir); err != nil {
		return fmt.Errorf("move staging to %s: %w", dir, err)
	}

	color.Green("✓ exported %d packages (%d pages) to %s", len(pkgs), pageCount, dir)
	return nil
}
