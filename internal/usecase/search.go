package usecase

import (
	"context"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/arabello/hub-frontend-new/internal/domain"
)

// SearchUseCase combines ranked fuzzy text matching with tag-set filtering
// over the catalog.
type SearchUseCase struct {
	catalog *CatalogUseCase
}

func NewSearchUseCase(catalog *CatalogUseCase) *SearchUseCase {
	return &SearchUseCase{catalog: catalog}
}

// Search returns packages matching the filter. A text term ranks packages by
// fuzzy match score; tags then keep only packages carrying every requested
// tag. An empty filter returns the whole catalog in name order.
func (uc *SearchUseCase) Search(ctx context.Context, filter domain.SearchFilter) ([]*domain.Package, error) {
	pkgs, err := uc.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	if term := strings.TrimSpace(filter.Term); term != "" {
		matches := fuzzy.FindFrom(strings.ToLower(term), haystack(pkgs))
		ranked := make([]*domain.Package, 0, len(matches))
		for _, m := range matches {
			ranked = append(ranked, pkgs[m.Index])
		}
		pkgs = ranked
	}

	if len(filter.Tags) > 0 {
		filtered := pkgs[:0:0]
		for _, p := range pkgs {
			if p.HasAllTags(filter.Tags) {
				filtered = append(filtered, p)
			}
		}
		pkgs = filtered
	}

	return pkgs, nil
}

// haystack adapts packages to fuzzy.Source. The searchable text per package
// is name, title, description and author joined, lowercased to keep matching
// case-insensitive.
type haystack []*domain.Package

func (h haystack) String(i int) string {
	p := h[i]
	return strings.ToLower(p.Name + " " + p.Title + " " + p.Description + " " + p.Author)
}

func (h haystack) Len() int { return len(h) }
