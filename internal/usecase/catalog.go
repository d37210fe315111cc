package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/semver"

	"github.com/arabello/hub-frontend-new/internal/domain"
)

// CatalogUseCase shapes validated index snapshots into the browsable catalog:
// releases grouped by package name, newest version first.
type CatalogUseCase struct {
	source   domain.IndexSource
	featured []string
}

func NewCatalogUseCase(source domain.IndexSource, featured []string) *CatalogUseCase {
	return &CatalogUseCase{source: source, featured: featured}
}

// List returns every package at its latest version, sorted by name.
func (uc *CatalogUseCase) List(ctx context.Context) ([]*domain.Package, error) {
	groups, err := uc.groups(ctx)
	if err != nil {
		return nil, err
	}

	pkgs := make([]*domain.Package, 0, len(groups))
	for _, releases := range groups {
		pkgs = append(pkgs, packageAt(releases, 0))
	}
	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].Name < pkgs[j].Name })

	return pkgs, nil
}

// Get returns the package at its latest version.
func (uc *CatalogUseCase) Get(ctx context.Context, name string) (*domain.Package, error) {
	if name == "" {
		return nil, domain.ErrInvalidPackageName
	}

	groups, err := uc.groups(ctx)
	if err != nil {
		return nil, err
	}

	releases, ok := groups[name]
	if !ok {
		return nil, domain.ErrPackageNotFound
	}
	return packageAt(releases, 0), nil
}

// GetVersion returns the package resolved at an exact released version.
func (uc *CatalogUseCase) GetVersion(ctx context.Context, name, version string) (*domain.Package, error) {
	if name == "" {
		return nil, domain.ErrInvalidPackageName
	}

	groups, err := uc.groups(ctx)
	if err != nil {
		return nil, err
	}

	releases, ok := groups[name]
	if !ok {
		return nil, domain.ErrPackageNotFound
	}
	for i, r := range releases {
		if r.Version == version {
			return packageAt(releases, i), nil
		}
	}
	return nil, domain.ErrVersionNotFound
}

// Tags returns every tag with the number of packages carrying it, ordered by
// count descending then name. Tags are counted once per package, not per
// release.
func (uc *CatalogUseCase) Tags(ctx context.Context) ([]domain.TagCount, error) {
	pkgs, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, p := range pkgs {
		for _, t := range p.Tags {
			counts[strings.ToLower(t)]++
		}
	}

	tags := make([]domain.TagCount, 0, len(counts))
	for name, count := range counts {
		tags = append(tags, domain.TagCount{Name: name, Count: count})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Name < tags[j].Name
	})

	return tags, nil
}

// Featured returns the configured landing-page packages, skipping names the
// index does not know.
func (uc *CatalogUseCase) Featured(ctx context.Context) ([]*domain.Package, error) {
	groups, err := uc.groups(ctx)
	if err != nil {
		return nil, err
	}

	pkgs := make([]*domain.Package, 0, len(uc.featured))
	for _, name := range uc.featured {
		if releases, ok := groups[name]; ok {
			pkgs = append(pkgs, packageAt(releases, 0))
		}
	}
	return pkgs, nil
}

// FetchedAt reports when the current snapshot was taken, for surfacing
// index age.
func (uc *CatalogUseCase) FetchedAt(ctx context.Context) (time.Time, error) {
	snap, err := uc.source.Snapshot(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return snap.FetchedAt, nil
}

// LastUpdate reports when the upstream index was last published.
func (uc *CatalogUseCase) LastUpdate(ctx context.Context) (time.Time, error) {
	snap, err := uc.source.Snapshot(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return snap.LastUpdate, nil
}

func (uc *CatalogUseCase) groups(ctx context.Context) (map[string][]domain.IndexEntry, error) {
	snap, err := uc.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]domain.IndexEntry)
	for _, e := range snap.Entries {
		groups[e.Name] = append(groups[e.Name], e)
	}
	for name := range groups {
		sortReleases(groups[name])
	}
	return groups, nil
}

// sortReleases orders a package's releases newest first. Validation
// guarantees parseable versions; a plain string comparison is the fallback
// should an invalid one slip through.
func sortReleases(releases []domain.IndexEntry) {
	sort.Slice(releases, func(i, j int) bool {
		vi, errI := semver.NewVersion(releases[i].Version)
		vj, errJ := semver.NewVersion(releases[j].Version)
		if errI != nil || errJ != nil {
			return releases[i].Version > releases[j].Version
		}
		return vi.GreaterThan(vj)
	})
}

func packageAt(releases []domain.IndexEntry, i int) *domain.Package {
	versions := make([]string, 0, len(releases))
	for _, r := range releases {
		versions = append(versions, r.Version)
	}

	r := releases[i]
	return &domain.Package{
		Name:             r.Name,
		Author:           r.Author,
		Title:            r.Title,
		Description:      r.Description,
		Tags:             r.Tags,
		Version:          r.Version,
		Versions:         versions,
		ArchiveURL:       r.ArchiveURL,
		ArchiveSHA256URL: r.ArchiveSHA256URL,
	}
}
