package dto

import (
	"github.com/arabello/hub-frontend-new/internal/domain"
)

func ToPackageResponse(p *domain.Package) PackageResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return PackageResponse{
		Name:             p.Name,
		Author:           p.Author,
		Title:            p.Title,
		Description:      p.Description,
		Version:          p.Version,
		Versions:         p.Versions,
		Tags:             tags,
		ArchiveURL:       p.ArchiveURL,
		ArchiveSHA256URL: p.ArchiveSHA256URL,
		SourceURL:        p.SourceURL(),
	}
}

func ToListPackagesResponse(pkgs []*domain.Package) ListPackagesResponse {
	items := make([]PackageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		items = append(items, ToPackageResponse(p))
	}
	return ListPackagesResponse{Items: items, Total: len(items)}
}

func ToSearchResponse(query string, tags []string, pkgs []*domain.Package) SearchResponse {
	if tags == nil {
		tags = []string{}
	}
	items := make([]PackageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		items = append(items, ToPackageResponse(p))
	}
	return SearchResponse{Query: query, Tags: tags, Items: items, Total: len(items)}
}

func ToListTagsResponse(tags []domain.TagCount) ListTagsResponse {
	items := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		items = append(items, TagResponse{Name: t.Name, Count: t.Count})
	}
	return ListTagsResponse{Items: items, Total: len(items)}
}
