package domain

import (
	"regexp"
	"strings"
	"time"
)

// IndexEntry is one published release in the remote package index. A package
// name appears once per released version.
type IndexEntry struct {
	Name             string   `json:"name"`
	Author           string   `json:"author"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Version          string   `json:"version"`
	Tags             []string `json:"tags"`
	ArchiveURL       string   `json:"archive_url"`
	ArchiveSHA256URL string   `json:"archive_sha256_url"`
}

// Snapshot is one validated fetch of the remote index.
type Snapshot struct {
	FetchedAt  time.Time
	LastUpdate time.Time
	Entries    []IndexEntry
}

// Package groups the releases of one package name. Version is the release
// the package was resolved at (the head of Versions unless a specific
// version was requested), Versions is the full list sorted newest first.
type Package struct {
	Name             string
	Author           string
	Title            string
	Description      string
	Tags             []string
	Version          string
	Versions         []string
	ArchiveURL       string
	ArchiveSHA256URL string
}

var githubURLPattern = regexp.MustCompile(`https://github\.com/[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+`)

// SourceURL returns the first GitHub repository URL mentioned in the package
// description, or "" when none is present.
func (p *Package) SourceURL() string {
	return strings.TrimRight(githubURLPattern.FindString(p.Description), ".,;)")
}

// HasAllTags reports whether the package carries every requested tag.
func (p *Package) HasAllTags(tags []string) bool {
	for _, want := range tags {
		found := false
		for _, t := range p.Tags {
			if strings.EqualFold(t, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// TagCount is a tag with the number of packages carrying it.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
