package dto

type PackageResponse struct {
	Name             string   `json:"name"`
	Author           string   `json:"author"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Version          string   `json:"version"`
	Versions         []string `json:"versions"`
	Tags             []string `json:"tags"`
	ArchiveURL       string   `json:"archive_url,omitempty"`
	ArchiveSHA256URL string   `json:"archive_sha256_url,omitempty"`
	SourceURL        string   `json:"source_url,omitempty"`
}

type ListPackagesResponse struct {
	Items []PackageResponse `json:"items"`
	Total int               `json:"total"`
}

type ListVersionsResponse struct {
	Name     string   `json:"name"`
	Versions []string `json:"versions"`
}

type SearchResponse struct {
	Query string            `json:"query"`
	Tags  []string          `json:"tags"`
	Items []PackageResponse `json:"items"`
	Total int               `json:"total"`
}

type TagResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type ListTagsResponse struct {
	Items []TagResponse `json:"items"`
	Total int           `json:"total"`
}
