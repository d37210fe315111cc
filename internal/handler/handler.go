package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arabello/hub-frontend-new/internal/usecase"
)

type Handler struct {
	catalogUC *usecase.CatalogUseCase
	searchUC  *usecase.SearchUseCase
	siteTitle string
}

func New(catalogUC *usecase.CatalogUseCase, searchUC *usecase.SearchUseCase, siteTitle string) *Handler {
	return &Handler{catalogUC: catalogUC, searchUC: searchUC, siteTitle: siteTitle}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// JSON API
	api := r.Group("/api/v1")
	api.GET("/packages", h.ListPackages)
	api.GET("/packages/:name", h.GetPackage)
	api.GET("/packages/:name/versions", h.ListVersions)
	api.GET("/packages/:name/versions/:version", h.GetPackageVersion)
	api.GET("/search", h.SearchPackages)
	api.GET("/tags", h.ListTags)

	r.GET("/healthz", h.Healthz)

	// HTML pages
	r.GET("/", h.LandingPage)
	r.GET("/search", h.SearchPage)
	r.GET("/:name", h.PackagePage)
	r.GET("/:name/:version", h.PackageVersionPage)
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
