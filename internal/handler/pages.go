package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/arabello/hub-frontend-new/internal/domain"
	"github.com/arabello/hub-frontend-new/internal/dto"
	"github.com/arabello/hub-frontend-new/internal/render"
)

const pageTimeFormat = "Jan 2, 2006"

// landingFeaturedFallback caps how many packages the landing page shows when
// no featured list is configured.
const landingFeaturedFallback = 6

func (h *Handler) page(ctx context.Context) render.Page {
	p := render.Page{SiteTitle: h.siteTitle}
	if lastUpdate, err := h.catalogUC.LastUpdate(ctx); err == nil {
		p.LastUpdate = lastUpdate.Format(pageTimeFormat)
	}
	return p
}

func (h *Handler) LandingPage(c *gin.Context) {
	ctx := c.Request.Context()

	pkgs, err := h.catalogUC.List(ctx)
	if err != nil {
		log.WithError(err).Error("landing page failed")
		mapPageError(c, err)
		return
	}

	featured, err := h.catalogUC.Featured(ctx)
	if err != nil {
		mapPageError(c, err)
		return
	}
	if len(featured) == 0 {
		for i := 0; i < len(pkgs) && i < landingFeaturedFallback; i++ {
			featured = append(featured, pkgs[i])
		}
	}

	tags, err := h.catalogUC.Tags(ctx)
	if err != nil {
		mapPageError(c, err)
		return
	}

	items := make([]dto.PackageResponse, 0, len(featured))
	for _, p := range featured {
		items = append(items, dto.ToPackageResponse(p))
	}

	c.HTML(http.StatusOK, "landing.tmpl", render.LandingData{
		Page:     h.page(ctx),
		Featured: items,
		Tags:     tags,
		Total:    len(pkgs),
	})
}

func (h *Handler) SearchPage(c *gin.Context) {
	ctx := c.Request.Context()

	filter := domain.SearchFilter{
		Term: c.Query("q"),
		Tags: splitTags(c.Query("tags")),
	}

	pkgs, err := h.searchUC.Search(ctx, filter)
	if err != nil {
		log.WithError(err).Error("search page failed")
		mapPageError(c, err)
		return
	}

	tags, err := h.catalogUC.Tags(ctx)
	if err != nil {
		mapPageError(c, err)
		return
	}

	results := make([]dto.PackageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		results = append(results, dto.ToPackageResponse(p))
	}

	c.HTML(http.StatusOK, "search.tmpl", render.SearchData{
		Page:    h.page(ctx),
		Query:   filter.Term,
		Tags:    filter.Tags,
		AllTags: tags,
		Results: results,
	})
}

func (h *Handler) PackagePage(c *gin.Context) {
	ctx := c.Request.Context()

	pkg, err := h.catalogUC.Get(ctx, c.Param("name"))
	if err != nil {
		mapPageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "package.tmpl", render.PackageData{
		Page:    h.page(ctx),
		Package: dto.ToPackageResponse(pkg),
		Latest:  true,
	})
}

func (h *Handler) PackageVersionPage(c *gin.Context) {
	ctx := c.Request.Context()

	pkg, err := h.catalogUC.GetVersion(ctx, c.Param("name"), c.Param("version"))
	if err != nil {
		mapPageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "package.tmpl", render.PackageData{
		Page:    h.page(ctx),
		Package: dto.ToPackageResponse(pkg),
		Latest:  len(pkg.Versions) > 0 && pkg.Versions[0] == pkg.Version,
	})
}
