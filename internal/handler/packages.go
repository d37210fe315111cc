package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/arabello/hub-frontend-new/internal/domain"
	"github.com/arabello/hub-frontend-new/internal/dto"
)

func (h *Handler) ListPackages(c *gin.Context) {
	pkgs, err := h.catalogUC.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list packages failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListPackagesResponse(pkgs))
}

func (h *Handler) GetPackage(c *gin.Context) {
	pkg, err := h.catalogUC.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPackageResponse(pkg))
}

func (h *Handler) ListVersions(c *gin.Context) {
	pkg, err := h.catalogUC.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListVersionsResponse{Name: pkg.Name, Versions: pkg.Versions})
}

func (h *Handler) GetPackageVersion(c *gin.Context) {
	pkg, err := h.catalogUC.GetVersion(c.Request.Context(), c.Param("name"), c.Param("version"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPackageResponse(pkg))
}

func (h *Handler) SearchPackages(c *gin.Context) {
	filter := domain.SearchFilter{
		Term: c.Query("q"),
		Tags: splitTags(c.Query("tags")),
	}

	pkgs, err := h.searchUC.Search(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("search failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSearchResponse(filter.Term, filter.Tags, pkgs))
}

func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.catalogUC.Tags(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list tags failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListTagsResponse(tags))
}
