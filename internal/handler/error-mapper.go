package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arabello/hub-frontend-new/internal/domain"
)

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrPackageNotFound),
		errors.Is(err, domain.ErrVersionNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrInvalidPackageName):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrIndexUnavailable),
		errors.Is(err, domain.ErrInvalidIndex):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

func mapDomainError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func mapPageError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		c.String(status, "internal server error")
		return
	}
	c.String(status, err.Error())
}
