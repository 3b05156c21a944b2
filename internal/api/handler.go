// Package api exposes the storefront over JSON HTTP with gin.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	errx "github.com/arogyasagar/storefront/internal/core/error"
	"github.com/arogyasagar/storefront/internal/storefront"
)

type Handler struct {
	store *storefront.Storefront
}

func NewHandler(store *storefront.Storefront) *Handler {
	return &Handler{store: store}
}

// respondError writes err as {"error": message} with the status its kind maps to.
// Validation errors also carry the offending field.
func respondError(c *gin.Context, err error) {
	body := gin.H{"error": errx.MessageOf(err)}
	var appErr *errx.AppError
	if errors.As(err, &appErr) && appErr.Field != "" {
		body["field"] = appErr.Field
	}
	c.JSON(errx.StatusOf(err), body)
}

// bind decodes the JSON body into dst, answering 400 on malformed input.
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
