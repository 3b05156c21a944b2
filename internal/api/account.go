package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errx "github.com/arogyasagar/storefront/internal/core/error"
	"github.com/arogyasagar/storefront/internal/model"
	"github.com/arogyasagar/storefront/internal/storefront"
)

func (h *Handler) Login(c *gin.Context) {
	var req storefront.Credentials
	if !bind(c, &req) {
		return
	}
	u, err := h.store.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *Handler) Signup(c *gin.Context) {
	var req storefront.Registration
	if !bind(c, &req) {
		return
	}
	u, err := h.store.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.store.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Me(c *gin.Context) {
	u, ok := h.store.CurrentUser()
	if !ok {
		respondError(c, errx.Unauthenticated("Please login to continue."))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req model.ProfileUpdate
	if !bind(c, &req) {
		return
	}
	u, err := h.store.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}
