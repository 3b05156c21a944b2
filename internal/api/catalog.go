package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	errx "github.com/arogyasagar/storefront/internal/core/error"
	"github.com/arogyasagar/storefront/internal/model"
)

// ListProducts serves the catalog, optionally filtered by ?q= and ?category=.
func (h *Handler) ListProducts(c *gin.Context) {
	q, category := c.Query("q"), c.Query("category")
	if q == "" && category == "" {
		c.JSON(http.StatusOK, gin.H{"products": h.store.Products()})
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	products := h.store.SearchProducts(q, category, limit)
	if products == nil {
		products = []model.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	p, ok := h.store.Product(id)
	if !ok {
		respondError(c, errx.NotFound("product", id))
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

// TrackView records that the product page was opened.
func (h *Handler) TrackView(c *gin.Context) {
	if err := h.store.TrackView(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"viewHistory": h.store.ViewHistory()})
}

func (h *Handler) ViewHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"viewHistory": h.store.ViewHistory()})
}

func (h *Handler) Recommendations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.store.Recommendations()})
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var p model.Product
	if !bind(c, &p) {
		return
	}
	created, err := h.store.AddProduct(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": created})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var patch model.ProductPatch
	if !bind(c, &patch) {
		return
	}
	p, err := h.store.UpdateProduct(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.store.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"doctors": h.store.Doctors()})
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id := c.Param("id")
	d, ok := h.store.Doctor(id)
	if !ok {
		respondError(c, errx.NotFound("doctor", id))
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": d})
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var d model.Doctor
	if !bind(c, &d) {
		return
	}
	created, err := h.store.AddDoctor(c.Request.Context(), d)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"doctor": created})
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	var patch model.DoctorPatch
	if !bind(c, &patch) {
		return
	}
	d, err := h.store.UpdateDoctor(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": d})
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	if err := h.store.DeleteDoctor(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListTherapies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"therapies": h.store.Therapies()})
}
