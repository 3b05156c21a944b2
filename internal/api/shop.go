package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arogyasagar/storefront/internal/model"
	"github.com/arogyasagar/storefront/internal/storefront"
)

type cartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type orderStatusRequest struct {
	Status model.OrderStatus `json:"status" binding:"required"`
}

func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Cart())
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req cartItemRequest
	if !bind(c, &req) {
		return
	}
	view, err := h.store.AddToCart(c.Request.Context(), req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.RemoveFromCart(c.Param("productId")))
}

func (h *Handler) ClearCart(c *gin.Context) {
	h.store.ClearCart()
	c.JSON(http.StatusOK, h.store.Cart())
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	var req storefront.Checkout
	if !bind(c, &req) {
		return
	}
	order, err := h.store.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func (h *Handler) MyOrders(c *gin.Context) {
	orders, err := h.store.MyOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) GetOrder(c *gin.Context) {
	o, err := h.store.Order(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": o})
}

func (h *Handler) AllOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": h.store.Orders()})
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req orderStatusRequest
	if !bind(c, &req) {
		return
	}
	o, err := h.store.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": o})
}

func (h *Handler) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.store.Wishlist()})
}

func (h *Handler) ToggleWishlist(c *gin.Context) {
	id := c.Param("productId")
	saved, err := h.store.ToggleWishlist(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"productId": id, "inWishlist": saved})
}

func (h *Handler) InWishlist(c *gin.Context) {
	id := c.Param("productId")
	c.JSON(http.StatusOK, gin.H{"productId": id, "inWishlist": h.store.IsInWishlist(id)})
}
