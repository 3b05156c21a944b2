package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arogyasagar/storefront/internal/dosha"
	"github.com/arogyasagar/storefront/internal/model"
)

type transcriptRequest struct {
	Transcript string `json:"transcript"`
}

type doshaRequest struct {
	Answers []dosha.Dosha `json:"answers"`
}

type chatRequest struct {
	Text string `json:"text"`
}

func (h *Handler) BookAppointment(c *gin.Context) {
	var req model.Booking
	if !bind(c, &req) {
		return
	}
	a, err := h.store.BookAppointment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": a})
}

func (h *Handler) MyAppointments(c *gin.Context) {
	items, err := h.store.MyAppointments()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": items})
}

func (h *Handler) AllAppointments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"appointments": h.store.Appointments()})
}

func (h *Handler) AttachTranscript(c *gin.Context) {
	var req transcriptRequest
	if !bind(c, &req) {
		return
	}
	a, err := h.store.AttachTranscript(c.Request.Context(), c.Param("id"), req.Transcript)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": a})
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	a, err := h.store.CancelAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": a})
}

func (h *Handler) ProductReviews(c *gin.Context) {
	reviews, err := h.store.ProductReviews(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) AddReview(c *gin.Context) {
	var r model.Review
	if !bind(c, &r) {
		return
	}
	r.ProductID = c.Param("id")
	added, err := h.store.AddReview(c.Request.Context(), r)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": added})
}

func (h *Handler) DoshaQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": dosha.Questions})
}

func (h *Handler) EvaluateDosha(c *gin.Context) {
	var req doshaRequest
	if !bind(c, &req) {
		return
	}
	res, err := h.store.EvaluateDosha(req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ChatTranscript(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"messages": h.store.ChatMessages(),
		"typing":   h.store.AssistantTyping(),
	})
}

func (h *Handler) SendChat(c *gin.Context) {
	var req chatRequest
	if !bind(c, &req) {
		return
	}
	reply, err := h.store.SendChat(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
