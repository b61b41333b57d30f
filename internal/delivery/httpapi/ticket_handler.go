package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
	"github.com/yourusername/telegram-market-bot/internal/usecase"
)

// adminActorID HTTP API orqali kelgan harakatlar uchun shartli actor
const adminActorID = 0

// TicketHandler murojaatlar bilan ishlash uchun HTTP handler
type TicketHandler struct {
	support usecase.SupportUseCase
}

// NewTicketHandler yangi ticket handler yaratish
func NewTicketHandler(support usecase.SupportUseCase) *TicketHandler {
	return &TicketHandler{support: support}
}

// List murojaatlar ro'yxati (?status= filtri bilan)
func (h *TicketHandler) List(c *gin.Context) {
	status := entity.TicketStatus(c.Query("status"))

	tickets, err := h.support.List(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tickets"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tickets": tickets,
		"total":   len(tickets),
	})
}

// Get bitta murojaat
func (h *TicketHandler) Get(c *gin.Context) {
	ticket, err := h.support.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ticket)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus murojaat holatini o'zgartirish
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	status := entity.TicketStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status: " + req.Status})
		return
	}

	ticket, err := h.support.UpdateStatus(c.Request.Context(), c.Param("id"), status, adminActorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ticket)
}

type replyRequest struct {
	Text string `json:"text" binding:"required"`
}

// Reply murojaatga javob yozish (foydalanuvchiga ham yetkaziladi)
func (h *TicketHandler) Reply(c *gin.Context) {
	var req replyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	ticket, err := h.support.Reply(c.Request.Context(), c.Param("id"), req.Text, adminActorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
			return
		}
		var validation *usecase.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Reason})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ticket)
}
