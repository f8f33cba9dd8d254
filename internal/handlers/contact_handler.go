package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixelforge/pixelforge-api/internal/models"
	"github.com/pixelforge/pixelforge-api/internal/services"
)

type ContactHandler struct {
	service services.ContactServiceInterface
}

func NewContactHandler(service services.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) SubmitContactForm(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	resp, err := h.service.SubmitContactForm(c.Request.Context(), &req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	if !resp.Success {
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
