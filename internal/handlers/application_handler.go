package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixelforge/pixelforge-api/internal/models"
	"github.com/pixelforge/pixelforge-api/internal/services"
	pkgerrors "github.com/pixelforge/pixelforge-api/pkg/errors"
)

type ApplicationHandler struct {
	service services.ApplicationServiceInterface
}

func NewApplicationHandler(service services.ApplicationServiceInterface) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	careerSlug := c.Param("slug")

	var req models.JobApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	resp, err := h.service.SubmitApplication(c.Request.Context(), careerSlug, &req)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Career not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	if !resp.Success {
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
