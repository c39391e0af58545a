package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fendiRahmans/portofolio-api/internal/dto"
	"github.com/fendiRahmans/portofolio-api/internal/models"
	appErrors "github.com/fendiRahmans/portofolio-api/pkg/errors"
	"github.com/fendiRahmans/portofolio-api/pkg/response"
)

type aboutService interface {
	Get(ctx context.Context) (*models.About, error)
	Upsert(ctx context.Context, req dto.AboutRequest) (*models.About, error)
}

// AboutHandler exposes the admin about-profile endpoints.
type AboutHandler struct {
	service aboutService
}

// NewAboutHandler builds a new handler.
func NewAboutHandler(service aboutService) *AboutHandler {
	return &AboutHandler{service: service}
}

// Get godoc
// @Summary Get the about profile
// @Tags About
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/about [get]
func (h *AboutHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Upsert godoc
// @Summary Create or replace the about profile
// @Tags About
// @Accept json
// @Produce json
// @Param payload body dto.AboutRequest true "About payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/about [put]
func (h *AboutHandler) Upsert(c *gin.Context) {
	var req dto.AboutRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	item, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}
