package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fendiRahmans/portofolio-api/internal/dto"
	"github.com/fendiRahmans/portofolio-api/internal/models"
	appErrors "github.com/fendiRahmans/portofolio-api/pkg/errors"
	"github.com/fendiRahmans/portofolio-api/pkg/response"
)

type techStackService interface {
	List(ctx context.Context) ([]models.TechStack, error)
	Create(ctx context.Context, req dto.TechStackRequest) (*models.TechStack, error)
	Update(ctx context.Context, id int64, req dto.TechStackRequest) (*models.TechStack, error)
	Delete(ctx context.Context, id int64) error
}

// TechStackHandler exposes the admin tech stack endpoints.
type TechStackHandler struct {
	service techStackService
}

// NewTechStackHandler builds a new handler.
func NewTechStackHandler(service techStackService) *TechStackHandler {
	return &TechStackHandler{service: service}
}

// List godoc
// @Summary List tech stack badges
// @Tags TechStack
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/tech-stacks [get]
func (h *TechStackHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create godoc
// @Summary Create a tech stack badge
// @Tags TechStack
// @Accept json
// @Produce json
// @Param payload body dto.TechStackRequest true "Badge payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/tech-stacks [post]
func (h *TechStackHandler) Create(c *gin.Context) {
	var req dto.TechStackRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Update a tech stack badge
// @Tags TechStack
// @Accept json
// @Produce json
// @Param id path int true "Badge id"
// @Param payload body dto.TechStackRequest true "Badge payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/tech-stacks/{id} [put]
func (h *TechStackHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.TechStackRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Delete godoc
// @Summary Delete a tech stack badge
// @Tags TechStack
// @Produce json
// @Param id path int true "Badge id"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/tech-stacks/{id} [delete]
func (h *TechStackHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// pathID parses the :id route parameter, answering a validation error on
// garbage input.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid id"))
		return 0, false
	}
	return id, true
}
