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

type careerService interface {
	List(ctx context.Context) ([]models.Career, error)
	Create(ctx context.Context, req dto.CareerRequest) (*models.Career, error)
	Update(ctx context.Context, id int64, req dto.CareerRequest) (*models.Career, error)
	Delete(ctx context.Context, id int64) error
}

// CareerHandler exposes the admin career timeline endpoints.
type CareerHandler struct {
	service careerService
}

// NewCareerHandler builds a new handler.
func NewCareerHandler(service careerService) *CareerHandler {
	return &CareerHandler{service: service}
}

// List godoc
// @Summary List career entries
// @Tags Career
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/careers [get]
func (h *CareerHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create godoc
// @Summary Create a career entry
// @Tags Career
// @Accept json
// @Produce json
// @Param payload body dto.CareerRequest true "Career payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/careers [post]
func (h *CareerHandler) Create(c *gin.Context) {
	var req dto.CareerRequest
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
// @Summary Update a career entry
// @Tags Career
// @Accept json
// @Produce json
// @Param id path int true "Career id"
// @Param payload body dto.CareerRequest true "Career payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/careers/{id} [put]
func (h *CareerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CareerRequest
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
// @Summary Delete a career entry
// @Tags Career
// @Produce json
// @Param id path int true "Career id"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/careers/{id} [delete]
func (h *CareerHandler) Delete(c *gin.Context) {
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
