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

type settingService interface {
	List(ctx context.Context) ([]models.Setting, error)
	GetByName(ctx context.Context, name string) (*models.Setting, error)
	Create(ctx context.Context, req dto.SettingRequest) (*models.Setting, error)
	Update(ctx context.Context, id int64, req dto.SettingRequest) (*models.Setting, error)
	Delete(ctx context.Context, id int64) error
	AvailableForHire(ctx context.Context) bool
	ToggleAvailableForHire(ctx context.Context, available bool) error
}

// SettingHandler exposes the admin settings endpoints.
type SettingHandler struct {
	service settingService
}

// NewSettingHandler builds a new handler.
func NewSettingHandler(service settingService) *SettingHandler {
	return &SettingHandler{service: service}
}

// List godoc
// @Summary List settings
// @Tags Setting
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/settings [get]
func (h *SettingHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// GetByName godoc
// @Summary Get a setting by name
// @Tags Setting
// @Produce json
// @Param name path string true "Setting name"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/settings/by-name/{name} [get]
func (h *SettingHandler) GetByName(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "setting name is required"))
		return
	}

	item, err := h.service.GetByName(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Create godoc
// @Summary Create a setting
// @Tags Setting
// @Accept json
// @Produce json
// @Param payload body dto.SettingRequest true "Setting payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /admin/settings [post]
func (h *SettingHandler) Create(c *gin.Context) {
	var req dto.SettingRequest
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
// @Summary Update a setting
// @Tags Setting
// @Accept json
// @Produce json
// @Param id path int true "Setting id"
// @Param payload body dto.SettingRequest true "Setting payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/settings/{id} [put]
func (h *SettingHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.SettingRequest
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
// @Summary Delete a setting
// @Tags Setting
// @Produce json
// @Param id path int true "Setting id"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/settings/{id} [delete]
func (h *SettingHandler) Delete(c *gin.Context) {
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

// ToggleAvailability godoc
// @Summary Set the available-for-hire flag
// @Tags Setting
// @Accept json
// @Produce json
// @Param payload body dto.ToggleAvailabilityRequest true "Availability payload"
// @Success 200 {object} response.Envelope
// @Router /admin/settings/availability [put]
func (h *SettingHandler) ToggleAvailability(c *gin.Context) {
	var req dto.ToggleAvailabilityRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	if err := h.service.ToggleAvailableForHire(c.Request.Context(), *req.Available); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"name": models.SettingAvailableForHire, "value": *req.Available})
}
