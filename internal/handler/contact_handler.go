package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fendiRahmans/portofolio-api/internal/dto"
	"github.com/fendiRahmans/portofolio-api/internal/models"
	appErrors "github.com/fendiRahmans/portofolio-api/pkg/errors"
	"github.com/fendiRahmans/portofolio-api/pkg/response"
)

type contactService interface {
	List(ctx context.Context) ([]models.Contact, error)
	UpdateStatus(ctx context.Context, id int64, req dto.UpdateContactStatusRequest) error
	Delete(ctx context.Context, id int64) error
	ExportCSV(ctx context.Context) ([]byte, error)
	ExportPDF(ctx context.Context) ([]byte, error)
}

// ContactHandler exposes the admin contact inbox endpoints.
type ContactHandler struct {
	service contactService
}

// NewContactHandler builds a new handler.
func NewContactHandler(service contactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// List godoc
// @Summary List contact messages
// @Tags Contact
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// UpdateStatus godoc
// @Summary Update a contact message status
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path int true "Contact id"
// @Param payload body dto.UpdateContactStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/contacts/{id}/status [patch]
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateContactStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"id": id, "status": req.Status})
}

// Delete godoc
// @Summary Delete a contact message
// @Tags Contact
// @Produce json
// @Param id path int true "Contact id"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/contacts/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
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

// ExportCSV godoc
// @Summary Export contact messages as CSV
// @Tags Contact
// @Produce text/csv
// @Success 200 {file} file
// @Router /admin/contacts/export/csv [get]
func (h *ContactHandler) ExportCSV(c *gin.Context) {
	data, err := h.service.ExportCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	serveAttachment(c, "text/csv", exportFilename("csv"), data)
}

// ExportPDF godoc
// @Summary Export contact messages as PDF
// @Tags Contact
// @Produce application/pdf
// @Success 200 {file} file
// @Router /admin/contacts/export/pdf [get]
func (h *ContactHandler) ExportPDF(c *gin.Context) {
	data, err := h.service.ExportPDF(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	serveAttachment(c, "application/pdf", exportFilename("pdf"), data)
}

func exportFilename(ext string) string {
	return fmt.Sprintf("contacts_%s.%s", time.Now().Format("20060102_150405"), ext)
}

func serveAttachment(c *gin.Context, contentType, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
