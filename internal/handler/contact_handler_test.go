package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fendiRahmans/portofolio-api/internal/dto"
	"github.com/fendiRahmans/portofolio-api/internal/models"
	appErrors "github.com/fendiRahmans/portofolio-api/pkg/errors"
)

type stubContactService struct {
	items    []models.Contact
	err      error
	statuses map[int64]string
	csv      []byte
	pdf      []byte
}

func (s *stubContactService) List(ctx context.Context) ([]models.Contact, error) {
	return s.items, s.err
}

func (s *stubContactService) UpdateStatus(ctx context.Context, id int64, req dto.UpdateContactStatusRequest) error {
	if s.err != nil {
		return s.err
	}
	if s.statuses == nil {
		s.statuses = make(map[int64]string)
	}
	s.statuses[id] = req.Status
	return nil
}

func (s *stubContactService) Delete(ctx context.Context, id int64) error {
	return s.err
}

func (s *stubContactService) ExportCSV(ctx context.Context) ([]byte, error) {
	return s.csv, s.err
}

func (s *stubContactService) ExportPDF(ctx context.Context) ([]byte, error) {
	return s.pdf, s.err
}

func newContactRouter(svc *stubContactService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewContactHandler(svc)
	r := gin.New()
	r.GET("/contacts", h.List)
	r.PATCH("/contacts/:id/status", h.UpdateStatus)
	r.DELETE("/contacts/:id", h.Delete)
	r.GET("/contacts/export/csv", h.ExportCSV)
	r.GET("/contacts/export/pdf", h.ExportPDF)
	return r
}

func TestContactHandlerUpdateStatus(t *testing.T) {
	svc := &stubContactService{}
	r := newContactRouter(svc)

	w := performJSON(r, http.MethodPatch, "/contacts/3/status", `{"status":"read"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "read", svc.statuses[3])
}

func TestContactHandlerUpdateStatusNotFound(t *testing.T) {
	r := newContactRouter(&stubContactService{err: appErrors.Clone(appErrors.ErrNotFound, "contact not found")})

	w := performJSON(r, http.MethodPatch, "/contacts/3/status", `{"status":"read"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactHandlerExportCSVHeaders(t *testing.T) {
	r := newContactRouter(&stubContactService{csv: []byte("Date,Name\n")})

	w := performJSON(r, http.MethodGet, "/contacts/export/csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
}

func TestContactHandlerExportPDFHeaders(t *testing.T) {
	r := newContactRouter(&stubContactService{pdf: []byte("%PDF-1.4")})

	w := performJSON(r, http.MethodGet, "/contacts/export/pdf", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".pdf")
}
