package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fendiRahmans/portofolio-api/internal/dto"
	"github.com/fendiRahmans/portofolio-api/internal/models"
	appErrors "github.com/fendiRahmans/portofolio-api/pkg/errors"
	"github.com/fendiRahmans/portofolio-api/pkg/export"
	"github.com/fendiRahmans/portofolio-api/pkg/validation"
)

type contactRepository interface {
	List(ctx context.Context) ([]models.Contact, error)
	Create(ctx context.Context, item *models.Contact) error
	UpdateStatus(ctx context.Context, id int64, status models.ContactStatus) error
	Delete(ctx context.Context, id int64) error
}

// ContactService handles the public contact form and the admin inbox.
type ContactService struct {
	repo      contactRepository
	validator *validator.Validate
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	logger    *zap.Logger
}

// NewContactService constructs the service.
func NewContactService(repo contactRepository, validate *validator.Validate, logger *zap.Logger) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validation.New()
	}
	return &ContactService{
		repo:      repo,
		validator: validate,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		logger:    logger,
	}
}

// List returns the inbox newest-first.
func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch contacts")
	}
	if items == nil {
		items = []models.Contact{}
	}
	return items, nil
}

// Submit stores a public contact-form message. The status is forced to
// "new" regardless of anything the client sent.
func (s *ContactService) Submit(ctx context.Context, req dto.CreateContactRequest) (*models.Contact, error) {
	if verr := validation.Check(s.validator, req); verr != nil {
		return nil, verr
	}

	item := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Status:  models.ContactStatusNew,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store message")
	}

	s.logger.Info("contact message received", zap.Int64("id", item.ID))
	return item, nil
}

// UpdateStatus transitions a message between new and read.
func (s *ContactService) UpdateStatus(ctx context.Context, id int64, req dto.UpdateContactStatusRequest) error {
	if verr := validation.Check(s.validator, req); verr != nil {
		return verr
	}

	if err := s.repo.UpdateStatus(ctx, id, models.ContactStatus(req.Status)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "contact not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update contact status")
	}
	return nil
}

// Delete removes a message.
func (s *ContactService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "contact not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete contact")
	}
	return nil
}

// ExportCSV renders the whole inbox as CSV.
func (s *ContactService) ExportCSV(ctx context.Context) ([]byte, error) {
	data, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	payload, err := s.csv.Render(*data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
	}
	return payload, nil
}

// ExportPDF renders the whole inbox as a tabular PDF.
func (s *ContactService) ExportPDF(ctx context.Context) ([]byte, error) {
	data, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	payload, err := s.pdf.Render(*data, "Contact Messages")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
	}
	return payload, nil
}

func (s *ContactService) dataset(ctx context.Context) (*export.Dataset, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	data := &export.Dataset{
		Headers: []string{"Date", "Name", "Email", "Status", "Message"},
		Rows:    make([]map[string]string, 0, len(items)),
	}
	for _, item := range items {
		data.Rows = append(data.Rows, map[string]string{
			"Date":    item.CreatedAt.Format("2006-01-02 15:04"),
			"Name":    item.Name,
			"Email":   item.Email,
			"Status":  string(item.Status),
			"Message": item.Message,
		})
	}
	return data, nil
}
