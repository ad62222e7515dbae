package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/Jayantx07/Education-Point/internal/models"
	appErrors "github.com/Jayantx07/Education-Point/pkg/errors"
	"github.com/Jayantx07/Education-Point/pkg/export"
)

// Supported export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

type renderer interface {
	ContentType() string
	Extension() string
	Render(data export.Dataset) ([]byte, error)
}

// ExportService renders admin tables into downloadable files.
type ExportService struct {
	renderers map[string]renderer
	now       func() time.Time
}

// NewExportService constructs an ExportService. Nil renderers fall back to the defaults.
func NewExportService(csv, pdf renderer) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		renderers: map[string]renderer{ExportFormatCSV: csv, ExportFormatPDF: pdf},
		now:       time.Now,
	}
}

// Contacts renders the contact inbox. An empty format means CSV.
func (s *ExportService) Contacts(contacts []models.Contact, format string) (*models.ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}
	r, ok := s.renderers[format]
	if !ok {
		err := appErrors.Clone(appErrors.ErrValidation, "format must be one of: csv, pdf")
		err.Details = map[string]string{"format": "must be one of: csv, pdf"}
		return nil, err
	}

	dataset := export.Dataset{
		Title:   "Contact Messages",
		Headers: []string{"Received", "Name", "Email", "Phone", "Subject", "Status", "Message"},
		Rows:    make([]map[string]string, 0, len(contacts)),
	}
	for _, c := range contacts {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Received": c.CreatedAt.UTC().Format("2006-01-02 15:04"),
			"Name":     c.Name,
			"Email":    c.Email,
			"Phone":    c.Phone,
			"Subject":  c.Subject,
			"Status":   string(c.Status),
			"Message":  c.Message,
		})
	}

	payload, err := r.Render(dataset)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to render export")
	}
	return &models.ExportFile{
		Filename:    fmt.Sprintf("contacts_%s%s", s.now().UTC().Format("20060102_150405"), r.Extension()),
		ContentType: r.ContentType(),
		Data:        payload,
	}, nil
}
