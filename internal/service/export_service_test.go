package service

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jayantx07/Education-Point/internal/models"
	appErrors "github.com/Jayantx07/Education-Point/pkg/errors"
	"github.com/Jayantx07/Education-Point/pkg/export"
)

func newExportServiceForTest() *ExportService {
	svc := NewExportService(export.NewCSVExporter(), export.NewPDFExporter())
	svc.now = func() time.Time { return time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC) }
	return svc
}

func sampleInbox() []models.Contact {
	return []models.Contact{
		{
			Name:      "Neha Gupta",
			Email:     "neha@example.com",
			Subject:   "Admission",
			Message:   "Batch timings, please",
			Status:    models.ContactStatusUnread,
			CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		},
	}
}

func TestExportContactsCSV(t *testing.T) {
	file, err := newExportServiceForTest().Contacts(sampleInbox(), "")
	require.NoError(t, err)

	assert.Equal(t, "contacts_20240305_093000.csv", file.Filename)
	assert.True(t, strings.HasPrefix(file.ContentType, "text/csv"))

	lines := strings.Split(strings.TrimSpace(string(file.Data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Received,Name,Email,Phone,Subject,Status,Message", lines[0])
	assert.Contains(t, lines[1], "2024-03-01 10:00,Neha Gupta,neha@example.com,,Admission,Unread")
}

func TestExportContactsPDF(t *testing.T) {
	file, err := newExportServiceForTest().Contacts(sampleInbox(), "PDF")
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasSuffix(file.Filename, ".pdf"))
	assert.True(t, strings.HasPrefix(string(file.Data), "%PDF"))
}

func TestExportContactsRejectsUnknownFormat(t *testing.T) {
	_, err := newExportServiceForTest().Contacts(sampleInbox(), "xlsx")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "format must be one of: csv, pdf", appErr.Message)
}
