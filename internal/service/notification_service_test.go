package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jayantx07/Education-Point/internal/models"
)

type fakeMailer struct {
	mu       sync.Mutex
	failures int
	sent     []string
	calls    chan string
}

func newFakeMailer(failures int) *fakeMailer {
	return &fakeMailer{failures: failures, calls: make(chan string, 8)}
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, text, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failures > 0 {
		m.failures--
		m.calls <- "failed"
		return errors.New("mailgun unavailable")
	}
	m.sent = append(m.sent, subject)
	m.calls <- subject
	return nil
}

func waitForCall(t *testing.T, calls <-chan string) string {
	t.Helper()
	select {
	case v := <-calls:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for mail delivery")
		return ""
	}
}

func TestNotificationDeliversToAdmin(t *testing.T) {
	mailer := newFakeMailer(0)
	svc := NewNotificationService(mailer, nil, NotificationConfig{Recipient: "admin@example.com", Workers: 1, RetryDelay: 10 * time.Millisecond}, nil)
	svc.Start(context.Background())
	defer svc.Stop()

	require.NoError(t, svc.ContactSubmitted(models.Contact{ID: "m1", Name: "Dev", Email: "dev@example.com", Subject: "Fees", Message: "Hi"}))
	assert.Equal(t, "New Contact Form Submission: Fees", waitForCall(t, mailer.calls))
}

func TestNotificationRetriesFailedSend(t *testing.T) {
	mailer := newFakeMailer(1)
	svc := NewNotificationService(mailer, nil, NotificationConfig{Recipient: "admin@example.com", Workers: 1, MaxRetries: 2, RetryDelay: 10 * time.Millisecond}, nil)
	svc.Start(context.Background())
	defer svc.Stop()

	require.NoError(t, svc.ContactSubmitted(models.Contact{ID: "m1", Subject: "Batch timing"}))
	assert.Equal(t, "failed", waitForCall(t, mailer.calls))
	assert.Equal(t, "New Contact Form Submission: Batch timing", waitForCall(t, mailer.calls))
}

func TestNotificationDisabledWithoutSender(t *testing.T) {
	svc := NewNotificationService(nil, nil, NotificationConfig{Recipient: "admin@example.com"}, nil)
	svc.Start(context.Background())
	defer svc.Stop()

	assert.False(t, svc.Enabled())
	assert.NoError(t, svc.ContactSubmitted(models.Contact{ID: "m1"}))
}

func TestContactEmailEscapesHTML(t *testing.T) {
	subject, text, body := contactEmail(models.Contact{Name: "<b>Dev</b>", Email: "dev@example.com", Subject: "Fees", Message: "line1\nline2"})

	assert.Equal(t, "New Contact Form Submission: Fees", subject)
	assert.Contains(t, text, "Phone: -")
	assert.Contains(t, body, "&lt;b&gt;Dev&lt;/b&gt;")
	assert.Contains(t, body, "line1<br>line2")
}
