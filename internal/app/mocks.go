package app

import (
	"sync"

	"encore_backend/internal/email"
	"encore_backend/internal/logger"
)

// MockEmailProvider records outgoing mail instead of delivering it.
// Used in the test environment so flows that notify by email succeed
// without an SMTP server. Templates are rendered through the real
// template manager so recorded bodies match what SMTP would send.
type MockEmailProvider struct {
	mu        sync.Mutex
	sent      []email.Email
	failWith  error
	templates *email.TemplateManager
}

func NewMockEmailProvider() *MockEmailProvider {
	return &MockEmailProvider{templates: email.NewTemplateManager()}
}

func (m *MockEmailProvider) Send(e *email.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.sent = append(m.sent, *e)
	logger.Info("mock email sent", "to", e.To, "subject", e.Subject)
	return nil
}

func (m *MockEmailProvider) SendTemplate(to []string, subject, templateName string, data email.TemplateData) error {
	body, err := m.templates.Render(templateName, data)
	if err != nil {
		return err
	}
	return m.Send(&email.Email{To: to, Subject: subject, HTMLBody: body})
}

func (m *MockEmailProvider) Validate() error { return nil }

// FailWith makes every subsequent send return err. Pass nil to
// restore delivery.
func (m *MockEmailProvider) FailWith(err error) {
	m.mu.Lock()
	m.failWith = err
	m.mu.Unlock()
}

// SentEmails returns a snapshot of everything recorded so far.
func (m *MockEmailProvider) SentEmails() []email.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]email.Email, len(m.sent))
	copy(out, m.sent)
	return out
}

func (m *MockEmailProvider) Reset() {
	m.mu.Lock()
	m.sent = nil
	m.failWith = nil
	m.mu.Unlock()
}
