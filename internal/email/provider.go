package email

// Provider sends outgoing mail. Delivery failures are returned to the
// caller, never swallowed.
type Provider interface {
	// Send delivers a prepared email.
	Send(email *Email) error

	// SendTemplate renders a named template and delivers it.
	SendTemplate(to []string, subject, templateName string, data TemplateData) error

	// Validate checks the provider configuration.
	Validate() error
}

// TemplateRenderer renders message bodies.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name, templateStr string) error
}
