package email

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TemplateManager holds parsed message templates.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	for name, body := range builtinTemplates {
		_ = tm.AddTemplate(name, body)
	}
	return tm
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// LoadDir parses every .html file in dir as a template named after
// the file, overriding a builtin of the same name.
func (tm *TemplateManager) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read template dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".html" {
			continue
		}
		body, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
		}
		name := strings.TrimSuffix(entry.Name(), ".html")
		if err := tm.AddTemplate(name, string(body)); err != nil {
			return err
		}
	}
	return nil
}

func (tm *TemplateManager) AddTemplate(name, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}

var builtinTemplates = map[string]string{
	"application_submitted": `
<p>Artist <strong>{{.Name}}</strong> has submitted an application.</p>
<p>Genre: {{.Genre}}<br>Email: {{.Email}}</p>
<p>Review it in the admin dashboard.</p>`,

	"application_decision": `
<p>Hello {{.Name}},</p>
<p>Your artist application has been <strong>{{.Status}}</strong>.</p>
{{if .Feedback}}<p>Feedback: {{.Feedback}}</p>{{end}}`,

	"admin_invitation": `
<p>You have been invited to join Encore as an administrator.</p>
<p>Use this token to accept the invitation: <code>{{.Token}}</code></p>
<p>The invitation expires on {{.ExpiresAt}}.</p>`,
}
