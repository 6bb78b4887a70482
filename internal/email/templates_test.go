package email

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinTemplatesRender(t *testing.T) {
	tm := NewTemplateManager()

	body, err := tm.Render("application_submitted", TemplateData{
		"Name":  "Ada",
		"Genre": "highlife",
		"Email": "ada@test.local",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Ada")
	assert.Contains(t, body, "highlife")

	body, err = tm.Render("application_decision", TemplateData{
		"Name":     "Ada",
		"Status":   "approved",
		"Feedback": "Great sample",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "approved")
	assert.Contains(t, body, "Great sample")

	body, err = tm.Render("admin_invitation", TemplateData{
		"Token":     "abc-123",
		"ExpiresAt": "Mon, 01 Sep 2025",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "abc-123")
}

func TestLoadDirOverridesBuiltins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "application_submitted.html"),
		[]byte("<p>Custom notice for {{.Name}}</p>"), 0644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "welcome.html"),
		[]byte("<p>Welcome, {{.Name}}</p>"), 0644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "notes.txt"),
		[]byte("ignored"), 0644))

	tm := NewTemplateManager()
	require.NoError(t, tm.LoadDir(dir))

	body, err := tm.Render("application_submitted", TemplateData{"Name": "Ada"})
	require.NoError(t, err)
	assert.Contains(t, body, "Custom notice for Ada")

	body, err = tm.Render("welcome", TemplateData{"Name": "Ada"})
	require.NoError(t, err)
	assert.Contains(t, body, "Welcome, Ada")

	_, err = tm.Render("notes", nil)
	assert.Error(t, err)
}

func TestLoadDirMissingDir(t *testing.T) {
	tm := NewTemplateManager()
	assert.Error(t, tm.LoadDir(filepath.Join(t.TempDir(), "absent")))
}

func TestRenderUnknownTemplate(t *testing.T) {
	tm := NewTemplateManager()
	_, err := tm.Render("does_not_exist", nil)
	assert.Error(t, err)
}

func TestTemplateEscapesHTML(t *testing.T) {
	tm := NewTemplateManager()
	body, err := tm.Render("application_submitted", TemplateData{
		"Name": "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}
