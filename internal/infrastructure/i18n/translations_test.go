package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTranslatorRendersBothLocales(t *testing.T) {
	tr := NewTranslator("fr", zap.NewNop())

	assert.Equal(t, "Candidature acceptée", tr.T("fr", "notification.approval.title", nil))
	assert.Equal(t, "Application approved", tr.T("en", "notification.approval.title", nil))
	assert.Equal(t, "Seul l'organisateur peut effectuer cette action.",
		tr.T("fr", "cli.error.not_creator", nil))
}

func TestTranslatorFallsBackToDefaultLocale(t *testing.T) {
	tr := NewTranslator("fr", zap.NewNop())

	assert.Equal(t, "Candidature refusée", tr.T("de", "notification.rejection.title", nil))
	assert.Equal(t, "Événement non trouvé.", tr.T("", "cli.error.event_not_found", nil))
}

func TestTranslatorReturnsKeyWhenMissing(t *testing.T) {
	tr := NewTranslator("fr", zap.NewNop())

	assert.Equal(t, "cli.error.nope", tr.T("fr", "cli.error.nope", nil))
	assert.Equal(t, "", tr.T("fr", "", nil))
}

func TestTranslatorAppliesTemplateData(t *testing.T) {
	tr := NewTranslator("en", zap.NewNop())

	got := tr.T("en", "cli.feed.toast", map[string]any{"Title": "Application approved"})
	assert.Equal(t, "New notification: Application approved", got)
}
