package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_BundledEnglish(t *testing.T) {
	got := Render("en", "reaction", map[string]string{"actor": "Ada Lovelace"})
	assert.Equal(t, "Ada Lovelace liked your post", got)

	got = Render("en", "collaboration_invitation", map[string]string{"org": "Food Bank", "title": "Winter Drive"})
	assert.Equal(t, "Food Bank invited your organization to collaborate on Winter Drive", got)
}

func TestRender_QuotedMessage(t *testing.T) {
	got := Render("en", "collaboration_request_message", map[string]string{"org": "Shelter", "message": "hello"})
	assert.Equal(t, `Shelter expressed interest in collaborating: "hello"`, got)
}

func TestTranslate_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "{actor} replied to your comment", Translate("fr", "reply"))
}

func TestTranslate_UnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no_such_key", Translate("en", "no_such_key"))
}

func TestLoadTranslations_AddsLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"catalogue/cy/notifications.yaml": &fstest.MapFile{
			Data: []byte("NOTIFICATIONS:\n  reaction: \"Hoffodd {actor} eich post\"\n"),
		},
	}
	require.NoError(t, LoadTranslations(fsys, "catalogue"))

	assert.Equal(t, "Hoffodd Ada eich post", Render("cy", "reaction", map[string]string{"actor": "Ada"}))
	assert.Equal(t, "{actor} commented on your post", Translate("cy", "comment"))
}

func TestLoadTranslations_InvalidYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"broken/xx/notifications.yaml": &fstest.MapFile{Data: []byte("NOTIFICATIONS: [unclosed")},
	}
	assert.Error(t, LoadTranslations(fsys, "broken"))
}
