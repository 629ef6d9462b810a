package xconfig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	xmlcore "github.com/arturoeanton/go-xmlcore/xml"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, "preserve", cfg.Whitespace)
	require.Equal(t, "true", cfg.BoolTrue)
	require.Equal(t, "false", cfg.BoolFalse)
	require.Nil(t, cfg.ProcessEntities)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	entities := false
	cfg := &Config{
		Whitespace:      "collapse",
		ProcessEntities: &entities,
		Compact:         true,
		BoolTrue:        "yes",
		BoolFalse:       "no",
	}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "collapse", loaded.Whitespace)
	require.NotNil(t, loaded.ProcessEntities)
	require.False(t, *loaded.ProcessEntities)
	require.True(t, loaded.Compact)
	require.Equal(t, "yes", loaded.BoolTrue)
	require.Equal(t, "no", loaded.BoolFalse)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDocumentOptionsAppliesWhitespaceMode(t *testing.T) {
	cfg := &Config{Whitespace: "collapse"}
	doc := xmlcore.NewDocument(cfg.DocumentOptions()...)
	require.NoError(t, doc.Parse([]byte("<r>  a   b  </r>")))
	require.Equal(t, "a b", doc.RootElement().Text())
}

func TestDocumentOptionsAppliesBoolStrings(t *testing.T) {
	cfg := &Config{Whitespace: "preserve", BoolTrue: "yes", BoolFalse: "no"}
	doc := xmlcore.NewDocument(cfg.DocumentOptions()...)
	require.NoError(t, doc.Parse([]byte("<r/>")))
	doc.RootElement().SetBoolAttribute("enabled", true)
	require.Equal(t, `<r enabled="yes"/>`, doc.CompactString())
}
