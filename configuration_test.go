package crdesc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LdDl/crdesc/realizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfiguration(t *testing.T) {
	cfg, err := LoadConfiguration("")
	require.NoError(t, err)
	assert.Equal(t, realizer.English, cfg.GeneratorLanguage())
	assert.Equal(t, FORMAT_TEXT, cfg.Format)
	assert.Equal(t, GEOMETRY_WKT, cfg.GeometryFormat)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigurationFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "crdesc.yaml")
	content := "language: fr\nformat: geojson\nverbose: true\n"
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0o644))

	cfg, err := LoadConfiguration(fileName)
	require.NoError(t, err)
	assert.Equal(t, realizer.French, cfg.GeneratorLanguage())
	assert.Equal(t, FORMAT_GEOJSON, cfg.Format)
	assert.Equal(t, GEOMETRY_WKT, cfg.GeometryFormat)
	assert.True(t, cfg.Verbose)
}

func TestConfigurationEnvironment(t *testing.T) {
	t.Setenv(ENV_LANGUAGE, "FR")
	t.Setenv(ENV_FORMAT, "csv")
	t.Setenv(ENV_GEOMETRY, "geojson")

	cfg, err := LoadConfiguration("")
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Language)
	assert.Equal(t, FORMAT_CSV, cfg.Format)
	assert.Equal(t, GEOMETRY_GEOJSON, cfg.GeometryFormat)
}

func TestConfigurationValidation(t *testing.T) {
	t.Setenv(ENV_LANGUAGE, "de")
	_, err := LoadConfiguration("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Language")

	cfg := DefaultConfiguration()
	cfg.Format = "xml"
	assert.Error(t, cfg.Validate())

	_, err = LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
