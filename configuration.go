package crdesc

import (
	"os"
	"strings"

	"github.com/LdDl/crdesc/realizer"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Output formats of the CLI
const (
	FORMAT_TEXT    = "text"
	FORMAT_JSON    = "json"
	FORMAT_GEOJSON = "geojson"
	FORMAT_CSV     = "csv"
)

// Geometry formats of CSV export
const (
	GEOMETRY_WKT     = "wkt"
	GEOMETRY_GEOJSON = "geojson"
)

// Environment variables overriding configuration file
const (
	ENV_LANGUAGE = "CRDESC_LANGUAGE"
	ENV_FORMAT   = "CRDESC_FORMAT"
	ENV_GEOMETRY = "CRDESC_GEOMETRY"
)

// Configuration tells how to describe and export intersections
type Configuration struct {
	Language       string `yaml:"language" validate:"required,oneof=en fr"`
	Format         string `yaml:"format" validate:"required,oneof=text json geojson csv"`
	GeometryFormat string `yaml:"geometry_format" validate:"required,oneof=wkt geojson"`
	Verbose        bool   `yaml:"verbose"`
}

// DefaultConfiguration returns English text output with WKT geometries
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Language:       string(realizer.English),
		Format:         FORMAT_TEXT,
		GeometryFormat: GEOMETRY_WKT,
	}
}

// LoadConfiguration reads YAML configuration (if fileName is not empty), then applies environment overrides.
// Variables from .env in working directory are loaded first when the file exists.
func LoadConfiguration(fileName string) (*Configuration, error) {
	_ = godotenv.Load()

	cfg := DefaultConfiguration()
	if fileName != "" {
		file, err := os.ReadFile(fileName)
		if err != nil {
			return nil, errors.Wrap(err, "Can't read configuration file")
		}
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, errors.Wrap(err, "Can't parse configuration file")
		}
	}
	cfg.ApplyEnvironment()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvironment overrides fields with non-empty environment variables
func (cfg *Configuration) ApplyEnvironment() {
	if lang := os.Getenv(ENV_LANGUAGE); lang != "" {
		cfg.Language = strings.ToLower(lang)
	}
	if format := os.Getenv(ENV_FORMAT); format != "" {
		cfg.Format = strings.ToLower(format)
	}
	if geomFormat := os.Getenv(ENV_GEOMETRY); geomFormat != "" {
		cfg.GeometryFormat = strings.ToLower(geomFormat)
	}
}

// Validate checks values of configuration
func (cfg *Configuration) Validate() error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		return errors.Errorf("Bad configuration: field '%s' does not satisfy '%s' (got '%v')", first.Field(), first.Tag(), first.Value())
	}
	return errors.Wrap(err, "Bad configuration")
}

// GeneratorLanguage returns configured language for the generator
func (cfg *Configuration) GeneratorLanguage() realizer.Language {
	return realizer.Language(cfg.Language)
}
