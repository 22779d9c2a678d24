package material

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/osse101/GearRepair_Go/internal/domain"
	"github.com/osse101/GearRepair_Go/internal/validation"
)

// Sentinel errors for the material loader
var (
	ErrDuplicateID   = errors.New("duplicate material id")
	ErrInvalidConfig = errors.New("invalid configuration")
)

//go:embed schema/materials.schema.json
var catalogSchema []byte

// Config represents the JSON configuration for the material catalog
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Materials []Def `json:"materials"`
}

// Def represents a single material definition. RepairOverrides replaces
// RepairValue for a gear type or gear category.
type Def struct {
	ID              string         `json:"id"`
	DisplayName     string         `json:"display_name,omitempty"`
	Tier            int            `json:"tier"`
	RepairValue     int            `json:"repair_value"`
	RepairOverrides map[string]int `json:"repair_overrides,omitempty"`
	Tags            []string       `json:"tags,omitempty"`
}

// Loader handles loading and validating material configuration
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte) (*Config, error)
	Validate(config *Config) error
}

type materialLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() (Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.Register(SchemaName, catalogSchema); err != nil {
		return nil, err
	}
	return &materialLoader{schemaValidator: v}, nil
}

// Load reads, schema-checks and validates a materials JSON file
func (l *materialLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	config, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Parse schema-checks and validates raw catalog JSON
func (l *materialLoader) Parse(data []byte) (*Config, error) {
	if err := l.schemaValidator.Validate(SchemaName, data); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailedFmt, SchemaName, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	if err := l.Validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the material configuration for errors the schema cannot express
func (l *materialLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Materials) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoMaterialsDefined)
	}

	seen := make(map[string]bool, len(config.Materials))
	for i := range config.Materials {
		def := &config.Materials[i]

		if def.ID == "" {
			return fmt.Errorf(ErrFmtEmptyID, ErrInvalidConfig, i)
		}
		if strings.Contains(def.ID, domain.ShorthandSeparator) {
			return fmt.Errorf(ErrFmtInvalidID, ErrInvalidConfig, def.ID, domain.ShorthandSeparator)
		}
		if seen[def.ID] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateID, def.ID)
		}
		seen[def.ID] = true

		if def.Tier < 0 {
			return fmt.Errorf(ErrFmtNegativeTier, ErrInvalidConfig, def.ID)
		}
	}
	return nil
}
