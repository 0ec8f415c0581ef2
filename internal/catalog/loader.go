package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/Clicker_Go/internal/item"
	"github.com/osse101/Clicker_Go/internal/logger"
	"github.com/osse101/Clicker_Go/internal/modifier"
	"github.com/osse101/Clicker_Go/internal/validation"
	"github.com/osse101/Clicker_Go/internal/world"
)

//go:embed schema/*.json
var schemaFS embed.FS

// Sentinel errors for catalog loading
var (
	ErrDuplicateItem = errors.New("duplicate item name")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config is a catalog of item and modifier definitions
type Config struct {
	Version     string        `json:"version"`
	Description string        `json:"description"`
	Items       []ItemDef     `json:"items"`
	Modifiers   []ModifierDef `json:"modifiers"`
}

// ItemDef defines a single item. Omitted fields keep item defaults.
type ItemDef struct {
	Name            string      `json:"name" validate:"required,max=100"`
	Description     *string     `json:"description,omitempty"`
	BasePrice       *Amount     `json:"base_price,omitempty"`
	PriceMultiplier *float64    `json:"price_multiplier,omitempty" validate:"omitempty,gte=0"`
	MaxLevel        *item.Level `json:"max_level,omitempty" validate:"omitempty,gt=0"`
	Level           item.Level  `json:"level,omitempty" validate:"gte=0"`
}

// ModifierDef defines a modifier and the items it is attached to, in order
type ModifierDef struct {
	modifier.Modifier
	Items []string `json:"items,omitempty"`
}

// Loader handles loading, validating and applying catalogs
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte, format string) (*Config, error)
	Validate(config *Config) error
	Apply(ctx context.Context, config *Config, w *world.World) (*ApplyResult, error)
}

// ApplyResult counts what Apply created
type ApplyResult struct {
	ItemsAdded     int
	ModifiersAdded int
	Attachments    int
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(schemaFS),
		validate:        validator.New(),
	}
}

// Load reads a catalog file. The format follows the extension:
// .yaml/.yml or .json.
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	config, err := l.Parse(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Parse decodes catalog bytes in the given format ("json", "yaml" or "yml")
// after checking them against the catalog schema
func (l *catalogLoader) Parse(data []byte, format string) (*Config, error) {
	switch strings.ToLower(format) {
	case "json":
	case "yaml", "yml":
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgConvertYAMLFailed, err)
		}
		data = converted
	default:
		return nil, fmt.Errorf("%w: "+ErrMsgUnsupportedFormat, ErrInvalidConfig, format)
	}

	if err := l.schemaValidator.ValidateBytes(data, SchemaPath); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	return &config, nil
}

// Validate checks the catalog for errors the schema cannot express
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	names := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		if err := l.validateItemDef(i, &config.Items[i], names); err != nil {
			return err
		}
	}

	for i := range config.Modifiers {
		def := &config.Modifiers[i]
		if err := def.Modifier.Validate(); err != nil {
			return fmt.Errorf(ErrFmtModifierInvalid, ErrInvalidConfig, i, err)
		}
		for _, target := range def.Items {
			if !names[target] {
				return fmt.Errorf(ErrFmtModifierUnknownItem, ErrInvalidConfig, def.Name, target)
			}
		}
	}

	return nil
}

func (l *catalogLoader) validateItemDef(index int, def *ItemDef, names map[string]bool) error {
	if err := l.validate.Struct(def); err != nil {
		return fmt.Errorf(ErrFmtItemInvalid, ErrInvalidConfig, index, err)
	}

	if names[def.Name] {
		return fmt.Errorf(ErrFmtDuplicateItem, ErrDuplicateItem, def.Name)
	}
	names[def.Name] = true

	if def.BasePrice != nil && def.BasePrice.Sign() <= 0 {
		return fmt.Errorf(ErrFmtItemInvalid, ErrInvalidConfig, index, "base_price must be positive")
	}

	maxLevel := item.MaxLevel
	if def.MaxLevel != nil {
		maxLevel = *def.MaxLevel
	}
	if def.Level > maxLevel {
		return fmt.Errorf(ErrFmtItemLevelAboveMax, ErrInvalidConfig, def.Name, def.Level, maxLevel)
	}

	return nil
}

// Apply builds the catalog's items and modifiers into w. Name clashes with
// items already in w are rejected before anything is added.
func (l *catalogLoader) Apply(ctx context.Context, config *Config, w *world.World) (*ApplyResult, error) {
	log := logger.FromContext(ctx)

	if err := l.Validate(config); err != nil {
		return nil, err
	}

	existing := make(map[string]bool)
	for _, name := range w.Names() {
		existing[name] = true
	}
	for _, def := range config.Items {
		if existing[def.Name] {
			return nil, fmt.Errorf(ErrFmtDuplicateItem, ErrDuplicateItem, def.Name)
		}
	}

	result := &ApplyResult{}
	for _, def := range config.Items {
		if err := w.AddItem(def.Name, def.options()...); err != nil {
			return nil, fmt.Errorf(ErrMsgAddItemFailed, def.Name, err)
		}
		result.ItemsAdded++
		log.Debug(LogMsgAddedItem, "name", def.Name)
	}

	for _, def := range config.Modifiers {
		id, err := w.AddModifier(def.Modifier)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgAddModifierFailed, def.Name, err)
		}
		result.ModifiersAdded++
		log.Debug(LogMsgAddedModifier, "name", def.Name, "id", id)

		for _, target := range def.Items {
			if err := w.Attach(target, id); err != nil {
				return nil, fmt.Errorf(ErrMsgAttachFailed, def.Name, target, err)
			}
			result.Attachments++
		}
	}

	log.Info(LogMsgCatalogApplied,
		"world", w.ID(),
		"items", result.ItemsAdded,
		"modifiers", result.ModifiersAdded,
		"attachments", result.Attachments)

	return result, nil
}

// options converts the definition into world item options.
// Max level goes before level so the level is checked against the new cap.
func (d ItemDef) options() []world.ItemOption {
	var opts []world.ItemOption
	if d.Description != nil {
		opts = append(opts, world.WithDescription(*d.Description))
	}
	if d.BasePrice != nil {
		opts = append(opts, world.WithBasePrice(&d.BasePrice.Int))
	}
	if d.PriceMultiplier != nil {
		opts = append(opts, world.WithPriceMultiplier(*d.PriceMultiplier))
	}
	if d.MaxLevel != nil {
		opts = append(opts, world.WithMaxLevel(*d.MaxLevel))
	}
	if d.Level > 0 {
		opts = append(opts, world.WithLevel(d.Level))
	}
	return opts
}

// yamlToJSON re-encodes a YAML document as JSON so both formats share
// one schema and one decoder
func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
