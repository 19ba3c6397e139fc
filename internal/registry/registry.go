// Package registry holds the material and enchantment tables that item
// descriptors are resolved against.
package registry

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/PluginKit_Go/internal/domain"
	"github.com/osse101/PluginKit_Go/internal/validation"
)

//go:embed data/*.json
var embedded embed.FS

// Document is the JSON layout of a registry file
type Document struct {
	Version      string               `json:"version"`
	Description  string               `json:"description,omitempty"`
	Materials    []domain.Material    `json:"materials"`
	Enchantments []domain.Enchantment `json:"enchantments"`
}

// Registry resolves material and enchantment names. It is read-only after
// construction and safe for concurrent use.
type Registry struct {
	version      string
	materials    map[string]domain.Material
	materialIDs  map[int]domain.Material
	enchantments map[string]domain.Enchantment
}

// Default returns the registry built from the embedded legacy table
func Default() (*Registry, error) {
	data, err := embedded.ReadFile(DefaultDataPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadRegistryFailed, err)
	}
	return LoadBytes(data, DefaultDataPath)
}

// Load reads, schema-checks and validates a registry file from disk.
// An empty path loads the embedded table.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadRegistryFailed, err)
	}
	return LoadBytes(data, path)
}

// LoadBytes builds a registry from a JSON document. source is used in errors.
func LoadBytes(data []byte, source string) (*Registry, error) {
	validator := validation.NewSchemaValidator(embedded)
	if err := validator.ValidateBytes(data, SchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, source, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf(ErrMsgParseRegistryFailed, err)
	}

	r, err := New(doc)
	if err != nil {
		return nil, err
	}

	slog.Default().Debug(LogMsgRegistryLoaded,
		"source", source,
		"version", doc.Version,
		"materials", len(doc.Materials),
		"enchantments", len(doc.Enchantments))
	return r, nil
}

// New builds a registry from an in-memory document
func New(doc Document) (*Registry, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	r := &Registry{
		version:      doc.Version,
		materials:    make(map[string]domain.Material, len(doc.Materials)),
		materialIDs:  make(map[int]domain.Material, len(doc.Materials)),
		enchantments: make(map[string]domain.Enchantment, len(doc.Enchantments)),
	}
	for _, m := range doc.Materials {
		r.materials[normalize(m.Name)] = m
		r.materialIDs[m.ID] = m
	}
	for _, e := range doc.Enchantments {
		r.enchantments[normalize(e.Name)] = e
		for _, alias := range e.Aliases {
			if _, taken := r.enchantments[normalize(alias)]; !taken {
				r.enchantments[normalize(alias)] = e
			}
		}
	}
	return r, nil
}

// Validate checks a registry document for duplicates and impossible values
func Validate(doc Document) error {
	if len(doc.Materials) == 0 {
		return fmt.Errorf(ErrFmtNoMaterials, domain.ErrInvalidConfig)
	}

	names := make(map[string]bool, len(doc.Materials))
	ids := make(map[int]bool, len(doc.Materials))
	for _, m := range doc.Materials {
		key := normalize(m.Name)
		if names[key] {
			return fmt.Errorf(ErrFmtDuplicateMaterialName, domain.ErrInvalidConfig, m.Name)
		}
		if ids[m.ID] {
			return fmt.Errorf(ErrFmtDuplicateMaterialID, domain.ErrInvalidConfig, m.ID)
		}
		if !m.IsAir() && m.MaxStack < 1 {
			return fmt.Errorf(ErrFmtMaterialNoStack, domain.ErrInvalidConfig, m.Name)
		}
		names[key] = true
		ids[m.ID] = true
	}

	enchNames := make(map[string]bool, len(doc.Enchantments))
	enchIDs := make(map[int]bool, len(doc.Enchantments))
	for _, e := range doc.Enchantments {
		key := normalize(e.Name)
		if enchNames[key] {
			return fmt.Errorf(ErrFmtDuplicateEnchantmentName, domain.ErrInvalidConfig, e.Name)
		}
		if enchIDs[e.ID] {
			return fmt.Errorf(ErrFmtDuplicateEnchantmentID, domain.ErrInvalidConfig, e.ID)
		}
		enchNames[key] = true
		enchIDs[e.ID] = true
	}
	return nil
}

// normalize upper-cases a lookup key. A Caser holds state, so each call gets its own.
func normalize(name string) string {
	return cases.Upper(language.Und).String(name)
}

// Version returns the registry document version
func (r *Registry) Version() string { return r.version }

// MaterialByName resolves a material name, ignoring case
func (r *Registry) MaterialByName(name string) (domain.Material, bool) {
	m, ok := r.materials[normalize(name)]
	return m, ok
}

// MaterialByID resolves a legacy numeric material id
func (r *Registry) MaterialByID(id int) (domain.Material, bool) {
	m, ok := r.materialIDs[id]
	return m, ok
}

// EnchantmentByName resolves an enchantment name or legacy alias, ignoring case
func (r *Registry) EnchantmentByName(name string) (domain.Enchantment, bool) {
	e, ok := r.enchantments[normalize(name)]
	return e, ok
}

// Materials returns every material sorted by id
func (r *Registry) Materials() []domain.Material {
	out := make([]domain.Material, 0, len(r.materialIDs))
	for _, m := range r.materialIDs {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
