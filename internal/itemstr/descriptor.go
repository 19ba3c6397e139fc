package itemstr

import (
	"strings"

	"github.com/osse101/PluginKit_Go/internal/chatcolor"
	"github.com/osse101/PluginKit_Go/internal/domain"
)

// Descriptor is the grammar-level reading of an item descriptor string:
//
//	[name "$"] material [":" variant] ["*" quantity] ["@" entry ("," entry)*]
//
// No random draws happen while building it, so one Descriptor can be reused
// for any number of parses or matches.
type Descriptor struct {
	Raw string `json:"raw"`
	// Name is the display name token as written, DisplayName its rendered form
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`

	MaterialRef string `json:"material_ref"`
	MaterialID  int    `json:"material_id"`
	// Material is nil when a numeric id is not in the registry
	Material *domain.Material `json:"material,omitempty"`

	Variant      int            `json:"variant"`
	Quantity     Quantity       `json:"quantity"`
	Enchantments []EnchantEntry `json:"enchantments,omitempty"`
}

// EnchantEntry is one element of the "@" list. Name may be a palette color.
type EnchantEntry struct {
	Name  string   `json:"name"`
	Level Quantity `json:"level"`
}

// HasVariant reports whether the descriptor pins a variant
func (d Descriptor) HasVariant() bool { return d.Variant != VariantAny }

// HasName reports whether the descriptor carries a display name
func (d Descriptor) HasName() bool { return d.Name != "" }

// Resolved reports whether the material is known to the registry
func (d Descriptor) Resolved() bool { return d.Material != nil }

func (d Descriptor) clone() Descriptor {
	c := d
	if d.Enchantments != nil {
		c.Enchantments = make([]EnchantEntry, len(d.Enchantments))
		copy(c.Enchantments, d.Enchantments)
	}
	if d.Material != nil {
		m := *d.Material
		c.Material = &m
	}
	return c
}

// DisplayName renders a name token: underscores become spaces and '&' color
// codes are translated.
func DisplayName(token string) string {
	return chatcolor.TranslateDefault(strings.ReplaceAll(token, "_", " "))
}

func parseDescriptor(lookup Lookup, raw string) (Descriptor, bool) {
	if raw == "" {
		return Descriptor{}, false
	}

	d := Descriptor{
		Raw:      raw,
		Variant:  VariantAny,
		Quantity: Quantity{Min: 1, Max: 1},
	}

	rest := raw
	if idx := strings.Index(rest, NameSeparator); idx >= 0 {
		d.Name = rest[:idx]
		d.DisplayName = DisplayName(d.Name)
		rest = rest[idx+1:]
	}
	if idx := strings.Index(rest, EnchantSeparator); idx >= 0 {
		d.Enchantments = parseEnchantList(rest[idx+1:])
		rest = rest[:idx]
	}

	parts := splitTrimmed(rest, QuantitySeparator)
	if len(parts) == 0 {
		return Descriptor{}, false
	}
	// "A*1*2" carries no usable quantity
	if len(parts) == 2 {
		d.Quantity = ParseQuantity(parts[1])
	}

	matParts := splitTrimmed(parts[0], VariantSeparator)
	if len(matParts) == 0 || matParts[0] == "" {
		return Descriptor{}, false
	}
	d.MaterialRef = matParts[0]

	if digitsPattern.MatchString(d.MaterialRef) {
		id, err := parseNumber(d.MaterialRef)
		if err != nil {
			return Descriptor{}, false
		}
		d.MaterialID = id
		if m, ok := lookup.MaterialByID(id); ok {
			d.Material = &m
		}
	} else {
		m, ok := lookup.MaterialByName(d.MaterialRef)
		if !ok {
			return Descriptor{}, false
		}
		d.MaterialID = m.ID
		d.Material = &m
	}

	if len(matParts) == 2 && digitsPattern.MatchString(matParts[1]) {
		if v, err := parseNumber(matParts[1]); err == nil {
			d.Variant = v
		}
	}
	return d, true
}

func parseEnchantList(list string) []EnchantEntry {
	var entries []EnchantEntry
	for _, entry := range strings.Split(list, ListSeparator) {
		if entry == "" {
			continue
		}
		e := EnchantEntry{Name: entry, Level: Quantity{Min: 1, Max: 1}}
		if idx := strings.Index(entry, LevelSeparator); idx >= 0 {
			e.Name = entry[:idx]
			e.Level = ParseQuantity(entry[idx+1:])
		}
		entries = append(entries, e)
	}
	return entries
}

// splitTrimmed splits on sep and drops trailing empty fields, so "A*" reads
// as a bare "A".
func splitTrimmed(s, sep string) []string {
	parts := strings.Split(s, sep)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
