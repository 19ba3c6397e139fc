package domain

import "strings"

// Material is an entry of the host's material table.
// ID is the legacy numeric id; 0 is air.
type Material struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	MaxStack int    `json:"max_stack"`
	Dyeable  bool   `json:"dyeable,omitempty"` // leather armor and similar colorable items
}

// IsAir reports whether the material is the empty material
func (m Material) IsAir() bool {
	return m.ID == MaterialIDAir
}

// Enchantment is an entry of the host's enchantment table
type Enchantment struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	MaxLevel int      `json:"max_level"`
	Aliases  []string `json:"aliases,omitempty"`
}

// EnchantmentLevel pairs an enchantment with the level applied to a stack
type EnchantmentLevel struct {
	Enchantment Enchantment `json:"enchantment"`
	Level       int         `json:"level"`
}

// ItemStack represents a stack of items held in an inventory slot.
// A nil *ItemStack and a stack of air both mean "empty slot".
type ItemStack struct {
	Material     Material           `json:"material"`
	Variant      int                `json:"variant"`
	Amount       int                `json:"amount"`
	DisplayName  string             `json:"display_name,omitempty"`
	Enchantments []EnchantmentLevel `json:"enchantments,omitempty"`
	Color        *Color             `json:"color,omitempty"`
}

// NewItemStack creates a stack of the given material and amount
func NewItemStack(material Material, amount int) *ItemStack {
	return &ItemStack{Material: material, Amount: amount}
}

// IsEmpty reports whether the stack holds nothing
func (s *ItemStack) IsEmpty() bool {
	return s == nil || s.Material.IsAir() || s.Amount <= 0
}

// HasDisplayName reports whether a custom display name is set
func (s *ItemStack) HasDisplayName() bool {
	return s != nil && s.DisplayName != ""
}

// Clone returns a deep copy of the stack
func (s *ItemStack) Clone() *ItemStack {
	if s == nil {
		return nil
	}
	c := *s
	if s.Enchantments != nil {
		c.Enchantments = make([]EnchantmentLevel, len(s.Enchantments))
		copy(c.Enchantments, s.Enchantments)
	}
	if s.Color != nil {
		clr := *s.Color
		c.Color = &clr
	}
	return &c
}

// AddEnchantment applies an enchantment regardless of its max level.
// An existing level of the same enchantment is replaced.
func (s *ItemStack) AddEnchantment(e Enchantment, level int) {
	for i := range s.Enchantments {
		if s.Enchantments[i].Enchantment.ID == e.ID {
			s.Enchantments[i].Level = level
			return
		}
	}
	s.Enchantments = append(s.Enchantments, EnchantmentLevel{Enchantment: e, Level: level})
}

// EnchantmentLevelOf returns the level of the named enchantment, or 0
func (s *ItemStack) EnchantmentLevelOf(name string) int {
	for _, el := range s.Enchantments {
		if strings.EqualFold(el.Enchantment.Name, name) {
			return el.Level
		}
	}
	return 0
}

// SetColor dyes the stack. Returns false if the material cannot be dyed.
func (s *ItemStack) SetColor(c Color) bool {
	if !s.Material.Dyeable {
		return false
	}
	s.Color = &c
	return true
}

// IsSimilar reports whether two stacks can merge into one slot
func (s *ItemStack) IsSimilar(o *ItemStack) bool {
	if s == nil || o == nil {
		return false
	}
	if s.Material.ID != o.Material.ID || s.Variant != o.Variant || s.DisplayName != o.DisplayName {
		return false
	}
	if (s.Color == nil) != (o.Color == nil) || (s.Color != nil && *s.Color != *o.Color) {
		return false
	}
	if len(s.Enchantments) != len(o.Enchantments) {
		return false
	}
	for i := range s.Enchantments {
		if s.Enchantments[i].Enchantment.ID != o.Enchantments[i].Enchantment.ID ||
			s.Enchantments[i].Level != o.Enchantments[i].Level {
			return false
		}
	}
	return true
}

// MaxStackSize returns the number of items one slot can hold
func (s *ItemStack) MaxStackSize() int {
	if s.Material.MaxStack < 1 {
		return DefaultMaxStack
	}
	return s.Material.MaxStack
}
