package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	testStone   = Material{ID: 1, Name: "STONE", MaxStack: 64}
	testPearl   = Material{ID: 368, Name: "ENDER_PEARL", MaxStack: 16}
	testLeather = Material{ID: 299, Name: "LEATHER_CHESTPLATE", MaxStack: 1, Dyeable: true}
	testAir     = Material{ID: MaterialIDAir, Name: MaterialNameAir}

	sharpness  = Enchantment{ID: 16, Name: "SHARPNESS", MaxLevel: 5}
	unbreaking = Enchantment{ID: 34, Name: "UNBREAKING", MaxLevel: 3}
)

func TestItemStack_IsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		stack *ItemStack
		want  bool
	}{
		{"nil", nil, true},
		{"air", NewItemStack(testAir, 5), true},
		{"zero amount", NewItemStack(testStone, 0), true},
		{"negative amount", NewItemStack(testStone, -1), true},
		{"stone", NewItemStack(testStone, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stack.IsEmpty())
		})
	}
}

func TestItemStack_Clone(t *testing.T) {
	orig := NewItemStack(testLeather, 1)
	orig.AddEnchantment(unbreaking, 2)
	orig.SetColor(ColorRed)

	c := orig.Clone()
	c.Enchantments[0].Level = 3
	c.Color.R = 0

	assert.Equal(t, 2, orig.EnchantmentLevelOf("unbreaking"))
	assert.Equal(t, ColorRed, *orig.Color)

	var nilStack *ItemStack
	assert.Nil(t, nilStack.Clone())
}

func TestItemStack_AddEnchantment(t *testing.T) {
	s := NewItemStack(testStone, 1)

	s.AddEnchantment(sharpness, 10)
	s.AddEnchantment(sharpness, 2)
	s.AddEnchantment(unbreaking, 1)

	assert.Len(t, s.Enchantments, 2)
	assert.Equal(t, 2, s.EnchantmentLevelOf("SHARPNESS"))
	assert.Equal(t, 1, s.EnchantmentLevelOf("Unbreaking"))
	assert.Equal(t, 0, s.EnchantmentLevelOf("MENDING"))
}

func TestItemStack_SetColor(t *testing.T) {
	leather := NewItemStack(testLeather, 1)
	assert.True(t, leather.SetColor(ColorNavy))
	assert.Equal(t, ColorNavy, *leather.Color)

	stone := NewItemStack(testStone, 1)
	assert.False(t, stone.SetColor(ColorNavy))
	assert.Nil(t, stone.Color)
}

func TestItemStack_IsSimilar(t *testing.T) {
	base := func() *ItemStack {
		s := NewItemStack(testStone, 1)
		s.AddEnchantment(sharpness, 1)
		return s
	}

	tests := []struct {
		name   string
		modify func(s *ItemStack)
		want   bool
	}{
		{"amount ignored", func(s *ItemStack) { s.Amount = 40 }, true},
		{"material", func(s *ItemStack) { s.Material = testPearl }, false},
		{"variant", func(s *ItemStack) { s.Variant = 3 }, false},
		{"display name", func(s *ItemStack) { s.DisplayName = "Rock" }, false},
		{"enchantment level", func(s *ItemStack) { s.Enchantments[0].Level = 2 }, false},
		{"extra enchantment", func(s *ItemStack) { s.AddEnchantment(unbreaking, 1) }, false},
		{"color", func(s *ItemStack) { c := ColorRed; s.Color = &c }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base()
			tt.modify(other)
			assert.Equal(t, tt.want, base().IsSimilar(other))
		})
	}

	assert.False(t, base().IsSimilar(nil))
}

func TestItemStack_MaxStackSize(t *testing.T) {
	assert.Equal(t, 16, NewItemStack(testPearl, 1).MaxStackSize())
	assert.Equal(t, DefaultMaxStack, NewItemStack(Material{ID: 9999, Name: "MODDED"}, 1).MaxStackSize())
}

func TestItemStack_HasDisplayName(t *testing.T) {
	var nilStack *ItemStack
	assert.False(t, nilStack.HasDisplayName())
	assert.False(t, NewItemStack(testStone, 1).HasDisplayName())
	assert.True(t, (&ItemStack{Material: testStone, Amount: 1, DisplayName: "Rock"}).HasDisplayName())
}
