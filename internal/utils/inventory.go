package utils

import "github.com/osse101/PluginKit_Go/internal/domain"

// FirstEmpty returns the index of the first empty slot, or -1 if the inventory is full
func FirstEmpty(inv domain.Inventory) int {
	for i := 0; i < inv.Size(); i++ {
		if inv.Item(i).IsEmpty() {
			return i
		}
	}
	return -1
}

// FirstPartial returns the first slot holding a stack similar to the given one
// that still has room, or -1.
func FirstPartial(inv domain.Inventory, stack *domain.ItemStack) int {
	for i := 0; i < inv.Size(); i++ {
		slot := inv.Item(i)
		if slot.IsEmpty() {
			continue
		}
		if slot.IsSimilar(stack) && slot.Amount < slot.MaxStackSize() {
			return i
		}
	}
	return -1
}
