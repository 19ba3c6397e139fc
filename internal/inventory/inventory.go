// Package inventory provides in-memory implementations of the host inventory,
// player and world interfaces.
package inventory

import (
	"github.com/osse101/PluginKit_Go/internal/domain"
	"github.com/osse101/PluginKit_Go/internal/utils"
)

// Inventory is a fixed-size slot container
type Inventory struct {
	slots []*domain.ItemStack
}

// New creates an empty inventory with the given number of slots
func New(size int) *Inventory {
	if size < 0 {
		size = 0
	}
	return &Inventory{slots: make([]*domain.ItemStack, size)}
}

// NewWith creates an inventory pre-filled with the given stacks, one per slot
func NewWith(size int, stacks ...*domain.ItemStack) *Inventory {
	inv := New(size)
	for i, s := range stacks {
		if i >= size {
			break
		}
		inv.slots[i] = s
	}
	return inv
}

func (inv *Inventory) Size() int { return len(inv.slots) }

func (inv *Inventory) Item(i int) *domain.ItemStack {
	if i < 0 || i >= len(inv.slots) {
		return nil
	}
	if inv.slots[i].IsEmpty() {
		return nil
	}
	return inv.slots[i]
}

func (inv *Inventory) SetItem(i int, stack *domain.ItemStack) {
	if i < 0 || i >= len(inv.slots) {
		return
	}
	if stack.IsEmpty() {
		inv.slots[i] = nil
		return
	}
	inv.slots[i] = stack
}

// AddItem merges each stack into similar partial stacks first, then into empty
// slots. Whatever does not fit is returned.
func (inv *Inventory) AddItem(stacks ...*domain.ItemStack) []*domain.ItemStack {
	var leftovers []*domain.ItemStack
	for _, s := range stacks {
		if s.IsEmpty() {
			continue
		}
		remaining := s.Amount
		for remaining > 0 {
			idx := utils.FirstPartial(inv, s)
			if idx < 0 {
				break
			}
			slot := inv.slots[idx]
			room := slot.MaxStackSize() - slot.Amount
			moved := min(room, remaining)
			slot.Amount += moved
			remaining -= moved
		}
		for remaining > 0 {
			idx := utils.FirstEmpty(inv)
			if idx < 0 {
				break
			}
			placed := s.Clone()
			placed.Amount = min(s.MaxStackSize(), remaining)
			inv.slots[idx] = placed
			remaining -= placed.Amount
		}
		if remaining > 0 {
			left := s.Clone()
			left.Amount = remaining
			leftovers = append(leftovers, left)
		}
	}
	return leftovers
}

// Contents returns a snapshot of every slot, nil for empty ones
func (inv *Inventory) Contents() []*domain.ItemStack {
	out := make([]*domain.ItemStack, len(inv.slots))
	for i := range inv.slots {
		out[i] = inv.Item(i)
	}
	return out
}

// Clear empties every slot
func (inv *Inventory) Clear() {
	for i := range inv.slots {
		inv.slots[i] = nil
	}
}
