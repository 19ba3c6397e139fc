package domain

// Inventory is a fixed-size, slot-addressed container owned by the host.
// Implementations are not expected to be safe for concurrent use; callers
// mutate an inventory only from the goroutine that owns it.
type Inventory interface {
	Size() int
	// Item returns the stack in slot i, or nil if the slot is empty
	Item(i int) *ItemStack
	// SetItem replaces slot i; nil clears it
	SetItem(i int, stack *ItemStack)
	// AddItem stores as much of the stacks as fits and returns the leftovers
	AddItem(stacks ...*ItemStack) []*ItemStack
}

// Location is a position in a world
type Location struct {
	World string  `json:"world"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

// World accepts items dropped on the ground
type World interface {
	Name() string
	DropItemNaturally(loc Location, stack *ItemStack)
}

// Player is an online player as seen by plugin code
type Player interface {
	Name() string
	Inventory() Inventory
	// HeldSlot returns the inventory slot index of the item in hand
	HeldSlot() int
	HasPermission(permission string) bool
	SendMessage(message string)
	Location() Location
	World() World
}
