package inventory

import (
	"sync"

	"github.com/osse101/PluginKit_Go/internal/domain"
)

// Drop records an item dropped into a world
type Drop struct {
	Location domain.Location
	Stack    *domain.ItemStack
}

// World collects dropped items
type World struct {
	name string

	mu    sync.Mutex
	drops []Drop
}

// NewWorld creates an empty world
func NewWorld(name string) *World {
	return &World{name: name}
}

func (w *World) Name() string { return w.name }

func (w *World) DropItemNaturally(loc domain.Location, stack *domain.ItemStack) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.drops = append(w.drops, Drop{Location: loc, Stack: stack})
}

// Drops returns every item dropped so far
func (w *World) Drops() []Drop {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Drop, len(w.drops))
	copy(out, w.drops)
	return out
}

// Player is an in-memory player
type Player struct {
	name     string
	inv      *Inventory
	world    *World
	location domain.Location

	mu          sync.Mutex
	heldSlot    int
	permissions map[string]bool
	messages    []string
}

// NewPlayer creates a player with an empty player-sized inventory
func NewPlayer(name string, world *World) *Player {
	if world == nil {
		world = NewWorld("world")
	}
	return &Player{
		name:        name,
		inv:         New(PlayerInventorySize),
		world:       world,
		location:    domain.Location{World: world.Name()},
		permissions: make(map[string]bool),
	}
}

func (p *Player) Name() string { return p.name }

func (p *Player) Inventory() domain.Inventory { return p.inv }

// Slots exposes the concrete inventory
func (p *Player) Slots() *Inventory { return p.inv }

func (p *Player) HeldSlot() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.heldSlot
}

// SetHeldSlot selects a hotbar slot (0-8)
func (p *Player) SetHeldSlot(slot int) {
	if slot < 0 || slot >= HotbarSize {
		return
	}
	p.mu.Lock()
	p.heldSlot = slot
	p.mu.Unlock()
}

func (p *Player) HasPermission(permission string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.permissions[permission]
}

// Grant gives the player a permission
func (p *Player) Grant(permission string) {
	p.mu.Lock()
	p.permissions[permission] = true
	p.mu.Unlock()
}

func (p *Player) SendMessage(message string) {
	p.mu.Lock()
	p.messages = append(p.messages, message)
	p.mu.Unlock()
}

// Messages returns every message sent to the player
func (p *Player) Messages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.messages))
	copy(out, p.messages)
	return out
}

func (p *Player) Location() domain.Location {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.location
}

// Teleport moves the player
func (p *Player) Teleport(loc domain.Location) {
	p.mu.Lock()
	p.location = loc
	p.mu.Unlock()
}

func (p *Player) World() domain.World { return p.world }
