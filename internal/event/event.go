package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types published by the kit
const (
	UpdateChecked   Type = "update.checked"
	UpdateAvailable Type = "update.available"
	ItemsRemoved    Type = "items.removed"
	ItemsDropped    Type = "items.dropped"
)

// UpdateCheckedPayloadV1 is published after every completed version check
type UpdateCheckedPayloadV1 struct {
	Plugin         string `json:"plugin"`
	CurrentVersion string `json:"current_version"`
	LastVersion    string `json:"last_version"`
	UpdateRequired bool   `json:"update_required"`
	Timestamp      int64  `json:"timestamp"`
}

// ItemsPayloadV1 describes items taken from or dropped near a player
type ItemsPayloadV1 struct {
	Player     string `json:"player"`
	Descriptor string `json:"descriptor,omitempty"`
	Material   string `json:"material,omitempty"`
	Amount     int    `json:"amount"`
	Timestamp  int64  `json:"timestamp"`
}

// NewUpdateCheckedEvent builds the event for a finished check. A required
// update is reported as UpdateAvailable.
func NewUpdateCheckedEvent(plugin, current, last string, required bool) Event {
	typ := UpdateChecked
	if required {
		typ = UpdateAvailable
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    typ,
		Payload: UpdateCheckedPayloadV1{
			Plugin:         plugin,
			CurrentVersion: current,
			LastVersion:    last,
			UpdateRequired: required,
			Timestamp:      time.Now().Unix(),
		},
	}
}

// NewItemsRemovedEvent builds the event for items taken from a player
func NewItemsRemovedEvent(player, descriptor string, amount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemsRemoved,
		Payload: ItemsPayloadV1{
			Player:     player,
			Descriptor: descriptor,
			Amount:     amount,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewItemsDroppedEvent builds the event for leftovers dropped at a player's feet
func NewItemsDroppedEvent(player, material string, amount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemsDropped,
		Payload: ItemsPayloadV1{
			Player:    player,
			Material:  material,
			Amount:    amount,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler processes a published event
type Handler func(ctx context.Context, event Event) error

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus publishes events and lets handlers subscribe to them
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-process Bus. Handlers run synchronously on the
// publishing goroutine.
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
