// Package itemstr parses, matches and applies item descriptor strings such as
// "Ruby_Sword$IRON_SWORD:0*1@SHARPNESS:3".
package itemstr

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/osse101/PluginKit_Go/internal/domain"
	"github.com/osse101/PluginKit_Go/internal/event"
	"github.com/osse101/PluginKit_Go/internal/metrics"
	"github.com/osse101/PluginKit_Go/internal/scheduler"
)

// Lookup resolves names against the host's material and enchantment tables.
// *registry.Registry satisfies it.
type Lookup interface {
	MaterialByName(name string) (domain.Material, bool)
	MaterialByID(id int) (domain.Material, bool)
	EnchantmentByName(name string) (domain.Enchantment, bool)
}

// Engine evaluates item descriptors. It is safe for concurrent use; the
// inventories handed to it are not, and must only be touched from the
// goroutine that owns them.
type Engine struct {
	lookup      Lookup
	cache       *descriptorCache
	queue       *scheduler.TickQueue
	publisher   event.Publisher
	log         *slog.Logger
	placeholder bool

	rngMu sync.Mutex
	rng   *rand.Rand
}

type settings struct {
	rng         *rand.Rand
	log         *slog.Logger
	queue       *scheduler.TickQueue
	publisher   event.Publisher
	cacheSize   int
	cacheTTL    time.Duration
	placeholder bool
}

// Option configures an Engine
type Option func(*settings)

// WithRand sets the random source used for quantity ranges
func WithRand(r *rand.Rand) Option {
	return func(s *settings) { s.rng = r }
}

// WithLogger sets the engine logger
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.log = l }
}

// WithQueue sets the tick queue RemoveFromPlayerLater defers onto
func WithQueue(q *scheduler.TickQueue) Option {
	return func(s *settings) { s.queue = q }
}

// WithPublisher publishes item events for player-level changes
func WithPublisher(p event.Publisher) Option {
	return func(s *settings) { s.publisher = p }
}

// WithCacheSize bounds the descriptor cache
func WithCacheSize(n int) Option {
	return func(s *settings) { s.cacheSize = n }
}

// WithCacheTTL expires cached descriptors after d. Zero disables expiry.
func WithCacheTTL(d time.Duration) Option {
	return func(s *settings) { s.cacheTTL = d }
}

// WithPlaceholderMaterial makes Parse build every stack from DIAMOND and
// ignore the resolved material and variant, as older configs expect.
func WithPlaceholderMaterial(enabled bool) Option {
	return func(s *settings) { s.placeholder = enabled }
}

// New creates an engine over the given lookup
func New(lookup Lookup, opts ...Option) (*Engine, error) {
	if lookup == nil {
		return nil, errors.New(ErrMsgNilLookup)
	}

	s := settings{
		cacheSize: DefaultCacheSize,
		cacheTTL:  DefaultCacheTTL,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.cacheSize < 1 {
		return nil, errors.New(ErrMsgInvalidCacheLen)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // Game logic randomness, not security critical
	}
	if s.log == nil {
		s.log = slog.Default()
	}

	return &Engine{
		lookup:      lookup,
		cache:       newDescriptorCache(s.cacheSize, s.cacheTTL),
		queue:       s.queue,
		publisher:   s.publisher,
		log:         s.log,
		placeholder: s.placeholder,
		rng:         s.rng,
	}, nil
}

// ParseDescriptor reads the grammar of s and resolves its material.
// It fails only on empty input, a missing material token or an unknown
// material name; a numeric id the registry does not know still parses.
func (e *Engine) ParseDescriptor(s string) (Descriptor, bool) {
	if d, ok, found := e.cache.Get(s); found {
		return d, ok
	}
	d, ok := parseDescriptor(e.lookup, s)
	e.cache.Set(s, d, ok)
	if !ok {
		e.log.Debug(LogMsgDescriptorRejected, "descriptor", s)
	}
	return d, ok
}

// CachedDescriptors returns the number of descriptor strings held in the cache
func (e *Engine) CachedDescriptors() int { return e.cache.Len() }

// MinMaxRandom draws from a quantity token: "a" yields a, "a-b" a uniform
// value in [a, b]. Malformed parts count as 0.
func (e *Engine) MinMaxRandom(token string) int {
	v := e.roll(ParseQuantity(token))
	metrics.RecordItemOperation(OpMinMaxRandom, true)
	return v
}

func (e *Engine) roll(q Quantity) int {
	if q.Fixed() {
		return q.Min
	}
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return q.Roll(e.rng)
}

// rollAtLeastOne draws once and floors the result at 1
func (e *Engine) rollAtLeastOne(q Quantity) int {
	v := e.roll(q)
	if v < 1 {
		return 1
	}
	return v
}

// Parse builds a stack from s. Quantity and enchantment levels are drawn once
// per call. Entries in the "@" list that are neither a palette color nor a
// known enchantment are skipped.
func (e *Engine) Parse(s string) (*domain.ItemStack, bool) {
	d, ok := e.ParseDescriptor(s)
	if !ok || !d.Resolved() {
		metrics.RecordItemOperation(OpParse, false)
		return nil, false
	}

	material := *d.Material
	variant := d.Variant
	if e.placeholder {
		if m, found := e.lookup.MaterialByName(PlaceholderMaterialName); found {
			material = m
		}
		variant = 0
	}

	item := domain.NewItemStack(material, e.rollAtLeastOne(d.Quantity))
	if variant != VariantAny {
		item.Variant = variant
	}
	e.applyEntries(item, d.Enchantments)
	if d.HasName() {
		item.DisplayName = d.DisplayName
	}

	metrics.RecordItemOperation(OpParse, true)
	return item, true
}

// SetEnchantments applies a comma separated "@" list to a copy of item
func (e *Engine) SetEnchantments(item *domain.ItemStack, list string) *domain.ItemStack {
	out := item.Clone()
	if out == nil || list == "" {
		return out
	}
	e.applyEntries(out, parseEnchantList(list))
	return out
}

// applyEntries tries each entry as a color first, then as an enchantment.
// The last color wins.
func (e *Engine) applyEntries(item *domain.ItemStack, entries []EnchantEntry) {
	for _, entry := range entries {
		if c, ok := domain.ColorByName(entry.Name); ok {
			item.SetColor(c)
			continue
		}
		ench, ok := e.lookup.EnchantmentByName(entry.Name)
		if !ok {
			e.log.Debug(LogMsgEnchantSkipped, "entry", entry.Name)
			continue
		}
		item.AddEnchantment(ench, e.rollAtLeastOne(entry.Level))
	}
}

// CompareIgnoringName reports whether an item with the given material id,
// variant and amount satisfies s. The amount must reach the smallest quantity
// s allows.
func (e *Engine) CompareIgnoringName(id, variant, amount int, s string) bool {
	d, ok := e.ParseDescriptor(s)
	result := ok && matchesIgnoringName(d, id, variant, amount)
	metrics.RecordItemOperation(OpCompare, result)
	return result
}

// CompareItemIgnoringName is CompareIgnoringName for a stack
func (e *Engine) CompareItemIgnoringName(item *domain.ItemStack, s string) bool {
	if item == nil {
		metrics.RecordItemOperation(OpCompare, false)
		return false
	}
	return e.CompareIgnoringName(item.Material.ID, item.Variant, item.Amount, s)
}

// CompareItem is CompareItemIgnoringName that also requires the display
// names to match. A descriptor without a name only matches unnamed stacks.
func (e *Engine) CompareItem(item *domain.ItemStack, s string) bool {
	d, ok := e.ParseDescriptor(s)
	result := ok && item != nil && nameMatches(item, d) &&
		matchesIgnoringName(d, item.Material.ID, item.Variant, item.Amount)
	metrics.RecordItemOperation(OpCompare, result)
	return result
}

func matchesIgnoringName(d Descriptor, id, variant, amount int) bool {
	if d.MaterialID != id {
		return false
	}
	if d.HasVariant() && d.Variant != variant {
		return false
	}
	return amount >= d.Quantity.Minimum()
}

func nameMatches(item *domain.ItemStack, d Descriptor) bool {
	if !d.HasName() {
		return !item.HasDisplayName()
	}
	return item.HasDisplayName() && item.DisplayName == d.DisplayName
}

// slotMatches checks material, variant and name, but not amount
func slotMatches(slot *domain.ItemStack, d Descriptor) bool {
	if slot.IsEmpty() || slot.Material.ID != d.MaterialID {
		return false
	}
	if d.HasVariant() && slot.Variant != d.Variant {
		return false
	}
	return nameMatches(slot, d)
}

func (e *Engine) publish(ctx context.Context, evt event.Event) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish(ctx, evt); err != nil {
		e.log.Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
