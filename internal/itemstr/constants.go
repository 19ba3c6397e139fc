package itemstr

import "time"

// Descriptor grammar separators
const (
	NameSeparator     = "$"
	EnchantSeparator  = "@"
	QuantitySeparator = "*"
	VariantSeparator  = ":"
	RangeSeparator    = "-"
	ListSeparator     = ","
	LevelSeparator    = ":"
)

// VariantAny matches every variant of a material
const VariantAny = -1

// NumberBits bounds every numeric token; larger values read as malformed
const NumberBits = 32

// Cache configuration
const (
	// DefaultCacheSize is the number of parsed descriptors kept in memory
	DefaultCacheSize = 512
	// DefaultCacheTTL of zero keeps entries until they are evicted by size
	DefaultCacheTTL time.Duration = 0
	// CacheSchemaVersion invalidates cached entries when Descriptor changes shape
	CacheSchemaVersion = "1.0"
)

// PlaceholderMaterialName is the material every parsed stack used to be built
// from, kept behind WithPlaceholderMaterial for configs that rely on it.
const PlaceholderMaterialName = "DIAMOND"

// Operation names used as metric labels
const (
	OpParse        = "parse"
	OpCompare      = "compare"
	OpCount        = "count"
	OpHas          = "has"
	OpRemove       = "remove"
	OpRemoveHand   = "remove_hand"
	OpRemoveLater  = "remove_later"
	OpGiveOrDrop   = "give_or_drop"
	OpMinMaxRandom = "min_max_random"
)

// Error messages
const (
	ErrMsgNilLookup       = "material lookup is required"
	ErrMsgCreateCache     = "failed to create descriptor cache: %w"
	ErrMsgInvalidCacheLen = "cache size must be positive"
)

// Log messages
const (
	LogMsgDescriptorRejected = "Item descriptor rejected"
	LogMsgEnchantSkipped     = "Enchantment entry skipped"
	LogMsgItemsDropped       = "Inventory full, dropped items"
	LogMsgRemovalDeferred    = "Item removal deferred to next tick"
	LogMsgRemovalRefused     = "Tick queue closed, item removal skipped"
	LogMsgPublishFailed      = "Failed to publish item event"
)
