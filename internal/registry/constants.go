package registry

// ==================== Embedded Files ====================

const (
	// DefaultDataPath is the embedded registry document
	DefaultDataPath = "data/registry.json"
	// SchemaPath is the embedded schema every registry document is checked against
	SchemaPath = "data/registry.schema.json"
)

// ==================== Error Messages ====================

const (
	ErrMsgReadRegistryFailed  = "failed to read registry file: %w"
	ErrMsgParseRegistryFailed = "failed to parse registry: %w"
	ErrMsgSchemaFailed        = "schema validation failed for %s: %w"
)

// Format strings used with fmt.Errorf for detailed validation errors
const (
	ErrFmtDuplicateMaterialName    = "%w: duplicate material name '%s'"
	ErrFmtDuplicateMaterialID      = "%w: duplicate material id %d"
	ErrFmtMaterialNoStack          = "%w: material '%s' has max_stack below 1"
	ErrFmtDuplicateEnchantmentName = "%w: duplicate enchantment name '%s'"
	ErrFmtDuplicateEnchantmentID   = "%w: duplicate enchantment id %d"
	ErrFmtNoMaterials              = "%w: no materials defined"
)

// ==================== Log Messages ====================

const (
	LogMsgRegistryLoaded = "Registry loaded"
)
