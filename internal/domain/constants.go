package domain

// Material constants
const (
	MaterialIDAir   = 0
	MaterialNameAir = "AIR"

	// DefaultMaxStack applies to materials that do not declare a stack size
	DefaultMaxStack = 64
)

// Game timing
const (
	// TicksPerSecond is the host server's nominal tick rate
	TicksPerSecond = 20
)
