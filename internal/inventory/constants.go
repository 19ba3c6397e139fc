package inventory

// Player inventory layout
const (
	PlayerInventorySize = 36 // main(27) + hotbar(9)
	HotbarSize          = 9
)
