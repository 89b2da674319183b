package component

// StarComponent tags a collectible star
type StarComponent struct{}
