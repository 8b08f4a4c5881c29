package component

// Collision categories used by the physics system.
const (
	CategorySolid uint = 1 << iota
	CategoryPlayer
	CategoryCrate
	CategoryHazard
)

// GroundMask is what a ground probe treats as floor.
const GroundMask = CategorySolid | CategoryCrate

// CollisionLayer allows entities to declare a collision category and mask
// so the physics system can selectively enable/disable collisions between
// groups of objects.
type CollisionLayer struct {
	// Category is a bitmask of this entity's collision category. If zero,
	// the physics system will treat it as CategorySolid.
	Category uint
	// Mask is a bitmask of categories this entity should collide with. If
	// zero, the physics system will treat it as all-bits set (collide with all).
	Mask uint
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
