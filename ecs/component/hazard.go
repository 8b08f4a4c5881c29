package component

// Hazard marks a box centred on the entity Transform that kills motion
// controllers on overlap.
type Hazard struct {
	Width  float64
	Height float64
}

var HazardComponent = NewComponent[Hazard]()
