package component

// Input stores per-tick input state for an entity. The *Pressed fields are
// rising edges; Jump and Magnet are held levels.
type Input struct {
	MoveX         float64
	Jump          bool
	JumpPressed   bool
	Magnet        bool
	MagnetPressed bool
}

var InputComponent = NewComponent[Input]()
