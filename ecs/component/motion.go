package component

import "github.com/milk9111/motioncore/motion"

// Motion attaches a motion controller to an entity. Last is the output of
// the most recent tick.
type Motion struct {
	Controller *motion.Controller
	Last       motion.Output
}

var MotionComponent = NewComponent[Motion]()
