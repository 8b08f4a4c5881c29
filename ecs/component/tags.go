package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// CrateTag marks loose dynamic bodies pushed around by magnet gravity.
type CrateTag struct{}

var CrateTagComponent = NewComponent[CrateTag]()
