package component

// RenderLayer orders drawing; lower indices draw first.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
