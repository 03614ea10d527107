package component

import "github.com/ebitenui/ebitenui"

// MenuRoot owns the whole menu widget tree. Despawning the entity drops the
// tree. UI is nil when running headless.
type MenuRoot struct {
	UI *ebitenui.UI
}

var MenuRootComponent = NewComponent[MenuRoot]()
