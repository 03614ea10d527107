package entity

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/milk9111/flapper/ecs"
	"github.com/milk9111/flapper/ecs/component"
)

// NewMenuRoot spawns the entity that owns the menu widget tree. ui may be
// nil when no window exists.
func NewMenuRoot(w *ecs.World, ui *ebitenui.UI) (ecs.Entity, error) {
	root := ecs.CreateEntity(w)
	if err := ecs.Add(w, root, component.MenuRootComponent.Kind(), &component.MenuRoot{UI: ui}); err != nil {
		return 0, fmt.Errorf("menu: add menu root: %w", err)
	}
	return root, nil
}

// DespawnMenu destroys every menu root, dropping its widget tree.
func DespawnMenu(w *ecs.World) int {
	removed := 0
	for _, e := range w.Query(component.MenuRootComponent.Kind()) {
		if w.DestroyEntity(e) {
			removed++
		}
	}
	return removed
}
