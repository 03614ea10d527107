package component

import "github.com/milk9111/flapper/session"

// Scoped marks an entity that only lives while the session is in Mode. It is
// despawned when that mode is exited.
type Scoped struct {
	Mode session.Mode
}

var ScopedComponent = NewComponent[Scoped]()
