package app

import (
	"github.com/nfrund/risq/internal/module"
	"github.com/nfrund/risq/internal/modules/qa"
	"github.com/nfrund/risq/internal/modules/search"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		search.New(searchDeps(deps)),
		qa.New(qaDeps(deps)),
	}
}
