package modules

import (
	"github.com/louisbranch/comingsoon/internal/services/studio/modules/assets"
	"github.com/louisbranch/comingsoon/internal/services/studio/modules/landing"
)

// DefaultModules returns the modules that make up the studio site.
func DefaultModules() []Module {
	return []Module{
		landing.New(),
		assets.New(),
	}
}
