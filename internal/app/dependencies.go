package app

import (
	"github.com/nfrund/risq/internal/config"
	"github.com/nfrund/risq/internal/modules/qa"
	"github.com/nfrund/risq/internal/modules/search"
	"github.com/nfrund/risq/internal/pubsub"
	"github.com/nfrund/risq/web/src/templates/layouts"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Config     config.Provider
}

// Page returns the document metadata shared by every full-page render.
func (d Dependencies) Page() layouts.PageConfig {
	return layouts.PageConfig{BaseURL: d.Config.GetAppBaseURL()}
}

func searchDeps(deps Dependencies) search.Dependencies {
	return search.Dependencies{
		Publisher:  deps.Publisher,
		Subscriber: deps.Subscriber,
		Page:       deps.Page(),
		RateLimit:  deps.Config.GetFormRateLimit(),
	}
}

func qaDeps(deps Dependencies) qa.Dependencies {
	return qa.Dependencies{
		Publisher:   deps.Publisher,
		Subscriber:  deps.Subscriber,
		SubmitDelay: deps.Config.GetSubmitDelay(),
		RateLimit:   deps.Config.GetFormRateLimit(),
	}
}
