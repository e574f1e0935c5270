package pages

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"

	"github.com/nfrund/risq/internal/content"
	"github.com/nfrund/risq/internal/domain"
	"github.com/nfrund/risq/internal/view"
	"github.com/nfrund/risq/web/src/templates/components"
	"github.com/nfrund/risq/web/src/templates/layouts"
	"github.com/nfrund/risq/web/src/templates/partials"
)

// LandingData is the per-request state of the page's interactive widgets.
// The zero value renders the page as a first-time visitor sees it.
type LandingData struct {
	HeroQuery string
	CTAQuery  string
	Question  components.QuestionFormProps
}

// Landing composes the six sections in their fixed order.
func Landing(data LandingData) g.Node {
	return g.Group(g.Map(content.Sections(), func(s domain.Section) g.Node {
		return section(s, data)
	}))
}

func section(s domain.Section, data LandingData) g.Node {
	switch s {
	case domain.SectionHero:
		return components.Hero(components.SearchBarProps{
			Source:      string(domain.SectionHero),
			Value:       data.HeroQuery,
			Placeholder: content.DefaultPlaceholder,
		})
	case domain.SectionProblem:
		return components.Problem()
	case domain.SectionFeatures:
		return components.Features()
	case domain.SectionBenefits:
		return components.Benefits()
	case domain.SectionQA:
		return components.QASection(data.Question)
	case domain.SectionCTA:
		return components.CallToAction(components.SearchBarProps{
			Source:      string(domain.SectionCTA),
			Value:       data.CTAQuery,
			Placeholder: content.CTAPlaceholder,
		})
	default:
		return nil
	}
}

// LandingPage wraps Landing in the base layout.
func LandingPage(page layouts.PageConfig, flash partials.FlashData, data LandingData) templ.Component {
	return layouts.Base(page, flash, view.AdaptGomponentToTempl(Landing(data)))
}
