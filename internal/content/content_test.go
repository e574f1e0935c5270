package content_test

import (
	"testing"

	"github.com/nfrund/risq/internal/content"
	"github.com/nfrund/risq/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionsOrder(t *testing.T) {
	assert.Equal(t, []domain.Section{
		domain.SectionHero,
		domain.SectionProblem,
		domain.SectionFeatures,
		domain.SectionBenefits,
		domain.SectionQA,
		domain.SectionCTA,
	}, content.Sections())
}

func TestSequences(t *testing.T) {
	assert.Len(t, content.Problems(), 4)
	assert.Len(t, content.Features(), 6)
	assert.Len(t, content.Outcomes(), 4)
	assert.Len(t, content.FAQ(), 3)
	assert.Len(t, content.HeroHighlights(), 3)
	assert.Len(t, content.CTAHighlights(), 3)

	assert.Equal(t, "Blind Spot Risks", content.Problems()[0].Title)
	assert.Equal(t, "Success Tracking", content.Features()[5].Title)
	assert.Equal(t, "75% Fewer", content.Outcomes()[1].Stat)

	for _, f := range content.Features() {
		assert.NotEmpty(t, f.Accent, "feature %q should carry a gradient", f.Title)
	}
}

func TestHeroFiguresAreLocaleFormatted(t *testing.T) {
	labels := []string{}
	for _, h := range content.HeroHighlights() {
		labels = append(labels, h.Label)
	}

	assert.Equal(t, []string{"1,000+ Entrepreneurs", "85% Success Rate", "Risk-Free Assessment"}, labels)
	assert.Equal(t, "Join 1,000+ entrepreneurs who've transformed their startup journey", content.BenefitsCallout)
}

func TestFAQIsNewestFirst(t *testing.T) {
	entries := content.FAQ()
	require.Len(t, entries, 3)

	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i-1].CreatedAt.After(entries[i].CreatedAt))
		assert.Equal(t, entries[i-1].ID+1, entries[i].ID)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	problems := content.Problems()
	problems[0].Title = "mutated"

	assert.Equal(t, "Blind Spot Risks", content.Problems()[0].Title)
	assert.Len(t, content.Problems(), 4)

	faq := content.FAQ()
	faq[0].Answer = ""
	assert.NotEmpty(t, content.FAQ()[0].Answer)

	sections := content.Sections()
	sections[0] = domain.SectionCTA
	assert.Equal(t, domain.SectionHero, content.Sections()[0])
}
