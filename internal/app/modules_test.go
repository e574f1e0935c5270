package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nfrund/risq/internal/config"
	"github.com/nfrund/risq/internal/topicmgr"
)

func TestNewModules(t *testing.T) {
	cfg := &config.Config{AppBaseURL: "https://risq.example", SubmitDelay: time.Second, FormRateLimit: 5}
	mods := NewModules(Dependencies{Config: cfg})

	names := make([]string, 0, len(mods))
	for _, m := range mods {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{"search", "qa"}, names)
}

func TestDependencies_Page(t *testing.T) {
	deps := Dependencies{Config: &config.Config{AppBaseURL: "https://risq.example"}}
	assert.Equal(t, "https://risq.example", deps.Page().BaseURL)
}

func TestRegisterTopics(t *testing.T) {
	reg := topicmgr.NewRegistry()
	assert.NoError(t, RegisterTopics(reg))
	assert.Equal(t, []string{"qa.question.submitted", "search.domain.requested"}, reg.Names())

	assert.Error(t, RegisterTopics(reg), "registering twice must clash")
}
