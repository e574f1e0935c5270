package app

import (
	"fmt"

	"github.com/nfrund/risq/internal/modules/qa"
	"github.com/nfrund/risq/internal/modules/search"
	"github.com/nfrund/risq/internal/topicmgr"
)

// RegisterTopics records every event topic the modules publish.
func RegisterTopics(reg *topicmgr.Registry) error {
	topics := []struct {
		module string
		topic  topicmgr.Topic
	}{
		{"search", search.TopicDomainRequested},
		{"qa", qa.TopicQuestionSubmitted},
	}
	for _, t := range topics {
		if err := reg.Register(t.module, t.topic); err != nil {
			return fmt.Errorf("register topic: %w", err)
		}
	}
	return nil
}
