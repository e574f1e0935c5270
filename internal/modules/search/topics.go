package search

import (
	"github.com/nfrund/risq/internal/domain"
	"github.com/nfrund/risq/internal/pubsub"
)

// TopicDomainRequested is published once per accepted search submission.
var TopicDomainRequested = pubsub.NewEvent[domain.SearchRequest](
	"search.domain.requested",
	"A visitor asked for a startup domain analysis",
)
