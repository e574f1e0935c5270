package qa

import (
	"github.com/nfrund/risq/internal/domain"
	"github.com/nfrund/risq/internal/pubsub"
)

// TopicQuestionSubmitted carries every completed question submission.
var TopicQuestionSubmitted = pubsub.NewEvent[domain.Submission](
	"qa.question.submitted",
	"A visitor question finished its simulated submission",
)
