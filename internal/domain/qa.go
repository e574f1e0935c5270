package domain

import (
	"time"

	"github.com/google/uuid"
)

// QAEntry is a read-only question and answer shown in the FAQ list.
type QAEntry struct {
	ID        int
	Question  string
	Answer    string
	CreatedAt time.Time
}

// Submission is the payload of a completed question submission.
type Submission struct {
	ID          uuid.UUID `json:"id"`
	Question    string    `json:"question"`
	Email       string    `json:"email,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// SearchRequest is emitted whenever the search widget submits a domain.
type SearchRequest struct {
	Domain      string    `json:"domain"`
	Source      string    `json:"source"`
	RequestedAt time.Time `json:"requested_at"`
}
