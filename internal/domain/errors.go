package domain

import "errors"

// Sentinel errors for the domain layer. Both describe input the page silently
// ignores; handlers never surface them to the visitor.
var (
	ErrEmptyQuery    = errors.New("search query is empty")
	ErrEmptyQuestion = errors.New("question is empty")
)
