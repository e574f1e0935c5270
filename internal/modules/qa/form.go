// Package qa implements the ask-a-question form: its local state machine,
// the simulated submission, and the HTTP endpoint that backs it.
package qa

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nfrund/risq/internal/domain"
)

// DefaultDelay is the simulated network latency of a submission.
const DefaultDelay = time.Second

// CompletionFunc is invoked once a simulated submission finishes, after the
// form has been reset.
type CompletionFunc func(ctx context.Context, s domain.Submission)

// Form is the pending-question state: the two text fields and the submitting
// flag. It is safe for concurrent use; the deferred task runs on a timer goroutine.
type Form struct {
	mu         sync.Mutex
	question   string
	email      string
	submitting bool

	delay      time.Duration
	logger     *slog.Logger
	onComplete CompletionFunc
	now        func() time.Time
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithDelay overrides the simulated latency.
func WithDelay(d time.Duration) FormOption {
	return func(f *Form) { f.delay = d }
}

// WithLogger sets the logger the payload is written to.
func WithLogger(l *slog.Logger) FormOption {
	return func(f *Form) { f.logger = l }
}

// OnComplete registers the acknowledgment hook.
func OnComplete(fn CompletionFunc) FormOption {
	return func(f *Form) { f.onComplete = fn }
}

// NewForm creates an empty form.
func NewForm(opts ...FormOption) *Form {
	f := &Form{
		delay:  DefaultDelay,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetQuestion records the question text.
func (f *Form) SetQuestion(q string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.question = q
}

// SetEmail records the optional email address.
func (f *Form) SetEmail(e string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.email = e
}

// Question returns the current question text.
func (f *Form) Question() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.question
}

// Email returns the current email text.
func (f *Form) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

// Submitting reports whether a simulated submission is in flight.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit starts a simulated submission. It returns false without touching
// any state when the trimmed question is empty or a submission is already in
// flight. Otherwise the submitting flag is set before Submit returns and the
// returned channel yields the payload once the delay has elapsed and the form
// has been reset.
func (f *Form) Submit(ctx context.Context) (<-chan domain.Submission, bool) {
	f.mu.Lock()
	if f.submitting || strings.TrimSpace(f.question) == "" {
		f.mu.Unlock()
		return nil, false
	}
	f.submitting = true
	pending := domain.Submission{
		ID:       uuid.New(),
		Question: strings.TrimSpace(f.question),
		Email:    strings.TrimSpace(f.email),
	}
	f.mu.Unlock()

	done := make(chan domain.Submission, 1)
	// The simulated call has no failure path and is not tied to ctx
	// cancellation: once started it always completes.
	time.AfterFunc(f.delay, func() {
		f.complete(context.WithoutCancel(ctx), pending, done)
	})
	return done, true
}

func (f *Form) complete(ctx context.Context, s domain.Submission, done chan<- domain.Submission) {
	s.SubmittedAt = f.now().UTC()

	f.logger.Info("Question submitted",
		"submission_id", s.ID.String(),
		"question", s.Question,
		"email", s.Email,
	)

	f.mu.Lock()
	f.question = ""
	f.email = ""
	f.submitting = false
	f.mu.Unlock()

	if f.onComplete != nil {
		f.onComplete(ctx, s)
	}

	done <- s
	close(done)
}
