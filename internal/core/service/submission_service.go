package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/billed/expense-api/internal/api/metrics"
	"github.com/billed/expense-api/internal/core/domain"
	"github.com/billed/expense-api/internal/core/ports"
)

// SubmissionDedup abstracts the duplicate-submission store (Redis).
type SubmissionDedup interface {
	IsDuplicate(ctx context.Context, email, date string, amount float64) (bool, error)
	Mark(ctx context.Context, email, date string, amount float64) error
}

// pipeline is the transient upload state of one employee's in-flight
// submission. It is owned exclusively by the SubmissionService and guarded
// by its mutex.
type pipeline struct {
	state    domain.SubmissionState
	key      string
	fileURL  string
	fileName string
}

// SubmissionService drives the two-phase bill submission: receipt upload
// (create) followed by field submission (update). At most one submission is
// in flight per employee; a concurrent call is rejected, never queued.
type SubmissionService struct {
	repo     ports.BillRepository
	files    ports.ReceiptStore
	sessions ports.SessionReader
	nav      ports.Navigator
	dedup    SubmissionDedup
	log      zerolog.Logger

	mu        sync.Mutex
	pipelines map[string]*pipeline
}

func NewSubmissionService(
	repo ports.BillRepository,
	files ports.ReceiptStore,
	sessions ports.SessionReader,
	nav ports.Navigator,
	dedup SubmissionDedup,
	log zerolog.Logger,
) *SubmissionService {
	return &SubmissionService{
		repo:      repo,
		files:     files,
		sessions:  sessions,
		nav:       nav,
		dedup:     dedup,
		log:       log,
		pipelines: make(map[string]*pipeline),
	}
}

// SelectReceipt runs the create phase: validate the declared file name, store
// the receipt, and create the placeholder bill record. The returned key is
// what Submit later updates. Validation failures never reach the store.
func (s *SubmissionService) SelectReceipt(ctx context.Context, in ports.SelectReceiptInput) (*ports.SelectReceiptResult, error) {
	sess, err := s.sessions.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	fileName := domain.NormalizeFileName(in.FileName)
	if !domain.ValidExtension(fileName) {
		metrics.ReceiptsRejectedTotal.WithLabelValues("unsupported_extension").Inc()
		s.log.Warn().Str("email", sess.Email).Str("file_name", fileName).Msg("receipt rejected")
		return nil, domain.ErrUnsupportedFileType
	}

	if err := s.begin(sess.Email, domain.StateUploading); err != nil {
		return nil, err
	}

	key, fileURL, err := s.upload(ctx, sess.Email, fileName, in)
	if err != nil {
		s.transition(sess.Email, domain.StateFailed)
		metrics.SubmissionErrorsTotal.WithLabelValues("create").Inc()
		s.log.Error().Err(err).Str("email", sess.Email).Str("file_name", fileName).Msg("receipt upload failed")
		return nil, err
	}

	s.mu.Lock()
	p := s.pipelines[sess.Email]
	p.state = domain.StateUploaded
	p.key = key
	p.fileURL = fileURL
	p.fileName = fileName
	s.mu.Unlock()

	metrics.ReceiptsUploadedTotal.Inc()
	s.log.Info().Str("email", sess.Email).Str("key", key).Str("file_name", fileName).Msg("receipt uploaded")

	return &ports.SelectReceiptResult{Key: key, FileURL: fileURL, FileName: fileName}, nil
}

// upload stores the file and inserts the placeholder bill carrying the file
// reference, so a bill is never persisted without its fileUrl.
func (s *SubmissionService) upload(ctx context.Context, email, fileName string, in ports.SelectReceiptInput) (string, string, error) {
	fileURL, err := s.files.Save(ctx, fileName, in.Content)
	if err != nil {
		return "", "", fmt.Errorf("select receipt: store file: %w", err)
	}

	key, err := s.repo.Create(ctx, &domain.Bill{
		Email:    email,
		FileURL:  fileURL,
		FileName: fileName,
		Status:   domain.StatusPending,
	})
	if err != nil {
		return "", "", fmt.Errorf("select receipt: create bill: %w", err)
	}
	return key, fileURL, nil
}

// Submit runs the update phase against the key captured by SelectReceipt.
// The bill payload forces status to pending and takes the email from the
// session, never from the form. On success the navigator is invoked exactly
// once with the bills-list route.
func (s *SubmissionService) Submit(ctx context.Context, in ports.SubmitBillInput) (*ports.SubmitBillResult, error) {
	sess, err := s.sessions.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	p, ok := s.pipelines[sess.Email]
	if !ok || !p.state.CanTransitionTo(domain.StateSubmitting) {
		state := domain.StateIdle
		if ok {
			state = p.state
		}
		s.mu.Unlock()
		return nil, submitBlocked(state)
	}
	p.state = domain.StateSubmitting
	key, fileURL, fileName := p.key, p.fileURL, p.fileName
	s.mu.Unlock()

	// Duplicate-submission guard. A dedup store failure is logged and
	// ignored: it must not block a legitimate submission.
	if dup, err := s.dedup.IsDuplicate(ctx, sess.Email, in.Date, in.Amount); err != nil {
		s.log.Warn().Err(err).Str("email", sess.Email).Msg("dedup check failed, submitting anyway")
	} else if dup {
		s.transition(sess.Email, domain.StateUploaded)
		s.log.Info().Str("email", sess.Email).Str("date", in.Date).Msg("duplicate submission rejected")
		return nil, domain.ErrDuplicateSubmission
	}

	pct := in.Pct
	if pct == 0 {
		pct = 20
	}

	bill := &domain.Bill{
		Email:      sess.Email,
		Type:       in.Type,
		Name:       in.Name,
		Amount:     in.Amount,
		Date:       in.Date,
		Vat:        in.Vat,
		Pct:        pct,
		Commentary: in.Commentary,
		FileURL:    fileURL,
		FileName:   fileName,
		Status:     domain.StatusPending,
	}

	updated, err := s.repo.Update(ctx, key, bill)
	if err != nil {
		// The pipeline returns to uploaded so the user can retry from the
		// form without re-uploading the receipt.
		s.transition(sess.Email, domain.StateUploaded)
		metrics.SubmissionErrorsTotal.WithLabelValues("update").Inc()
		s.log.Error().Err(err).Str("email", sess.Email).Str("key", key).Msg("bill submission failed")
		return nil, fmt.Errorf("submit bill: %w", err)
	}

	if markErr := s.dedup.Mark(ctx, sess.Email, in.Date, in.Amount); markErr != nil {
		s.log.Warn().Err(markErr).Str("email", sess.Email).Msg("failed to set dedup key")
	}

	s.mu.Lock()
	delete(s.pipelines, sess.Email)
	s.mu.Unlock()

	s.nav.Navigate(domain.RouteBills)

	metrics.BillsSubmittedTotal.WithLabelValues(bill.Type).Inc()
	s.log.Info().
		Str("email", sess.Email).
		Str("key", key).
		Str("type", bill.Type).
		Msg("bill submitted")

	return &ports.SubmitBillResult{Bill: updated, Redirect: domain.RouteBills}, nil
}

// begin moves email's pipeline into next, creating it when absent. The zero
// pipeline starts idle.
func (s *SubmissionService) begin(email string, next domain.SubmissionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pipelines[email]
	if !ok {
		p = &pipeline{state: domain.StateIdle}
		s.pipelines[email] = p
	}
	if !p.state.CanTransitionTo(next) {
		if p.state == domain.StateUploading {
			return domain.ErrUploadInFlight
		}
		return domain.ErrSubmissionInFlight
	}
	p.state = next
	return nil
}

// transition force-sets email's pipeline state. Used for failure paths where
// the outcome of a store call decides the next state.
func (s *SubmissionService) transition(email string, next domain.SubmissionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.pipelines[email]; ok {
		p.state = next
	}
}

// submitBlocked maps a pipeline state that cannot enter submitting to the
// error the caller should see.
func submitBlocked(state domain.SubmissionState) error {
	switch state {
	case domain.StateUploading:
		return domain.ErrUploadInFlight
	case domain.StateSubmitting:
		return domain.ErrSubmissionInFlight
	default:
		return domain.ErrReceiptMissing
	}
}
