package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/billed/expense-api/internal/api/metrics"
	"github.com/billed/expense-api/internal/core/ports"
	"github.com/billed/expense-api/internal/format"
)

// ListingService retrieves the connected employee's bills and formats them
// for display.
type ListingService struct {
	repo     ports.BillRepository
	sessions ports.SessionReader
	log      zerolog.Logger
}

func NewListingService(repo ports.BillRepository, sessions ports.SessionReader, log zerolog.Logger) *ListingService {
	return &ListingService{repo: repo, sessions: sessions, log: log}
}

// GetBills returns every bill of the current user, in store order, with date
// and status rendered for display.
//
// A record whose date cannot be formatted is kept with its raw date and the
// failure is logged with the record attached; one corrupted record never
// fails the whole listing. A store failure, on the other hand, is returned
// unmodified to the caller.
func (s *ListingService) GetBills(ctx context.Context) ([]ports.BillItem, error) {
	sess, err := s.sessions.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	bills, err := s.repo.List(ctx, sess.Email)
	if err != nil {
		return nil, err
	}

	items := make([]ports.BillItem, 0, len(bills))
	for _, b := range bills {
		date, err := format.Date(b.Date)
		if err != nil {
			// Corrupted record: keep the raw date so the row still renders.
			metrics.FormatErrorsTotal.WithLabelValues("date").Inc()
			s.log.Error().Err(err).Interface("bill", b).Msg("date formatting failed, keeping raw value")
			date = b.Date
		}

		items = append(items, ports.BillItem{
			ID:         b.ID,
			Type:       b.Type,
			Name:       b.Name,
			Amount:     b.Amount,
			Date:       date,
			RawDate:    b.Date,
			Vat:        b.Vat,
			Pct:        b.Pct,
			Commentary: b.Commentary,
			FileURL:    b.FileURL,
			FileName:   b.FileName,
			Status:     format.Status(b.Status),
		})
	}

	s.log.Debug().Str("email", sess.Email).Int("count", len(items)).Msg("bills listed")
	return items, nil
}
