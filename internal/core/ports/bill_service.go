package ports

import (
	"context"
	"io"

	"github.com/billed/expense-api/internal/core/domain"
)

// SessionReader exposes the read-only identity of the connected user.
// The core never writes session state.
type SessionReader interface {
	// FromContext returns the session carried by ctx, or
	// domain.ErrSessionMissing when no identity is attached.
	FromContext(ctx context.Context) (domain.Session, error)
}

// Navigator triggers client-side navigation. Submit invokes it exactly once,
// with domain.RouteBills, after the update phase resolves.
type Navigator interface {
	Navigate(routeKey string)
}

// SelectReceiptInput carries the upload (create) phase data.
type SelectReceiptInput struct {
	// FileName is the declared name; it may still carry a client path prefix
	// such as `C:\fakepath\`.
	FileName string
	Content  io.Reader
}

// SelectReceiptResult is returned once the create phase resolved.
type SelectReceiptResult struct {
	Key      string
	FileURL  string
	FileName string
}

// SubmitBillInput carries the form field values of the update phase.
// Vat stays a string by contract; Amount and Pct are the coerced numerics.
type SubmitBillInput struct {
	Type       string
	Name       string
	Amount     float64
	Date       string
	Vat        string
	Pct        int
	Commentary string
}

// SubmitBillResult is returned once the update phase resolved.
type SubmitBillResult struct {
	Bill     *domain.Bill
	Redirect string
}

// SubmissionService drives the two-phase bill submission pipeline.
type SubmissionService interface {
	SelectReceipt(ctx context.Context, in SelectReceiptInput) (*SelectReceiptResult, error)
	Submit(ctx context.Context, in SubmitBillInput) (*SubmitBillResult, error)
}

// BillItem is one row of an employee's bill listing. Date and Status hold
// display strings; RawDate keeps the stored ISO value so consumers can order
// anti-chronologically without re-parsing.
type BillItem struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	RawDate    string  `json:"rawDate"`
	Vat        string  `json:"vat"`
	Pct        int     `json:"pct"`
	Commentary string  `json:"commentary,omitempty"`
	FileURL    string  `json:"fileUrl"`
	FileName   string  `json:"fileName"`
	Status     string  `json:"status"`
}

// ListingService retrieves and formats the connected employee's bills.
type ListingService interface {
	// GetBills resolves with every bill of the current user, in store order.
	// A single record whose date cannot be formatted is kept with its raw
	// date; a store failure is propagated unmodified.
	GetBills(ctx context.Context) ([]BillItem, error)
}
