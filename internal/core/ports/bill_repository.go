package ports

import (
	"context"
	"io"

	"github.com/billed/expense-api/internal/core/domain"
)

// ReceiptFile describes a stored receipt image.
type ReceiptFile struct {
	FileName    string
	ContentType string
	Size        int64
}

// ReceiptStore persists uploaded receipt images and streams them back.
type ReceiptStore interface {
	// Save stores the receipt content under a fresh key and returns the URL
	// the stored file is reachable at (the key is the last URL segment).
	Save(ctx context.Context, fileName string, content io.Reader) (url string, err error)
	// Open streams a stored receipt. Returns domain.ErrReceiptNotFound when
	// the key is unknown.
	Open(ctx context.Context, key string) (io.ReadCloser, *ReceiptFile, error)
}

// BillRepository defines persistence operations for bills.
type BillRepository interface {
	// Create inserts a new bill record and returns its key.
	Create(ctx context.Context, b *domain.Bill) (string, error)
	// Update persists the full field set against an existing key.
	// Returns domain.ErrBillNotFound when the key is unknown.
	Update(ctx context.Context, key string, b *domain.Bill) (*domain.Bill, error)
	// List returns every bill belonging to email, in insertion order.
	List(ctx context.Context, email string) ([]*domain.Bill, error)
}
