package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/billed/expense-api/internal/core/domain"
)

const collectionBills = "bills"

type BillRepository struct {
	col *mongo.Collection
}

func NewBillRepository(db *mongo.Database) *BillRepository {
	return &BillRepository{col: db.Collection(collectionBills)}
}

// Create inserts a new bill document and returns its key.
// Keys are UUID strings so they round-trip cleanly through the JSON API.
func (r *BillRepository) Create(ctx context.Context, b *domain.Bill) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	b.ID = uuid.NewString()
	if _, err := r.col.InsertOne(ctx, b); err != nil {
		return "", err
	}
	return b.ID, nil
}

// Update overwrites the full field set of an existing bill and returns the
// persisted document.
func (r *BillRepository) Update(ctx context.Context, key string, b *domain.Bill) (*domain.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"email":      b.Email,
		"type":       b.Type,
		"name":       b.Name,
		"amount":     b.Amount,
		"date":       b.Date,
		"vat":        b.Vat,
		"pct":        b.Pct,
		"commentary": b.Commentary,
		"file_url":   b.FileURL,
		"file_name":  b.FileName,
		"status":     b.Status,
	}}

	var updated domain.Bill
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": key},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBillNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// List returns every bill belonging to email, in insertion order.
func (r *BillRepository) List(ctx context.Context, email string) ([]*domain.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bills []*domain.Bill
	if err := cursor.All(ctx, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// EnsureIndexes creates necessary indexes on the bills collection.
func (r *BillRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
