package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/billed/expense-api/internal/core/domain"
)

func newListingFixture(bills []*domain.Bill) (*ListingService, *stubBillRepo) {
	repo := newStubBillRepo(&events{})
	repo.listOut = bills
	sessions := stubSessionReader{sess: domain.Session{Email: "employee@test.tld", Type: domain.UserTypeEmployee}}
	return NewListingService(repo, sessions, zerolog.Nop()), repo
}

func TestGetBills_FormatsDateAndStatus(t *testing.T) {
	svc, _ := newListingFixture([]*domain.Bill{
		{ID: "1", Date: "2022-12-31", Status: domain.StatusPending},
		{ID: "2", Date: "2022-11-30", Status: domain.StatusAccepted},
	})

	items, err := svc.GetBills(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	// Input order is preserved; sorting is the consumer's concern.
	if items[0].Date != "31 Déc. 22" || items[0].Status != "En attente" {
		t.Errorf("item 0: got date %q status %q", items[0].Date, items[0].Status)
	}
	if items[1].Date != "30 Nov. 22" || items[1].Status != "Accepté" {
		t.Errorf("item 1: got date %q status %q", items[1].Date, items[1].Status)
	}
	if items[0].RawDate != "2022-12-31" {
		t.Errorf("raw date must be kept for ordering, got %q", items[0].RawDate)
	}
}

func TestGetBills_CorruptedDateKeptRaw(t *testing.T) {
	var buf bytes.Buffer
	repo := newStubBillRepo(&events{})
	repo.listOut = []*domain.Bill{{ID: "1", Date: "invalid-date", Status: domain.StatusPending}}
	sessions := stubSessionReader{sess: domain.Session{Email: "employee@test.tld"}}
	svc := NewListingService(repo, sessions, zerolog.New(&buf))

	items, err := svc.GetBills(context.Background())
	if err != nil {
		t.Fatalf("one corrupted record must not fail the listing: %v", err)
	}
	if items[0].Date != "invalid-date" {
		t.Errorf("corrupted date must stay raw, got %q", items[0].Date)
	}
	if items[0].Status != "En attente" {
		t.Errorf("status must still be formatted, got %q", items[0].Status)
	}

	// The failure is logged with the offending record attached.
	logged := buf.String()
	if !strings.Contains(logged, "invalid-date") {
		t.Errorf("log must carry the offending record, got %q", logged)
	}
	if !strings.Contains(logged, "date formatting failed") {
		t.Errorf("log must name the failure, got %q", logged)
	}
}

func TestGetBills_OtherRecordsStillFormatted(t *testing.T) {
	svc, _ := newListingFixture([]*domain.Bill{
		{ID: "1", Date: "not-a-date", Status: domain.StatusPending},
		{ID: "2", Date: "2022-12-31", Status: domain.StatusAccepted},
	})

	items, err := svc.GetBills(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Date != "not-a-date" {
		t.Errorf("corrupted record: got %q", items[0].Date)
	}
	if items[1].Date != "31 Déc. 22" {
		t.Errorf("healthy record must format normally, got %q", items[1].Date)
	}
}

func TestGetBills_StoreFailurePropagatesUnmodified(t *testing.T) {
	svc, repo := newListingFixture(nil)
	repo.listErr = errors.New("Erreur 404")

	_, err := svc.GetBills(context.Background())
	if err == nil {
		t.Fatal("expected the store failure to surface")
	}
	if !errors.Is(err, repo.listErr) {
		t.Errorf("error must propagate unmodified, got %v", err)
	}
	if err.Error() != "Erreur 404" {
		t.Errorf("message must be preserved for the caller, got %q", err.Error())
	}
}

func TestGetBills_UnknownStatusPassesThrough(t *testing.T) {
	svc, _ := newListingFixture([]*domain.Bill{
		{ID: "1", Date: "2022-12-31", Status: domain.StatusRefused},
	})

	items, err := svc.GetBills(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Status != "refused" {
		t.Errorf("unrecognized status must pass through unchanged, got %q", items[0].Status)
	}
}

func TestGetBills_NoSession(t *testing.T) {
	repo := newStubBillRepo(&events{})
	svc := NewListingService(repo, stubSessionReader{err: domain.ErrSessionMissing}, zerolog.Nop())

	_, err := svc.GetBills(context.Background())
	if !errors.Is(err, domain.ErrSessionMissing) {
		t.Fatalf("expected ErrSessionMissing, got %v", err)
	}
}
