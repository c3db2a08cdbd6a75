package handler

import (
	"sort"

	"github.com/billed/expense-api/internal/core/domain"
	"github.com/billed/expense-api/internal/core/ports"
)

func toBillResponse(b *domain.Bill) billResponse {
	return billResponse{
		ID:         b.ID,
		Email:      b.Email,
		Type:       b.Type,
		Name:       b.Name,
		Amount:     b.Amount,
		Date:       b.Date,
		Vat:        b.Vat,
		Pct:        b.Pct,
		Commentary: b.Commentary,
		FileURL:    b.FileURL,
		FileName:   b.FileName,
		Status:     string(b.Status),
	}
}

func toBillItemResponses(items []ports.BillItem) []billItemResponse {
	out := make([]billItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, billItemResponse{
			ID:         it.ID,
			Type:       it.Type,
			Name:       it.Name,
			Amount:     it.Amount,
			Date:       it.Date,
			RawDate:    it.RawDate,
			Vat:        it.Vat,
			Pct:        it.Pct,
			Commentary: it.Commentary,
			FileURL:    it.FileURL,
			FileName:   it.FileName,
			Status:     it.Status,
		})
	}
	return out
}

// sortAntiChronological orders bills newest first. Lexical comparison on the
// raw YYYY-MM-DD strings matches chronological order without date parsing;
// the stable sort keeps insertion order for equal dates.
func sortAntiChronological(items []ports.BillItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].RawDate > items[j].RawDate
	})
}
