// Package format renders raw bill fields into the display strings the
// front-end shows. Both functions are pure.
package format

import (
	"fmt"
	"time"

	"github.com/billed/expense-api/internal/core/domain"
)

// frenchMonths maps time.Month to the abbreviation the product displays:
// the first three letters of the French short month name, capitalized.
// June and July both collapse to "Jui" — that collision is the historical
// display behavior and is kept as-is.
var frenchMonths = [...]string{
	time.January:   "Jan.",
	time.February:  "Fév.",
	time.March:     "Mar.",
	time.April:     "Avr.",
	time.May:       "Mai.",
	time.June:      "Jui.",
	time.July:      "Jui.",
	time.August:    "Aoû.",
	time.September: "Sep.",
	time.October:   "Oct.",
	time.November:  "Nov.",
	time.December:  "Déc.",
}

// Date renders an ISO date string (YYYY-MM-DD) as "d MMM. yy" in French,
// e.g. "2022-12-31" → "31 Déc. 22". Non-ISO input yields an error; callers
// decide whether that is fatal.
func Date(isoDate string) (string, error) {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return "", fmt.Errorf("format date %q: %w", isoDate, err)
	}
	return fmt.Sprintf("%d %s %s", t.Day(), frenchMonths[t.Month()], t.Format("06")), nil
}

// Status translates a raw bill status for display. Unrecognized values pass
// through unchanged so an unexpected backend status never breaks a listing.
func Status(raw domain.BillStatus) string {
	switch raw {
	case domain.StatusPending:
		return "En attente"
	case domain.StatusAccepted:
		return "Accepté"
	default:
		return string(raw)
	}
}
