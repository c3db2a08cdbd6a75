package domain

import "errors"

// BillStatus represents the review state of an expense bill.
type BillStatus string

const (
	StatusPending  BillStatus = "pending"
	StatusAccepted BillStatus = "accepted"
	StatusRefused  BillStatus = "refused"
)

// ExpenseTypes is the fixed set of expense categories an employee can pick.
var ExpenseTypes = []string{
	"Transports",
	"Restaurants et bars",
	"Hôtel et logement",
	"Services en ligne",
	"Fournitures de bureau",
	"Équipement et matériel",
	"IT et électronique",
}

// SubmissionState is the lifecycle state of one submission pipeline.
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateUploading  SubmissionState = "uploading"
	StateUploaded   SubmissionState = "uploaded"
	StateSubmitting SubmissionState = "submitting"
	StateNavigated  SubmissionState = "navigated"
	StateFailed     SubmissionState = "failed"
)

// validTransitions defines the allowed submission state machine transitions.
// Selecting a new receipt restarts the pipeline, so idle, uploaded and failed
// may all re-enter uploading.
var validTransitions = map[SubmissionState][]SubmissionState{
	StateIdle:       {StateUploading},
	StateUploading:  {StateUploaded, StateFailed},
	StateUploaded:   {StateSubmitting, StateUploading},
	StateSubmitting: {StateNavigated, StateUploaded},
	StateFailed:     {StateUploading},
}

var ErrBillNotFound = errors.New("bill not found")
var ErrUploadInFlight = errors.New("receipt upload already in flight")
var ErrSubmissionInFlight = errors.New("submission already in flight")
var ErrReceiptMissing = errors.New("no uploaded receipt for this submission")
var ErrDuplicateSubmission = errors.New("duplicate submission")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from the current state to next is valid.
func (s SubmissionState) CanTransitionTo(next SubmissionState) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Bill is the core aggregate: one expense-report record owned by an employee.
//
// Vat is intentionally a string while Pct is a number: the historical backend
// contract stores vat exactly as entered. Do not coerce it.
type Bill struct {
	ID         string     `json:"id" bson:"_id,omitempty"`
	Email      string     `json:"email" bson:"email"`
	Type       string     `json:"type" bson:"type"`
	Name       string     `json:"name" bson:"name"`
	Amount     float64    `json:"amount" bson:"amount"`
	Date       string     `json:"date" bson:"date"`
	Vat        string     `json:"vat" bson:"vat"`
	Pct        int        `json:"pct" bson:"pct"`
	Commentary string     `json:"commentary,omitempty" bson:"commentary,omitempty"`
	FileURL    string     `json:"fileUrl" bson:"file_url"`
	FileName   string     `json:"fileName" bson:"file_name"`
	Status     BillStatus `json:"status" bson:"status"`
}
