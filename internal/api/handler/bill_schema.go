package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// submitBillRequest carries the form field values of the update phase.
// vat stays a string on purpose; the stored payload keeps it exactly as
// entered while pct and amount are numeric.
type submitBillRequest struct {
	Type       string  `json:"type"       validate:"required"`
	Name       string  `json:"name"       validate:"required"`
	Amount     float64 `json:"amount"     validate:"required,gte=0"`
	Date       string  `json:"date"       validate:"required,datetime=2006-01-02"`
	Vat        string  `json:"vat"`
	Pct        int     `json:"pct"        validate:"gte=0"`
	Commentary string  `json:"commentary"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally separate
// from ports/domain types so the JSON contract is not coupled to internal
// service changes.

type uploadReceiptResponse struct {
	Key      string `json:"key"`
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
}

type billResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	Vat        string  `json:"vat"`
	Pct        int     `json:"pct"`
	Commentary string  `json:"commentary,omitempty"`
	FileURL    string  `json:"fileUrl"`
	FileName   string  `json:"fileName"`
	Status     string  `json:"status"`
}

type submitBillResponse struct {
	Bill billResponse `json:"bill"`
	// Redirect is the front-end route key to navigate to after a
	// successful submission.
	Redirect string `json:"redirect"`
}

// billItemResponse is one row of the listing: date and status carry display
// strings, rawDate keeps the stored ISO value the ordering was derived from.
type billItemResponse struct {
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

type listBillsResponse struct {
	Data []billItemResponse `json:"data"`
}
