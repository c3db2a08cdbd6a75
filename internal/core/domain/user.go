package domain

import "errors"

var ErrSessionMissing = errors.New("missing session identity")

const (
	UserTypeEmployee = "Employee"
	UserTypeAdmin    = "Admin"
)

// Route keys understood by the front-end router. The API hands these back so
// the client knows where to navigate after a successful operation.
const (
	RouteBills   = "#employee/bills"
	RouteNewBill = "#employee/bill/new"
)

// Session is the read-only identity of the connected user. It is extracted
// from the bearer token by the session middleware and never mutated by the
// core.
type Session struct {
	Email string `json:"email"`
	Type  string `json:"type"`
}
