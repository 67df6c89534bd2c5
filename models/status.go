package models

// BillStatus is the payment state shared by bills and fines.
type BillStatus string

const (
	StatusPending   BillStatus = "pending"
	StatusSubmitted BillStatus = "submitted"
	StatusOverdue   BillStatus = "overdue"
)

// Valid reports whether s is one of the three known statuses.
func (s BillStatus) Valid() bool {
	switch s {
	case StatusPending, StatusSubmitted, StatusOverdue:
		return true
	}
	return false
}

// Unpaid reports whether the record still counts toward the outstanding
// balance. Submitted means paid or acknowledged.
func (s BillStatus) Unpaid() bool {
	return s == StatusPending || s == StatusOverdue
}
