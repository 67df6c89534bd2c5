package services

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the service layer. Controllers map these to
// response codes with errors.Is instead of comparing message strings.
var (
	ErrHouseNotFound     = errors.New("house not found")
	ErrHouseExists       = errors.New("house number already registered")
	ErrBillNotFound      = errors.New("bill not found")
	ErrFineNotFound      = errors.New("fine not found")
	ErrAdminNotFound     = errors.New("operator account not found")
	ErrAdminExists       = errors.New("username already exists")
	ErrLastAdmin         = errors.New("cannot delete the last operator account")
	ErrInvalidSizeFormat = errors.New("invalid house size format")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrNoBills           = errors.New("no bills found for this house")
)

// SyncError reports a partially applied status synchronization run. The
// bill update and the fines that were already updated stay applied; only
// the failed remainder is reported.
type SyncError struct {
	HouseID uint
	Updated int
	Failed  int
	Errs    []error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("status sync for house %d: %d fines updated, %d failed", e.HouseID, e.Updated, e.Failed)
}

func (e *SyncError) Unwrap() []error {
	return e.Errs
}
