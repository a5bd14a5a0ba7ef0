package download

import (
	"time"

	"github.com/google/uuid"
)

// Status distinguishes a handed-off download from one known to have completed
type Status string

const (
	// StatusInitiated means the launcher was invoked; nothing more is known.
	StatusInitiated Status = "initiated"
	// StatusConfirmed means the launcher observed the transfer finish.
	StatusConfirmed Status = "confirmed"
)

// Receipt records a download action
type Receipt struct {
	ID          uuid.UUID  `json:"id"`
	Descriptor  Descriptor `json:"descriptor"`
	Status      Status     `json:"status"`
	InitiatedAt time.Time  `json:"initiated_at"`
}

// NewReceipt creates an initiated receipt for d
func NewReceipt(d Descriptor) Receipt {
	return Receipt{
		ID:          uuid.New(),
		Descriptor:  d,
		Status:      StatusInitiated,
		InitiatedAt: time.Now(),
	}
}

// Confirm returns a copy of the receipt marked confirmed
func (r Receipt) Confirm() Receipt {
	r.Status = StatusConfirmed
	return r
}
