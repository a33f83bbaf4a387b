package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Booking is a rental of one car by one user. The end-after-start rule is
// checked by checkout, not here.
type Booking struct {
	ID            string        `json:"id" validate:"required"`
	UserID        string        `json:"userId" validate:"required"`
	CarID         string        `json:"carId" validate:"required"`
	StartDate     time.Time     `json:"startDate" validate:"required"`
	EndDate       time.Time     `json:"endDate" validate:"required"`
	TotalDays     int           `json:"totalDays" validate:"min=0"`
	TotalPrice    float64       `json:"totalPrice" validate:"min=0"`
	Tax           float64       `json:"tax" validate:"min=0"`
	TotalAmount   float64       `json:"totalAmount" validate:"min=0"`
	Status        BookingStatus `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
	TransactionID string        `json:"transactionId"`
	CreatedAt     time.Time     `json:"createdAt" validate:"required"`
}

func (b Booking) Validate() error {
	return validate.Struct(b)
}
