package models

import (
	"time"
)

type TransactionType string

const (
	TransactionTypeBooking TransactionType = "booking"
	TransactionTypePayment TransactionType = "payment"
)

type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

// Transaction is an append-only record of a booking submission or a payment
// attempt, stored in mongo.
type Transaction struct {
	ID           string            `json:"id" bson:"_id"`
	BookingID    string            `json:"booking_id" bson:"booking_id"`
	Type         TransactionType   `json:"type" bson:"type"`
	Status       TransactionStatus `json:"status" bson:"status"`
	PatientEmail string            `json:"patient_email" bson:"patient_email"`
	DoctorEmail  string            `json:"doctor_email" bson:"doctor_email"`
	Amount       int               `json:"amount" bson:"amount"`
	Currency     string            `json:"currency" bson:"currency"`
	Description  string            `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt    time.Time         `json:"created_at" bson:"created_at"`
}
