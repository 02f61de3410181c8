package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingStatus represents the lifecycle state of a booking.
//
// Any status may be set by an authorized actor at any time; there is
// deliberately no transition graph (e.g. confirmed → pending is allowed).
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCanceled  BookingStatus = "canceled"
	BookingCompleted BookingStatus = "completed"
)

// Valid reports whether s is a member of the booking status enum.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCanceled, BookingCompleted:
		return true
	}
	return false
}

// PaymentStatus represents the state of a booking's payment sub-record.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
	PaymentFailed    PaymentStatus = "failed"
)

var paymentMethods = map[string]struct{}{
	"credit_card": {}, "paypal": {}, "bank_transfer": {}, "cash": {},
}

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m string) bool {
	_, ok := paymentMethods[m]
	return ok
}

// Payment is the embedded payment sub-record of a booking.
type Payment struct {
	PaymentMethod string        `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus" bson:"paymentStatus"`
	TransactionID string        `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	PaidAt        *time.Time    `json:"paidAt,omitempty" bson:"paidAt,omitempty"`
}

// BookingEvent is the populated event summary embedded in booking reads.
type BookingEvent struct {
	ID       primitive.ObjectID `json:"id"`
	Title    string             `json:"title"`
	Date     time.Time          `json:"date"`
	Location Location           `json:"location"`
}

// BookingArtist is the populated artist summary embedded in booking reads.
type BookingArtist struct {
	ID         primitive.ObjectID `json:"id"`
	StageName  string             `json:"stageName"`
	HourlyRate float64            `json:"hourlyRate"`
}

// BookingUser is the populated user summary embedded in booking reads.
type BookingUser struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

// BookingDetail is a booking with its references resolved for reads. The
// outer fields shadow the embedded id fields in the JSON output; a dangling
// reference renders as null.
type BookingDetail struct {
	Booking
	Event  *BookingEvent  `json:"event"`
	Artist *BookingArtist `json:"artist"`
	User   *BookingUser   `json:"user"`
}

// Booking links one event, one artist profile, and the requesting user.
// Price, startTime, and endTime are derived at creation and never
// client-supplied. Unique per (event, artist).
type Booking struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Event     primitive.ObjectID `json:"event" bson:"event"`
	Artist    primitive.ObjectID `json:"artist" bson:"artist"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Status    BookingStatus      `json:"status" bson:"status"`
	Price     float64            `json:"price" bson:"price"`
	StartTime time.Time          `json:"startTime" bson:"startTime"`
	EndTime   time.Time          `json:"endTime" bson:"endTime"`
	Notes     string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Payment   Payment            `json:"payment" bson:"payment"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
