package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewUser is the populated reviewer summary embedded in review reads.
type ReviewUser struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

// ReviewArtist is the populated artist summary embedded in review reads.
type ReviewArtist struct {
	ID        primitive.ObjectID `json:"id"`
	StageName string             `json:"stageName"`
}

// ReviewBookingEvent carries the event title of the reviewed booking.
type ReviewBookingEvent struct {
	ID    primitive.ObjectID `json:"id"`
	Title string             `json:"title"`
}

// ReviewBooking is the populated booking summary embedded in review reads.
type ReviewBooking struct {
	ID    primitive.ObjectID  `json:"id"`
	Event *ReviewBookingEvent `json:"event"`
}

// ReviewDetail is a review with its references resolved for reads. The outer
// fields shadow the embedded id fields in the JSON output; a dangling
// reference renders as null.
type ReviewDetail struct {
	Review
	User    *ReviewUser    `json:"user"`
	Artist  *ReviewArtist  `json:"artist"`
	Booking *ReviewBooking `json:"booking"`
}

// Review is written by the booking owner once the booking has completed.
// The artist reference is denormalized from the booking. Unique per
// (booking, user).
type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Booking   primitive.ObjectID `json:"booking" bson:"booking"`
	Artist    primitive.ObjectID `json:"artist" bson:"artist"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Rating    int                `json:"rating" bson:"rating"`
	Text      string             `json:"text" bson:"text"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
