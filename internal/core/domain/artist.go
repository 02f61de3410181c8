package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AvailabilitySlot is a single calendar-day entry on an artist profile.
// Slots are unordered and duplicate dates are not rejected.
type AvailabilitySlot struct {
	Date        time.Time `json:"date" bson:"date"`
	IsAvailable bool      `json:"isAvailable" bson:"isAvailable"`
}

// SocialLinks holds optional profile links.
type SocialLinks struct {
	Website   string `json:"website,omitempty" bson:"website,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	YouTube   string `json:"youtube,omitempty" bson:"youtube,omitempty"`
	Spotify   string `json:"spotify,omitempty" bson:"spotify,omitempty"`
}

// Artist is a performer profile owned by exactly one user (unique index on user).
type Artist struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User          primitive.ObjectID `json:"user" bson:"user"`
	StageName     string             `json:"stageName" bson:"stageName"`
	Bio           string             `json:"bio" bson:"bio"`
	Genres        []string           `json:"genres" bson:"genres"`
	HourlyRate    float64            `json:"hourlyRate" bson:"hourlyRate"`
	ProfileImage  string             `json:"profileImage" bson:"profileImage"`
	Gallery       []string           `json:"gallery" bson:"gallery"`
	SocialLinks   SocialLinks        `json:"socialLinks" bson:"socialLinks"`
	Availability  []AvailabilitySlot `json:"availability" bson:"availability"`
	AverageRating float64            `json:"averageRating,omitempty" bson:"averageRating,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// AvailableOn reports whether any slot marks the calendar day of t as
// available. Matching ignores time-of-day; both sides are compared in UTC.
func (a *Artist) AvailableOn(t time.Time) bool {
	y, m, d := t.UTC().Date()
	for _, slot := range a.Availability {
		sy, sm, sd := slot.Date.UTC().Date()
		if sy == y && sm == m && sd == d && slot.IsAvailable {
			return true
		}
	}
	return false
}
