package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/core/domain"
)

// isOwnerOrAdmin is the uniform ownership rule applied across resource types:
// admins bypass every check, otherwise the requester must be the resource's
// designated owner (Artist.user, Event.organizer, Booking.user, Review.user).
func isOwnerOrAdmin(owner, requester primitive.ObjectID, role string) bool {
	return role == domain.RoleAdmin || owner == requester
}
