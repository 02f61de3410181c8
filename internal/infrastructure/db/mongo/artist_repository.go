package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gigstage/booking-system/internal/core/domain"
	"github.com/gigstage/booking-system/internal/core/ports"
)

const collectionArtists = "artists"

type ArtistRepository struct {
	col *mongo.Collection
}

func NewArtistRepository(db *mongo.Database) *ArtistRepository {
	return &ArtistRepository{col: db.Collection(collectionArtists)}
}

func (r *ArtistRepository) Create(ctx context.Context, a *domain.Artist) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrProfileExists
		}
		return nil, err
	}

	created := *a
	created.ID = res.InsertedID.(primitive.ObjectID)
	return &created, nil
}

func (r *ArtistRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Artist
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *ArtistRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Artist
	if err := r.col.FindOne(ctx, bson.M{"user": userID}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *ArtistRepository) List(ctx context.Context, opts ports.ListOptions) ([]domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, buildFilter(opts.Filter), findOptions(opts))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	artists := []domain.Artist{}
	if err := cursor.All(ctx, &artists); err != nil {
		return nil, err
	}
	return artists, nil
}

// Count reports the unfiltered collection size, which pagination is
// computed against.
func (r *ArtistRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *ArtistRepository) Update(ctx context.Context, id primitive.ObjectID, in ports.UpdateArtistInput) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if in.StageName != nil {
		set["stageName"] = *in.StageName
	}
	if in.Bio != nil {
		set["bio"] = *in.Bio
	}
	if in.Genres != nil {
		set["genres"] = in.Genres
	}
	if in.HourlyRate != nil {
		set["hourlyRate"] = *in.HourlyRate
	}
	if in.ProfileImage != nil {
		set["profileImage"] = *in.ProfileImage
	}
	if in.Gallery != nil {
		set["gallery"] = in.Gallery
	}
	if in.SocialLinks != nil {
		set["socialLinks"] = *in.SocialLinks
	}

	var a domain.Artist
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *ArtistRepository) SetAvailability(ctx context.Context, id primitive.ObjectID, slots []domain.AvailabilitySlot) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Artist
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"availability": slots, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *ArtistRepository) SetAverageRating(ctx context.Context, id primitive.ObjectID, rating float64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"averageRating": rating}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrArtistNotFound
	}
	return nil
}

func (r *ArtistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrArtistNotFound
	}
	return nil
}

// EnsureIndexes enforces the one-profile-per-user rule at the store level.
func (r *ArtistRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
