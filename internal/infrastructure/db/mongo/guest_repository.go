package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

const guestCollection = "guests"

type GuestRepository struct {
	coll *mongo.Collection
}

func NewGuestRepository(db *mongo.Database) *GuestRepository {
	return &GuestRepository{coll: db.Collection(guestCollection)}
}

type mongoGuest struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	GuestName  string             `bson:"guest_name"`
	Email      string             `bson:"email,omitempty"`
	RSVPStatus string             `bson:"rsvp_status"`
	CreatedAt  int64              `bson:"created_at"`
}

func (mg mongoGuest) toDomain() *domain.Guest {
	return &domain.Guest{
		ID:         mg.ID.Hex(),
		UserID:     mg.UserID,
		GuestName:  mg.GuestName,
		Email:      mg.Email,
		RSVPStatus: domain.RSVPStatus(mg.RSVPStatus),
		CreatedAt:  unixToTime(mg.CreatedAt),
	}
}

// EnsureIndexes creates the per-user index guest-list reads use.
func (r *GuestRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create guest indexes: %w", err)
	}
	return nil
}

func (r *GuestRepository) ListByUser(ctx context.Context, userID string) ([]domain.Guest, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	defer cur.Close(ctx)

	var guests []domain.Guest
	for cur.Next(ctx) {
		var mg mongoGuest
		if err := cur.Decode(&mg); err != nil {
			return nil, fmt.Errorf("decode guest: %w", err)
		}
		guests = append(guests, *mg.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate guests: %w", err)
	}
	return guests, nil
}

func (r *GuestRepository) FindByID(ctx context.Context, id string) (*domain.Guest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGuestNotFound
	}

	var mg mongoGuest
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrGuestNotFound
		}
		return nil, fmt.Errorf("find guest: %w", err)
	}
	return mg.toDomain(), nil
}

func (r *GuestRepository) Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	doc := mongoGuest{
		UserID:     guest.UserID,
		GuestName:  guest.GuestName,
		Email:      guest.Email,
		RSVPStatus: string(guest.RSVPStatus),
		CreatedAt:  guest.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert guest: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *GuestRepository) Update(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	oid, err := primitive.ObjectIDFromHex(guest.ID)
	if err != nil {
		return nil, domain.ErrGuestNotFound
	}

	update := bson.M{"$set": bson.M{
		"guest_name":  guest.GuestName,
		"email":       guest.Email,
		"rsvp_status": string(guest.RSVPStatus),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update guest: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrGuestNotFound
	}
	return r.FindByID(ctx, guest.ID)
}

func (r *GuestRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrGuestNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete guest: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGuestNotFound
	}
	return nil
}
