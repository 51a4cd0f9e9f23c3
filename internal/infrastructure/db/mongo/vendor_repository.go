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

const vendorCollection = "vendors"

type VendorRepository struct {
	coll *mongo.Collection
}

func NewVendorRepository(db *mongo.Database) *VendorRepository {
	return &VendorRepository{coll: db.Collection(vendorCollection)}
}

type mongoVendor struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	UserID           string             `bson:"user_id"`
	CompanyName      string             `bson:"company_name"`
	Category         string             `bson:"category,omitempty"`
	MembershipStatus string             `bson:"membership_status"`
	CreatedAt        int64              `bson:"created_at"`
}

func (mv mongoVendor) toDomain() *domain.Vendor {
	return &domain.Vendor{
		ID:               mv.ID.Hex(),
		UserID:           mv.UserID,
		CompanyName:      mv.CompanyName,
		Category:         mv.Category,
		MembershipStatus: domain.MembershipStatus(mv.MembershipStatus),
		CreatedAt:        unixToTime(mv.CreatedAt),
	}
}

// EnsureIndexes creates the user_id index used by profile lookups.
func (r *VendorRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create vendor indexes: %w", err)
	}
	return nil
}

func (r *VendorRepository) Create(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	doc := mongoVendor{
		UserID:           vendor.UserID,
		CompanyName:      vendor.CompanyName,
		Category:         vendor.Category,
		MembershipStatus: string(vendor.MembershipStatus),
		CreatedAt:        vendor.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert vendor: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *VendorRepository) FindByID(ctx context.Context, id string) (*domain.Vendor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrVendorNotFound
	}

	var mv mongoVendor
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrVendorNotFound
		}
		return nil, fmt.Errorf("find vendor: %w", err)
	}
	return mv.toDomain(), nil
}

func (r *VendorRepository) FindByUserID(ctx context.Context, userID string) (*domain.Vendor, error) {
	var mv mongoVendor
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&mv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrVendorNotFound
		}
		return nil, fmt.Errorf("find vendor by user: %w", err)
	}
	return mv.toDomain(), nil
}

func (r *VendorRepository) Update(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	oid, err := primitive.ObjectIDFromHex(vendor.ID)
	if err != nil {
		return nil, domain.ErrVendorNotFound
	}

	update := bson.M{"$set": bson.M{
		"company_name":      vendor.CompanyName,
		"category":          vendor.Category,
		"membership_status": string(vendor.MembershipStatus),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update vendor: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrVendorNotFound
	}
	return r.FindByID(ctx, vendor.ID)
}

func (r *VendorRepository) List(ctx context.Context) ([]domain.Vendor, error) {
	return r.find(ctx, bson.M{})
}

func (r *VendorRepository) ListByStatus(ctx context.Context, status domain.MembershipStatus) ([]domain.Vendor, error) {
	return r.find(ctx, bson.M{"membership_status": string(status)})
}

func (r *VendorRepository) find(ctx context.Context, filter bson.M) ([]domain.Vendor, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer cur.Close(ctx)

	var vendors []domain.Vendor
	for cur.Next(ctx) {
		var mv mongoVendor
		if err := cur.Decode(&mv); err != nil {
			return nil, fmt.Errorf("decode vendor: %w", err)
		}
		vendors = append(vendors, *mv.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate vendors: %w", err)
	}
	return vendors, nil
}
