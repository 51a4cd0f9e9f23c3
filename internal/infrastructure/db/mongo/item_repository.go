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

const itemCollection = "items"

type ItemRepository struct {
	coll *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{coll: db.Collection(itemCollection)}
}

type mongoItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	VendorID    string             `bson:"vendor_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category,omitempty"`
	Status      string             `bson:"status"`
	CreatedAt   int64              `bson:"created_at"`
}

func (mi mongoItem) toDomain() *domain.Item {
	return &domain.Item{
		ID:          mi.ID.Hex(),
		VendorID:    mi.VendorID,
		Name:        mi.Name,
		Description: mi.Description,
		Price:       mi.Price,
		Category:    mi.Category,
		Status:      domain.ItemStatus(mi.Status),
		CreatedAt:   unixToTime(mi.CreatedAt),
	}
}

// EnsureIndexes creates the indexes backing per-vendor and catalog queries.
func (r *ItemRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "vendor_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "category", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("create item indexes: %w", err)
	}
	return nil
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	doc := mongoItem{
		VendorID:    item.VendorID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Status:      string(item.Status),
		CreatedAt:   item.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrItemNotFound
	}

	var mi mongoItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mi); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return mi.toDomain(), nil
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	oid, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return nil, domain.ErrItemNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        item.Name,
		"description": item.Description,
		"price":       item.Price,
		"category":    item.Category,
		"status":      string(item.Status),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrItemNotFound
	}
	return r.FindByID(ctx, item.ID)
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrItemNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) ListByVendor(ctx context.Context, vendorID string) ([]domain.Item, error) {
	return r.find(ctx, bson.M{"vendor_id": vendorID})
}

func (r *ItemRepository) ListAll(ctx context.Context) ([]domain.Item, error) {
	return r.find(ctx, bson.M{})
}

func (r *ItemRepository) ListApproved(ctx context.Context, vendorIDs []string, category string) ([]domain.Item, error) {
	if len(vendorIDs) == 0 {
		return nil, nil
	}

	filter := bson.M{
		"status":    string(domain.ItemApproved),
		"vendor_id": bson.M{"$in": vendorIDs},
	}
	if category != "" {
		filter["category"] = category
	}
	return r.find(ctx, filter)
}

func (r *ItemRepository) find(ctx context.Context, filter bson.M) ([]domain.Item, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer cur.Close(ctx)

	var items []domain.Item
	for cur.Next(ctx) {
		var mi mongoItem
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		items = append(items, *mi.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}
