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

const cartCollection = "cart_items"

type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{coll: db.Collection(cartCollection)}
}

type mongoCartItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	UserID   string             `bson:"user_id"`
	ItemID   string             `bson:"item_id"`
	Quantity int                `bson:"quantity"`
}

func (mc mongoCartItem) toDomain() *domain.CartItem {
	return &domain.CartItem{
		ID:       mc.ID.Hex(),
		UserID:   mc.UserID,
		ItemID:   mc.ItemID,
		Quantity: mc.Quantity,
	}
}

// EnsureIndexes creates the per-user index plus a unique (user, item) pair
// so a cart never holds two lines for the same listing.
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "item_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("create cart indexes: %w", err)
	}
	return nil
}

func (r *CartRepository) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer cur.Close(ctx)

	var lines []domain.CartItem
	for cur.Next(ctx) {
		var mc mongoCartItem
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode cart line: %w", err)
		}
		lines = append(lines, *mc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart: %w", err)
	}
	return lines, nil
}

func (r *CartRepository) FindByID(ctx context.Context, id string) (*domain.CartItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCartItemNotFound
	}

	var mc mongoCartItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("find cart line: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CartRepository) FindByUserAndItem(ctx context.Context, userID, itemID string) (*domain.CartItem, error) {
	var mc mongoCartItem
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "item_id": itemID}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("find cart line by item: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CartRepository) Create(ctx context.Context, line *domain.CartItem) (*domain.CartItem, error) {
	doc := mongoCartItem{
		UserID:   line.UserID,
		ItemID:   line.ItemID,
		Quantity: line.Quantity,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert cart line: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, id string, quantity int) (*domain.CartItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCartItemNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"quantity": quantity}})
	if err != nil {
		return nil, fmt.Errorf("update cart quantity: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCartItemNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *CartRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCartItemNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete cart line: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
