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

const orderCollection = "orders"

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(orderCollection)}
}

type mongoOrderItem struct {
	ItemID   string  `bson:"item_id"`
	Quantity int     `bson:"quantity"`
	Price    float64 `bson:"price"`
}

type mongoOrder struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         string             `bson:"user_id"`
	VendorID       string             `bson:"vendor_id"`
	Items          []mongoOrderItem   `bson:"items"`
	TotalAmount    float64            `bson:"total_amount"`
	PaymentStatus  string             `bson:"payment_status"`
	OrderStatus    string             `bson:"order_status"`
	IdempotencyKey string             `bson:"idempotency_key,omitempty"`
	CreatedAt      int64              `bson:"created_at"`
}

func (mo mongoOrder) toDomain() *domain.Order {
	items := make([]domain.OrderItem, 0, len(mo.Items))
	for _, it := range mo.Items {
		items = append(items, domain.OrderItem{ItemID: it.ItemID, Quantity: it.Quantity, Price: it.Price})
	}
	return &domain.Order{
		ID:             mo.ID.Hex(),
		UserID:         mo.UserID,
		VendorID:       mo.VendorID,
		Items:          items,
		TotalAmount:    mo.TotalAmount,
		PaymentStatus:  domain.PaymentStatus(mo.PaymentStatus),
		OrderStatus:    domain.OrderStatus(mo.OrderStatus),
		IdempotencyKey: mo.IdempotencyKey,
		CreatedAt:      unixToTime(mo.CreatedAt),
	}
}

// EnsureIndexes creates the lookup indexes, including a sparse unique index
// on the idempotency key so replays resolve to a single order.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "vendor_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{
			Keys:    bson.D{{Key: "idempotency_key", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("create order indexes: %w", err)
	}
	return nil
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	items := make([]mongoOrderItem, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, mongoOrderItem{ItemID: it.ItemID, Quantity: it.Quantity, Price: it.Price})
	}

	doc := mongoOrder{
		UserID:         order.UserID,
		VendorID:       order.VendorID,
		Items:          items,
		TotalAmount:    order.TotalAmount,
		PaymentStatus:  string(order.PaymentStatus),
		OrderStatus:    string(order.OrderStatus),
		IdempotencyKey: order.IdempotencyKey,
		CreatedAt:      order.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		// A concurrent replay hit the unique idempotency index; surface the
		// order the winning insert created.
		if mongo.IsDuplicateKeyError(err) && order.IdempotencyKey != "" {
			return r.FindByIdempotencyKey(ctx, order.IdempotencyKey)
		}
		return nil, fmt.Errorf("insert order: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	var mo mongoOrder
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mo); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return mo.toDomain(), nil
}

func (r *OrderRepository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error) {
	var mo mongoOrder
	if err := r.coll.FindOne(ctx, bson.M{"idempotency_key": key}).Decode(&mo); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order by idempotency key: %w", err)
	}
	return mo.toDomain(), nil
}

func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(order.ID)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	update := bson.M{"$set": bson.M{
		"payment_status": string(order.PaymentStatus),
		"order_status":   string(order.OrderStatus),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return r.FindByID(ctx, order.ID)
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *OrderRepository) ListByVendor(ctx context.Context, vendorID string) ([]domain.Order, error) {
	return r.find(ctx, bson.M{"vendor_id": vendorID})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]domain.Order, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	var orders []domain.Order
	for cur.Next(ctx) {
		var mo mongoOrder
		if err := cur.Decode(&mo); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, *mo.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}
