package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/koolabhinay07/Lollyzz/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AvailabilityAuditRepository struct {
	collection *mongo.Collection
}

func NewAvailabilityAuditRepository(db *mongo.Database) *AvailabilityAuditRepository {
	return &AvailabilityAuditRepository{
		collection: db.Collection("availability_audit"),
	}
}

func (r *AvailabilityAuditRepository) Create(ctx context.Context, audit *domain.AvailabilityAudit) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}
	if audit.Timestamp.IsZero() {
		audit.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, audit)
	if err != nil {
		return fmt.Errorf("failed to create availability audit: %w", err)
	}

	return nil
}

func (r *AvailabilityAuditRepository) GetByItemID(ctx context.Context, itemID string, limit int) ([]domain.AvailabilityAudit, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"item_id": itemID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get availability audit: %w", err)
	}
	defer cursor.Close(ctx)

	var audits []domain.AvailabilityAudit
	if err := cursor.All(ctx, &audits); err != nil {
		return nil, fmt.Errorf("failed to decode availability audit: %w", err)
	}

	return audits, nil
}
