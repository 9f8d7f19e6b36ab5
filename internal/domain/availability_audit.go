package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AvailabilityAudit struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ItemID    string             `bson:"item_id" json:"item_id"`
	EventType string             `bson:"event_type" json:"event_type"`
	Available bool               `bson:"available" json:"available"`
	Reason    string             `bson:"reason,omitempty" json:"reason,omitempty"`
	Mobile    string             `bson:"mobile" json:"mobile"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
