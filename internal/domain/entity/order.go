package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order represents a completed purchase. ProductIDs keeps insertion order and
// allows duplicates: a product listed twice stands for quantity two. Total is
// supplied by the caller and is authoritative; it is never re-derived from
// product prices.
type Order struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Date       time.Time            `bson:"date" json:"date"`
	ProductIDs []primitive.ObjectID `bson:"productIds" json:"product_ids"`
	Total      float64              `bson:"total" json:"total"`
	CreatedAt  time.Time            `bson:"createdAt" json:"created_at"`
	UpdatedAt  time.Time            `bson:"updatedAt" json:"updated_at"`
}
