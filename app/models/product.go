package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry. CatalogID is the storefront-facing
// integer key, assigned monotonically at creation; the Mongo _id is
// never exposed to clients.
type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CatalogID int                `bson:"id"            json:"id"`
	Name      string             `bson:"name"          json:"name"`
	Image     string             `bson:"image"         json:"image"`
	Category  string             `bson:"category"      json:"category"`
	NewPrice  float64            `bson:"new_price"     json:"new_price"`
	OldPrice  float64            `bson:"old_price"     json:"old_price"`
	Date      time.Time          `bson:"date"          json:"date"`
	Available bool               `bson:"available"     json:"available"`
}
