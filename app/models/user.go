package models

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartSlots is the fixed number of cart entries every user starts with.
// The storefront addresses items by a small integer id, so the cart is
// pre-seeded with keys "0".."299" at zero quantity.
const CartSlots = 300

// User is an account document. Password is stored as supplied by the
// configured credential scheme (see services.CredentialVerifier) and
// never serialised to clients.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name     string             `bson:"name"     json:"name"`
	Email    string             `bson:"email"    json:"email"`
	Password string             `bson:"password" json:"-"`
	CartData map[string]int     `bson:"cartData" json:"cartData"`
	Date     time.Time          `bson:"date"     json:"date"`
}

// NewCart returns a zeroed cart with CartSlots entries.
func NewCart() map[string]int {
	cart := make(map[string]int, CartSlots)
	for i := 0; i < CartSlots; i++ {
		cart[strconv.Itoa(i)] = 0
	}
	return cart
}
