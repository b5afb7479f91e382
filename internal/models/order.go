package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem represents a single product entry within a recorded order.
type OrderItem struct {
	ItemID   string  `bson:"itemId" json:"itemId"`
	Name     string  `bson:"name" json:"name"`
	Brand    string  `bson:"brand,omitempty" json:"brand,omitempty"`
	Weight   string  `bson:"weight,omitempty" json:"weight,omitempty"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// OrderBilling captures the buyer contact details submitted with an order.
type OrderBilling struct {
	FullName     string `bson:"fullName" json:"fullName"`
	Email        string `bson:"email,omitempty" json:"email,omitempty"`
	Phone        string `bson:"phone" json:"phone"`
	AddressLine1 string `bson:"addressLine1" json:"addressLine1"`
	AddressLine2 string `bson:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	City         string `bson:"city" json:"city"`
	State        string `bson:"state" json:"state"`
	Pincode      string `bson:"pincode" json:"pincode"`
}

// Order defines the persisted order document.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Amount      float64            `bson:"amount" json:"amount"`
	AmountMinor int64              `bson:"amountMinor" json:"amountMinor"`
	Currency    string             `bson:"currency" json:"currency"`
	Status      string             `bson:"status" json:"status"`
	Receipt     string             `bson:"receipt" json:"receipt"`
	Billing     OrderBilling       `bson:"billing" json:"billing"`
	Items       []OrderItem        `bson:"items,omitempty" json:"items,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
