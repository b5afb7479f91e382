package models

// CartItem is one product line in the shopping cart. ID is unique within a
// cart; Quantity is always >= 1 while the item is present.
type CartItem struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Brand       string  `bson:"brand,omitempty" json:"brand,omitempty"`
	ImageRef    string  `bson:"image,omitempty" json:"image,omitempty"`
	WeightLabel string  `bson:"weight,omitempty" json:"weight,omitempty"`
	UnitPrice   float64 `bson:"price" json:"price"`
	Quantity    int     `bson:"quantity" json:"quantity"`
}

// LineTotal is the item's contribution to the cart subtotal.
func (i CartItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
