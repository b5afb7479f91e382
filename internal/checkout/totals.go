package checkout

import "math"

// OrderTotals is the full price breakdown for a cart subtotal. Derived on
// every read, never stored.
type OrderTotals struct {
	Subtotal       float64 `json:"subtotal"`
	DeliveryCharge float64 `json:"deliveryCharge"`
	GSTAmount      float64 `json:"gstAmount"`
	GrandTotal     float64 `json:"grandTotal"`
}

// Calculator turns a subtotal into an OrderTotals using fixed configuration
// values. Call sites hold a Calculator so charge and rate changes never touch
// them.
type Calculator struct {
	DeliveryCharge float64
	GSTRate        float64
}

func NewCalculator(deliveryCharge, gstRate float64) Calculator {
	return Calculator{DeliveryCharge: deliveryCharge, GSTRate: gstRate}
}

// Compute applies the flat delivery charge only to non-empty carts and rounds
// the GST amount to the nearest rupee.
func (c Calculator) Compute(subtotal float64) OrderTotals {
	delivery := 0.0
	if subtotal > 0 {
		delivery = c.DeliveryCharge
	}
	gst := math.Round(subtotal * c.GSTRate)
	return OrderTotals{
		Subtotal:       subtotal,
		DeliveryCharge: delivery,
		GSTAmount:      gst,
		GrandTotal:     subtotal + delivery + gst,
	}
}
