package checkout

import (
	"context"
	"errors"
	"log"

	"github.com/vchhajed/chhajedfoodproducts-sub000/internal/cartstore"
	"github.com/vchhajed/chhajedfoodproducts-sub000/internal/models"
	"github.com/vchhajed/chhajedfoodproducts-sub000/internal/orders"
	"github.com/vchhajed/chhajedfoodproducts-sub000/internal/payment"
)

var ErrEmptyCart = errors.New("cart is empty")

// ValidationError blocks the payment step until the billing details are
// corrected. It carries the per-field messages for the screen to surface.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "billing details are invalid"
}

// Confirmation is the state the confirmation view needs: the two identifiers,
// real or synthesized.
type Confirmation struct {
	OrderID   string
	PaymentID string
}

// Flow drives the checkout screen: it reads the cart, gates the payment modal
// on validation, and on simulated payment success submits the order and
// empties the cart. The WhatsApp path bypasses it entirely.
type Flow struct {
	Cart       *cartstore.Store
	Calculator Calculator
	Payment    *payment.Simulator
	Orders     *orders.Client
	Currency   string

	Billing models.BillingDetails
}

// Totals recomputes the price breakdown from the current cart.
func (f *Flow) Totals() OrderTotals {
	return f.Calculator.Compute(f.Cart.TotalPrice())
}

// OpenPayment opens the payment modal. Refused while the cart is empty or the
// billing details fail validation.
func (f *Flow) OpenPayment() error {
	if f.Cart.TotalItemCount() == 0 {
		return ErrEmptyCart
	}
	if errs := ValidateBilling(f.Billing); !errs.IsValid() {
		return &ValidationError{Fields: errs}
	}
	return f.Payment.Open()
}

// SubmitPayment hands the grand total to the payment simulator. When the
// gateway reports success the order is recorded best-effort, the cart is
// cleared, and done receives the confirmation state.
func (f *Flow) SubmitPayment(done func(Confirmation)) error {
	totals := f.Totals()
	return f.Payment.SubmitPayment(totals.GrandTotal, func() {
		done(f.completeOrder(totals))
	})
}

func (f *Flow) completeOrder(totals OrderTotals) Confirmation {
	result := f.Orders.Submit(context.Background(), totals.GrandTotal, f.Currency, f.Billing, f.Cart.Items())
	if result.Recorded {
		log.Println("[CHECKOUT] [INFO] order recorded:", result.OrderID)
	} else {
		log.Println("[CHECKOUT] [INFO] order confirmed locally:", result.OrderID)
	}
	f.Cart.Clear()
	return Confirmation{OrderID: result.OrderID, PaymentID: result.PaymentID}
}
