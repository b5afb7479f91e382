package whatsapp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vchhajed/chhajedfoodproducts-sub000/internal/cartstore"
	"github.com/vchhajed/chhajedfoodproducts-sub000/internal/models"
)

// WarningDuration is how long the incomplete-address warning stays on screen
// before auto-dismissing.
const WarningDuration = 3 * time.Second

const disclaimer = "Note: This is an order request. Our team will confirm availability and delivery on WhatsApp."

// IncompleteAddressError is returned when the hand-off is refused because
// required delivery fields are blank. It is surfaced as a transient warning
// and never propagated further.
type IncompleteAddressError struct {
	Fields []string
}

func (e *IncompleteAddressError) Error() string {
	return "delivery address incomplete: " + strings.Join(e.Fields, ", ")
}

// Sender renders the cart into a shareable order text and hands it to the
// store's WhatsApp number.
type Sender struct {
	phone string
	cart  *cartstore.Store
}

func NewSender(phone string, cart *cartstore.Store) *Sender {
	return &Sender{phone: phone, cart: cart}
}

// SendOrder validates the address, builds the hand-off URL, clears the cart
// and resets the address fields. On success the returned URL is the hand-off
// target carrying the full order text.
func (s *Sender) SendOrder(address *models.DeliveryAddress) (string, error) {
	if err := checkAddress(*address); err != nil {
		return "", err
	}
	text := RenderOrderText(s.cart.Items(), *address)
	target := HandoffURL(s.phone, text)
	s.cart.Clear()
	*address = models.DeliveryAddress{}
	return target, nil
}

func checkAddress(address models.DeliveryAddress) error {
	var missing []string
	require := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	require("fullName", address.FullName)
	require("phone", address.Phone)
	require("addressLine1", address.AddressLine1)
	require("city", address.City)
	require("state", address.State)
	require("pincode", address.Pincode)
	if len(missing) > 0 {
		return &IncompleteAddressError{Fields: missing}
	}
	return nil
}

// RenderOrderText produces the order message from the cart and address and
// nothing else. Identical input renders byte-identical output on every call.
func RenderOrderText(items []models.CartItem, address models.DeliveryAddress) string {
	var b strings.Builder
	b.WriteString("*Order - Chhajed Food Products*\n\n")

	count := 0
	total := 0.0
	for i, item := range items {
		count += item.Quantity
		total += item.LineTotal()

		fmt.Fprintf(&b, "*%d. %s*\n", i+1, item.Name)
		if item.Brand != "" {
			fmt.Fprintf(&b, "Brand: %s\n", item.Brand)
		}
		if item.WeightLabel != "" {
			fmt.Fprintf(&b, "Weight: %s\n", item.WeightLabel)
		}
		fmt.Fprintf(&b, "Rate: %s\n", rupees(item.UnitPrice))
		fmt.Fprintf(&b, "Qty: %d\n", item.Quantity)
		fmt.Fprintf(&b, "Amount: %s\n\n", rupees(item.LineTotal()))
	}

	b.WriteString("*Order Summary*\n")
	fmt.Fprintf(&b, "Total Items: %d\n", count)
	fmt.Fprintf(&b, "Total Amount: %s\n\n", rupees(total))

	b.WriteString("*Delivery Address*\n")
	b.WriteString(address.FullName + "\n")
	b.WriteString(address.AddressLine1 + "\n")
	if strings.TrimSpace(address.AddressLine2) != "" {
		b.WriteString(address.AddressLine2 + "\n")
	}
	fmt.Fprintf(&b, "%s, %s - %s\n", address.City, address.State, address.Pincode)
	fmt.Fprintf(&b, "Phone: %s\n\n", address.Phone)

	b.WriteString(disclaimer)
	return b.String()
}

// HandoffURL builds the messaging hand-off target. The phone number is
// reduced to digits; the text travels URL-encoded in the query string.
func HandoffURL(phone, text string) string {
	query := url.Values{"text": {text}}
	return "https://wa.me/" + digitsOnly(phone) + "?" + query.Encode()
}

func rupees(amount float64) string {
	return "₹" + strconv.FormatFloat(amount, 'f', -1, 64)
}

func digitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
