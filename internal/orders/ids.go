package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newOrderID synthesizes a display-only order identifier. Never used as an
// idempotency key.
func newOrderID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("order_%d_%s", time.Now().UnixMilli(), suffix)
}

// newPaymentID synthesizes a display-only payment token.
func newPaymentID() string {
	return fmt.Sprintf("pay_%d", time.Now().UnixMilli())
}
