package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// OrderConfirmation serves the confirmation view state. Either identifier may
// be absent; the view renders the literal "N/A" in that case.
func OrderConfirmation() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := strings.TrimSpace(c.Query("orderId"))
		if orderID == "" {
			orderID = "N/A"
		}
		paymentID := strings.TrimSpace(c.Query("paymentId"))
		if paymentID == "" {
			paymentID = "N/A"
		}

		c.JSON(http.StatusOK, gin.H{
			"orderId":   orderID,
			"paymentId": paymentID,
		})
	}
}
