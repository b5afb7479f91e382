package handlers

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vchhajed/chhajedfoodproducts-sub000/internal/models"
)

/* =========================
   REQUEST DTOs
========================= */

type createOrderItemRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand"`
	Weight   string  `json:"weight"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type createOrderBillingRequest struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}

type createOrderRequest struct {
	Amount         *float64                  `json:"amount"`
	Currency       string                    `json:"currency"`
	BillingDetails createOrderBillingRequest `json:"billingDetails"`
	CartItems      []createOrderItemRequest  `json:"cartItems"`
}

/* =========================
   CREATE ORDER
========================= */

// CreateOrder records an order. The amount is the only required field; the
// billing and cart context is stored when the client sends it.
func CreateOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithFailure(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		if req.Amount == nil || *req.Amount <= 0 {
			respondWithFailure(c, http.StatusBadRequest, route, "amount must be greater than zero")
			return
		}

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithFailure(c, http.StatusInternalServerError, route, "database unavailable")
			return
		}

		currency := strings.TrimSpace(req.Currency)
		if currency == "" {
			currency = "INR"
		}

		order := buildOrderFromRequest(req, currency)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if _, err := db.Collection("orders").InsertOne(ctx, order); err != nil {
			respondWithFailure(c, http.StatusInternalServerError, route, "order could not be recorded")
			return
		}

		log.Println("[ORDER] [INFO] order created:", order.ID.Hex())
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"order": gin.H{
				"id":       order.ID.Hex(),
				"amount":   order.AmountMinor,
				"currency": order.Currency,
				"status":   order.Status,
				"receipt":  order.Receipt,
			},
		})
	}
}

func buildOrderFromRequest(req createOrderRequest, currency string) models.Order {
	items := make([]models.OrderItem, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		items = append(items, models.OrderItem{
			ItemID:   item.ID,
			Name:     strings.TrimSpace(item.Name),
			Brand:    strings.TrimSpace(item.Brand),
			Weight:   strings.TrimSpace(item.Weight),
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	now := time.Now()
	return models.Order{
		ID:          primitive.NewObjectID(),
		Amount:      *req.Amount,
		AmountMinor: int64(math.Round(*req.Amount * 100)),
		Currency:    currency,
		Status:      "created",
		Receipt:     fmt.Sprintf("rcpt_%d_%s", now.UnixMilli(), primitive.NewObjectID().Hex()[:8]),
		Billing:     models.OrderBilling(req.BillingDetails),
		Items:       items,
		CreatedAt:   now,
	}
}

/* =========================
   GET ORDERS
========================= */

func GetOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"
		defer handlePanic(c, route)

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"))
		if err != nil {
			respondWithFailure(c, http.StatusBadRequest, route, "invalid pagination params")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetSkip((page - 1) * limit).
			SetLimit(limit)

		cursor, err := db.Collection("orders").Find(ctx, bson.M{}, opts)
		if err != nil {
			respondWithFailure(c, http.StatusInternalServerError, route, "orders could not be fetched")
			return
		}
		defer cursor.Close(ctx)

		var list []models.Order
		if err := cursor.All(ctx, &list); err != nil {
			respondWithFailure(c, http.StatusInternalServerError, route, "failed to parse orders")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"orders":  list,
			"page":    page,
			"limit":   limit,
		})
	}
}
