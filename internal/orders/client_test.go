package orders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/vchhajed/chhajedfoodproducts-sub000/internal/models"
)

var (
	orderIDPattern   = regexp.MustCompile(`^order_\d+_[0-9a-f]{8}$`)
	paymentIDPattern = regexp.MustCompile(`^pay_\d+$`)
)

func testBilling() models.BillingDetails {
	return models.BillingDetails{FullName: "Asha Verma", Phone: "9876543210"}
}

func TestSubmitUsesBackendOrderID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"order":{"id":"65f0c0ffee","amount":47000,"currency":"INR","status":"created","receipt":"rcpt_1"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	result := client.Submit(context.Background(), 470, "INR", testBilling(), nil)

	if !result.Recorded {
		t.Fatal("expected order to be recorded")
	}
	if result.OrderID != "65f0c0ffee" {
		t.Fatalf("expected backend order id, got %q", result.OrderID)
	}
	if !paymentIDPattern.MatchString(result.PaymentID) {
		t.Fatalf("expected synthesized payment id, got %q", result.PaymentID)
	}
}

func TestSubmitFallsBackOnRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"amount must be greater than zero"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	result := client.Submit(context.Background(), 0, "INR", testBilling(), nil)

	if result.Recorded {
		t.Fatal("expected fallback result")
	}
	if !orderIDPattern.MatchString(result.OrderID) {
		t.Fatalf("expected synthesized order id, got %q", result.OrderID)
	}
	if !paymentIDPattern.MatchString(result.PaymentID) {
		t.Fatalf("expected synthesized payment id, got %q", result.PaymentID)
	}
}

func TestSubmitFallsBackOnMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	result := client.Submit(context.Background(), 470, "INR", testBilling(), nil)
	if result.Recorded || !orderIDPattern.MatchString(result.OrderID) {
		t.Fatalf("expected synthesized ids for malformed body, got %+v", result)
	}
}

func TestSubmitFallsBackOnUnreachableBackend(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 100*time.Millisecond)
	result := client.Submit(context.Background(), 470, "INR", testBilling(), nil)
	if result.Recorded || !orderIDPattern.MatchString(result.OrderID) {
		t.Fatalf("expected synthesized ids for network failure, got %+v", result)
	}
}

func TestSubmitFallsBackOnHang(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	client := NewClient(server.URL, 50*time.Millisecond)
	result := client.Submit(context.Background(), 470, "INR", testBilling(), nil)
	if result.Recorded || !orderIDPattern.MatchString(result.OrderID) {
		t.Fatalf("expected timeout to reach the fallback branch, got %+v", result)
	}
}
