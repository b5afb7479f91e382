package checkout

import (
	"testing"

	"github.com/vchhajed/chhajedfoodproducts-sub000/internal/models"
)

func validBilling() models.BillingDetails {
	return models.BillingDetails{
		FullName:     "Asha Verma",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		AddressLine1: "12 MG Road",
		City:         "Pune",
		State:        "Maharashtra",
		Pincode:      "411001",
	}
}

func TestValidateBillingAcceptsCompleteDetails(t *testing.T) {
	errs := ValidateBilling(validBilling())
	if !errs.IsValid() {
		t.Fatalf("expected no errors, got %+v", errs.AsMap())
	}
}

func TestValidateBillingPhoneRules(t *testing.T) {
	tests := []struct {
		phone   string
		wantErr bool
	}{
		{"9876543210", false},
		{"98765 43210", false},
		{"98765432", true},
		{"1876543210", true},
		{"98765432101", true},
		{"", true},
	}
	for _, tt := range tests {
		details := validBilling()
		details.Phone = tt.phone
		errs := ValidateBilling(details)
		if got := errs.Phone != ""; got != tt.wantErr {
			t.Fatalf("phone %q: expected error=%v, got %q", tt.phone, tt.wantErr, errs.Phone)
		}
	}
}

func TestValidateBillingEmailShape(t *testing.T) {
	details := validBilling()
	details.Email = "not-an-email"
	if errs := ValidateBilling(details); errs.Email == "" {
		t.Fatal("expected email error for malformed address")
	}

	details.Email = "   "
	if errs := ValidateBilling(details); errs.Email == "" {
		t.Fatal("expected email error for blank value")
	}
}

func TestValidateBillingPincode(t *testing.T) {
	for _, pincode := range []string{"4110", "41100a", "4110011", ""} {
		details := validBilling()
		details.Pincode = pincode
		if errs := ValidateBilling(details); errs.Pincode == "" {
			t.Fatalf("expected pincode error for %q", pincode)
		}
	}
}

func TestValidateBillingRequiredFields(t *testing.T) {
	details := validBilling()
	details.FullName = "  "
	details.AddressLine1 = ""
	details.City = ""
	details.State = ""

	errs := ValidateBilling(details)
	asMap := errs.AsMap()
	for _, field := range []string{"fullName", "addressLine1", "city", "state"} {
		if asMap[field] == "" {
			t.Fatalf("expected error for %s, got %+v", field, asMap)
		}
	}
}

func TestValidateDeliverySkipsEmail(t *testing.T) {
	errs := ValidateDelivery(models.DeliveryAddress{
		FullName:     "Asha Verma",
		Phone:        "9876543210",
		AddressLine1: "12 MG Road",
		City:         "Pune",
		State:        "Maharashtra",
		Pincode:      "411001",
	})
	if !errs.IsValid() {
		t.Fatalf("expected no errors, got %+v", errs.AsMap())
	}
}
