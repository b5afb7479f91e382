package checkout

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vchhajed/chhajedfoodproducts-sub000/internal/models"
)

var (
	fieldValidate = validator.New()
	phonePattern  = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	pinPattern    = regexp.MustCompile(`^[0-9]{6}$`)
)

// FieldErrors holds one message per invalid field. A zero value means the
// field set passed validation. Fields stay empty rather than being shaped
// dynamically so callers can surface them per input.
type FieldErrors struct {
	FullName     string `json:"fullName,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	AddressLine1 string `json:"addressLine1,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Pincode      string `json:"pincode,omitempty"`
}

// IsValid reports whether no field carries an error message.
func (e FieldErrors) IsValid() bool {
	return e == FieldErrors{}
}

// AsMap returns only the populated messages keyed by field name.
func (e FieldErrors) AsMap() map[string]string {
	out := map[string]string{}
	put := func(field, message string) {
		if message != "" {
			out[field] = message
		}
	}
	put("fullName", e.FullName)
	put("email", e.Email)
	put("phone", e.Phone)
	put("addressLine1", e.AddressLine1)
	put("city", e.City)
	put("state", e.State)
	put("pincode", e.Pincode)
	return out
}

// ValidateBilling checks the billing field set, email included. Pure: no side
// effects, the caller decides when to surface the messages.
func ValidateBilling(details models.BillingDetails) FieldErrors {
	errs := validateCommon(details.FullName, details.Phone, details.AddressLine1, details.City, details.State, details.Pincode)
	if strings.TrimSpace(details.Email) == "" {
		errs.Email = "Email is required"
	} else if fieldValidate.Var(strings.TrimSpace(details.Email), "email") != nil {
		errs.Email = "Enter a valid email address"
	}
	return errs
}

// ValidateDelivery checks the delivery field set used by the WhatsApp path.
func ValidateDelivery(address models.DeliveryAddress) FieldErrors {
	return validateCommon(address.FullName, address.Phone, address.AddressLine1, address.City, address.State, address.Pincode)
}

func validateCommon(fullName, phone, addressLine1, city, state, pincode string) FieldErrors {
	var errs FieldErrors
	if strings.TrimSpace(fullName) == "" {
		errs.FullName = "Full name is required"
	}
	if strings.TrimSpace(phone) == "" {
		errs.Phone = "Phone number is required"
	} else if !phonePattern.MatchString(stripSpaces(phone)) {
		errs.Phone = "Enter a valid 10-digit mobile number"
	}
	if strings.TrimSpace(addressLine1) == "" {
		errs.AddressLine1 = "Address is required"
	}
	if strings.TrimSpace(city) == "" {
		errs.City = "City is required"
	}
	if strings.TrimSpace(state) == "" {
		errs.State = "State is required"
	}
	if !pinPattern.MatchString(strings.TrimSpace(pincode)) {
		errs.Pincode = "Enter a valid 6-digit pincode"
	}
	return errs
}

func stripSpaces(value string) string {
	return strings.Join(strings.Fields(value), "")
}
