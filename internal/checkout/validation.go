package checkout

import (
	"regexp"
	"strings"

	pkgerrors "github.com/naturesnacks/snackstore/pkg/errors"
)

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern  = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
	nonDigits      = regexp.MustCompile(`\D`)
)

// CustomerDetails is the checkout form. It is discarded once an order is recorded.
type CustomerDetails struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	TermsAccepted bool   `json:"terms_accepted"`
}

// FullAddress joins the address parts the way they are printed on the order.
func (c CustomerDetails) FullAddress() string {
	return strings.TrimSpace(c.Address) + ", " + strings.TrimSpace(c.City) + ", " +
		strings.TrimSpace(c.State) + " " + strings.TrimSpace(c.Pincode)
}

// ValidationDetail names the field that failed.
type ValidationDetail struct {
	Field string `json:"field"`
}

type requiredField struct {
	key   string
	label string
	value func(CustomerDetails) string
}

var requiredFields = []requiredField{
	{key: "name", label: "Name", value: func(c CustomerDetails) string { return c.Name }},
	{key: "email", label: "Email", value: func(c CustomerDetails) string { return c.Email }},
	{key: "phone", label: "Phone", value: func(c CustomerDetails) string { return c.Phone }},
	{key: "address", label: "Address", value: func(c CustomerDetails) string { return c.Address }},
	{key: "city", label: "City", value: func(c CustomerDetails) string { return c.City }},
	{key: "state", label: "State", value: func(c CustomerDetails) string { return c.State }},
	{key: "pincode", label: "Pincode", value: func(c CustomerDetails) string { return c.Pincode }},
}

// NormalizePhone strips non-digits and keeps the last ten characters.
func NormalizePhone(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	return digits
}

// Validate returns the first failing rule as a VALIDATION_ERROR, or nil.
func Validate(c CustomerDetails) error {
	if !c.TermsAccepted {
		return invalid("terms_accepted", "Please accept the terms and conditions")
	}
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(c)) == "" {
			return invalid(f.key, "Please fill in "+f.label)
		}
	}
	if !emailPattern.MatchString(strings.TrimSpace(c.Email)) {
		return invalid("email", "Please enter a valid email address")
	}
	if !mobilePattern.MatchString(NormalizePhone(c.Phone)) {
		return invalid("phone", "Please enter a valid 10-digit Indian mobile number")
	}
	if !pincodePattern.MatchString(strings.TrimSpace(c.Pincode)) {
		return invalid("pincode", "Please enter a valid 6-digit PIN code")
	}
	return nil
}

func invalid(field, message string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, message).WithDetails(ValidationDetail{Field: field})
}
