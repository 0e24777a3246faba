package controllers

import (
	"net/http"

	"github.com/naturesnacks/snackstore/api/middleware"
	"github.com/naturesnacks/snackstore/api/responses"
	"github.com/naturesnacks/snackstore/api/validators"
	"github.com/naturesnacks/snackstore/internal/checkout"
	"github.com/naturesnacks/snackstore/pkg/enums"
	pkgerrors "github.com/naturesnacks/snackstore/pkg/errors"
	"github.com/naturesnacks/snackstore/pkg/logger"
)

type beginCheckoutRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	TermsAccepted bool   `json:"terms_accepted"`
	Method        string `json:"method" validate:"omitempty,oneof=razorpay qr"`
}

func (r beginCheckoutRequest) toInput() checkout.BeginInput {
	return checkout.BeginInput{
		Details: checkout.CustomerDetails{
			Name:          r.Name,
			Email:         r.Email,
			Phone:         r.Phone,
			Address:       r.Address,
			City:          r.City,
			State:         r.State,
			Pincode:       r.Pincode,
			TermsAccepted: r.TermsAccepted,
		},
		Method: enums.PaymentMethod(r.Method),
	}
}

type confirmCheckoutRequest struct {
	PaymentID string `json:"payment_id" validate:"required"`
}

func requireSession(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (string, bool) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session missing"))
		return "", false
	}
	return sessionID, true
}

// CheckoutState reports whether a checkout is in flight and whether payment can open.
func CheckoutState(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"state":         svc.State(sessionID),
			"payment_ready": svc.PaymentReady(),
		})
	}
}

// CheckoutBegin validates the customer details and returns payment widget options.
func CheckoutBegin(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}

		var payload beginCheckoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Begin(r.Context(), sessionID, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// CheckoutConfirm records the order after the payment widget reports success.
func CheckoutConfirm(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}

		var payload confirmCheckoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Confirm(r.Context(), sessionID, payload.PaymentID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// CheckoutConfirmManual records a UPI/QR order the customer marked as paid.
func CheckoutConfirmManual(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		result, err := svc.ConfirmManual(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

func CheckoutDismiss(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		svc.Dismiss(r.Context(), sessionID)
		responses.WriteSuccess(w, svc.State(sessionID))
	}
}
