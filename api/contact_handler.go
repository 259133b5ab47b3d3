package api

import (
	"encoding/json"
	"net/http"

	"github.com/brightforge/site-backend/errs"
	"github.com/brightforge/site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactForm *services.ContactFormService
	newsletter  *services.NewsletterService
}

func newContactHandler(contactForm *services.ContactFormService, newsletter *services.NewsletterService) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactForm: contactForm,
		newsletter:  newsletter,
	}
}

// submitContact validates and stores one contact form submission. The body
// always carries a SubmitResult; validation failures answer 400 with a
// per-field error map and never reach the store.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form services.ContactForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		result := h.contactForm.Submit(form)
		switch {
		case result.Success:
			w.WriteHeader(http.StatusCreated)
		case len(result.FieldErrors) > 0:
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		h.responder.WriteJSON(w, result)
	}
}

// NewsletterRequest is the subscribe payload.
type NewsletterRequest struct {
	Email string `json:"email"`
}

// subscribeNewsletter stores one subscriber. A duplicate email answers 409
// with the duplicate-specific message; the first subscription answers 201.
func (h contactHandler) subscribeNewsletter() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NewsletterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		result := h.newsletter.Subscribe(req.Email)
		switch {
		case result.Success:
			w.WriteHeader(http.StatusCreated)
		case len(result.FieldErrors) > 0:
			w.WriteHeader(http.StatusBadRequest)
		case result.Message == services.DuplicateSubscriberMessage:
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		h.responder.WriteJSON(w, result)
	}
}
