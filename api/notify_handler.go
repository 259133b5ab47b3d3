package api

import (
	"encoding/json"
	"net/http"

	"github.com/brightforge/site-backend/models"
	"github.com/brightforge/site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type notifyHandler struct {
	responder   Responder
	logger      zerolog.Logger
	mailer      *services.Mailer
	notifyEmail string
}

func newNotifyHandler(mailer *services.Mailer, notifyEmail string) notifyHandler {
	logger := log.With().Str("handlerName", "notifyHandler").Logger()

	return notifyHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		mailer:      mailer,
		notifyEmail: notifyEmail,
	}
}

// ContactNotificationEnvelope is the JSON envelope the store's row-insert
// trigger posts to the hook: the inserted contact row under "record".
type ContactNotificationEnvelope struct {
	Type   string                   `json:"type,omitempty"`
	Table  string                   `json:"table,omitempty"`
	Record models.ContactSubmission `json:"record"`
}

// contactNotification receives the insert-trigger envelope and sends one
// email through the transactional provider. Responses follow the trigger
// contract: 200 with a confirmation, 400 on missing name/email, 500 with
// the provider's error on send failure, 204 for preflight.
func (h notifyHandler) contactNotification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var envelope ContactNotificationEnvelope
		if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode notification envelope")
			w.WriteHeader(http.StatusBadRequest)
			h.responder.WriteJSON(w, map[string]string{"error": "malformed envelope"})
			return
		}

		record := envelope.Record
		if record.Name == "" || record.Email == "" {
			w.WriteHeader(http.StatusBadRequest)
			h.responder.WriteJSON(w, map[string]string{"error": "name and email are required"})
			return
		}

		if h.mailer == nil || h.notifyEmail == "" {
			h.logger.Error().Msg("Notification email is not configured")
			w.WriteHeader(http.StatusInternalServerError)
			h.responder.WriteJSON(w, map[string]string{"error": "notification email not configured"})
			return
		}

		subject := "New contact enquiry from " + record.Name
		body := services.ContactNotificationHTML(record)

		if err := h.mailer.SendEmail(subject, body, []string{h.notifyEmail}); err != nil {
			h.logger.Error().Err(err).Msg("Failed to send contact notification")
			w.WriteHeader(http.StatusInternalServerError)
			h.responder.WriteJSON(w, map[string]string{"error": err.Error()})
			return
		}

		h.responder.WriteJSON(w, map[string]string{"message": "notification sent"})
	}
}
