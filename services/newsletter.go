package services

import (
	"strings"
	"time"

	"github.com/brightforge/site-backend/database"
	"github.com/brightforge/site-backend/errs"
	"github.com/brightforge/site-backend/models"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DuplicateSubscriberMessage is shown when the store's unique index rejects
// a repeat subscription.
const DuplicateSubscriberMessage = "this email is already subscribed to the newsletter"

type NewsletterService struct {
	validate       *validator.Validate
	newsletterRepo *database.NewsletterRepo
	logger         zerolog.Logger
}

func NewNewsletterService(newsletterRepo *database.NewsletterRepo) *NewsletterService {
	return &NewsletterService{
		validate:       validator.New(),
		newsletterRepo: newsletterRepo,
		logger:         log.With().Str("serviceName", "newsletterService").Logger(),
	}
}

// Subscribe normalizes and stores one email address. The store's unique
// index is the only duplicate guard; a violation surfaces as the
// duplicate-specific message rather than a generic failure.
func (s *NewsletterService) Subscribe(email string) SubmitResult {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := s.validate.Var(email, "required,email"); err != nil {
		return SubmitResult{
			Success:     false,
			Message:     "please correct the highlighted fields",
			FieldErrors: map[string]string{"email": "enter a valid email address"},
		}
	}

	subscriber := models.NewsletterSubscriber{
		Email:        email,
		SubscribedAt: time.Now(),
		Active:       true,
	}

	if err := s.newsletterRepo.Add(&subscriber); err != nil {
		if errs.IsAlreadyExists(err) {
			return SubmitResult{Success: false, Message: DuplicateSubscriberMessage}
		}
		s.logger.Error().Err(err).Msg("Failed to store newsletter subscriber")
		return SubmitResult{Success: false, Message: "subscription failed, please try again"}
	}

	return SubmitResult{Success: true, Message: "you're subscribed"}
}
