package services

import (
	"strings"

	"github.com/brightforge/site-backend/database"
	"github.com/brightforge/site-backend/models"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ServiceOfferings is the fixed list the contact form's service selector
// offers. Anything outside it fails validation.
var ServiceOfferings = []string{
	"Web Development",
	"Mobile App Development",
	"UI/UX Design",
	"Graphic Design",
	"Digital Marketing",
	"Cloud & DevOps",
}

// ContactForm carries the client-submitted contact fields before validation.
type ContactForm struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Service string `json:"service" validate:"required,service_offering"`
	Message string `json:"message" validate:"-"`
}

// SubmitResult is the only outcome shape the form flow produces. Every
// failure path resolves here; nothing escapes to the caller as an error.
type SubmitResult struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

type ContactFormService struct {
	validate    *validator.Validate
	contactRepo *database.ContactRepo
	logger      zerolog.Logger
}

func NewContactFormService(contactRepo *database.ContactRepo) *ContactFormService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// oneof chokes on values containing spaces, so membership gets its own tag.
	_ = validate.RegisterValidation("service_offering", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, offering := range ServiceOfferings {
			if value == offering {
				return true
			}
		}
		return false
	})

	return &ContactFormService{
		validate:    validate,
		contactRepo: contactRepo,
		logger:      log.With().Str("serviceName", "contactFormService").Logger(),
	}
}

// Validate trims the form and returns a per-field error map. An empty map
// means the form may be submitted.
func (s *ContactFormService) Validate(form *ContactForm) map[string]string {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Service = strings.TrimSpace(form.Service)
	form.Message = strings.TrimSpace(form.Message)

	fieldErrors := make(map[string]string)

	err := s.validate.Struct(form)
	if err == nil {
		return fieldErrors
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["form"] = "invalid form submission"
		return fieldErrors
	}

	for _, fieldErr := range validationErrors {
		switch fieldErr.Field() {
		case "Name":
			if fieldErr.Tag() == "min" {
				fieldErrors["name"] = "name must be at least 2 characters"
			} else {
				fieldErrors["name"] = "name is required"
			}
		case "Email":
			if fieldErr.Tag() == "email" {
				fieldErrors["email"] = "enter a valid email address"
			} else {
				fieldErrors["email"] = "email is required"
			}
		case "Service":
			fieldErrors["service"] = "select one of the offered services"
		}
	}
	return fieldErrors
}

// Submit validates the form and, when it passes, inserts exactly one
// contact_submissions row. Validation failures block the insert entirely.
func (s *ContactFormService) Submit(form ContactForm) SubmitResult {
	if fieldErrors := s.Validate(&form); len(fieldErrors) > 0 {
		return SubmitResult{
			Success:     false,
			Message:     "please correct the highlighted fields",
			FieldErrors: fieldErrors,
		}
	}

	submission := models.ContactSubmission{
		Name:    form.Name,
		Email:   form.Email,
		Service: form.Service,
	}
	if form.Message != "" {
		submission.Message = &form.Message
	}

	if err := s.contactRepo.Add(&submission); err != nil {
		s.logger.Error().Err(err).Msg("Failed to store contact submission")
		return SubmitResult{
			Success: false,
			Message: "something went wrong sending your message, please try again",
		}
	}

	return SubmitResult{
		Success: true,
		Message: "thanks for reaching out, we'll get back to you shortly",
	}
}
