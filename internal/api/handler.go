// Package api provides the HTTP handlers for the blakeyoder.com backend:
// the contact form submission pipeline and the LinkedIn profile preview.
package api

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/blakeyoder/blakeyoderdotcom/internal/contact"
	"github.com/blakeyoder/blakeyoderdotcom/internal/mail"
	"github.com/blakeyoder/blakeyoderdotcom/internal/preview"
	"github.com/blakeyoder/blakeyoderdotcom/internal/ratelimit"
)

// Mailer dispatches contact form notifications
type Mailer interface {
	SendContactEmail(ctx context.Context, sub mail.Submission) error
}

// ProfileFetcher retrieves LinkedIn profile previews
type ProfileFetcher interface {
	Fetch(ctx context.Context, profileURL string) (preview.Profile, error)
}

// Handler manages API endpoints
type Handler struct {
	mailer   Mailer
	limiter  *ratelimit.Limiter
	detector *contact.Detector
	previews ProfileFetcher
}

// ContactRequest is the contact form submission body
type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	Message  string `json:"message"`
	Honeypot string `json:"honeypot,omitempty"`
}

// ContactResponse is the contact endpoint response
type ContactResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// HealthResponse is the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// handleHealth returns service health status
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   "blakeyoderdotcom",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// handleContact runs the submission pipeline: honeypot, rate limit, field
// validation, spam heuristics, then dispatch. The stages are ordered and
// short-circuiting; each runs only if the previous passed.
func (h *Handler) handleContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ContactResponse{Message: ErrInvalidRequestBody.Error()})
		return
	}

	// a filled honeypot means bot traffic: answer as if the send succeeded
	// without doing any real work
	if req.Honeypot != "" {
		log.Info().Msg("honeypot triggered, bot submission blocked")
		writeJSON(w, http.StatusOK, ContactResponse{Success: true, Message: "Message sent successfully"})

		return
	}

	clientIP := ratelimit.ClientIP(r.Header)

	if res := h.limiter.Check(clientIP); !res.Allowed {
		waitMinutes := int(math.Ceil(time.Until(res.ResetTime).Minutes()))
		unit := lo.Ternary(waitMinutes == 1, "minute", "minutes")

		writeJSON(w, http.StatusTooManyRequests, ContactResponse{
			Message: fmt.Sprintf("Too many requests. Please wait %d %s before trying again.", waitMinutes, unit),
		})

		return
	}

	form := contact.Form{
		Name:     req.Name,
		Email:    req.Email,
		LinkedIn: req.LinkedIn,
		Message:  req.Message,
	}

	if validation := contact.ValidateForm(form); !validation.Valid {
		writeJSON(w, http.StatusBadRequest, ContactResponse{
			Message: "Please fix the errors below",
			Errors:  validation.Errors,
		})

		return
	}

	if spam := h.detector.Check(req.Message); spam.Spam {
		log.Info().Str("reason", spam.Reason).Str("ip", clientIP).Msg("spam detected")

		// the specific trigger is withheld from the client
		writeJSON(w, http.StatusBadRequest, ContactResponse{
			Message: "Your message was flagged as potential spam. Please remove any excessive links or promotional content and try again.",
		})

		return
	}

	sub := mail.Submission{
		Name:     req.Name,
		Email:    req.Email,
		LinkedIn: req.LinkedIn,
		Message:  req.Message,
	}

	if err := h.mailer.SendContactEmail(r.Context(), sub); err != nil {
		log.Error().Err(err).Msg("failed to send contact email")

		writeJSON(w, http.StatusInternalServerError, ContactResponse{
			Message: "Failed to send message. Please try again later.",
		})

		return
	}

	writeJSON(w, http.StatusOK, ContactResponse{Success: true, Message: "Message sent successfully"})
}

// handlePreview fetches social metadata for a LinkedIn profile URL given in
// the url query parameter
func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	profileURL := r.URL.Query().Get("url")

	if profileURL == "" {
		writeJSON(w, http.StatusBadRequest, Error{Message: "URL parameter is required"})
		return
	}

	if !preview.ValidURL(profileURL) {
		writeJSON(w, http.StatusBadRequest, Error{Message: "Invalid LinkedIn URL"})
		return
	}

	profile, err := h.previews.Fetch(r.Context(), profileURL)
	if err != nil {
		log.Error().Err(err).Str("url", profileURL).Msg("profile preview fetch failed")

		writeJSON(w, http.StatusInternalServerError, Error{Message: "Failed to fetch profile preview"})

		return
	}

	writeJSON(w, http.StatusOK, profile)
}
