package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/djsar/stagepage/internal/modules/profile/application"
	"github.com/djsar/stagepage/internal/modules/profile/domain"
)

// Signups caps the decoded multipart body. Profile images are small; anything
// bigger than this is a client mistake.
const maxSignupBytes = 10 << 20

// SignupService defines the signup operations the handler needs.
type SignupService interface {
	Signup(ctx context.Context, req application.SignupRequest, portrait *application.Portrait) (*domain.Profile, error)
}

// SignupHandler accepts the multipart registration form and answers JSON.
type SignupHandler struct {
	service SignupService
	logger  *logrus.Logger
}

func NewSignupHandler(service SignupService, logger *logrus.Logger) *SignupHandler {
	return &SignupHandler{service: service, logger: logger}
}

// Register handles POST on the signup endpoint.
func (h *SignupHandler) Register(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSignupBytes)

	if err := r.ParseMultipartForm(maxSignupBytes); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": "No pudimos leer el formulario."})
		return
	}

	req := application.SignupRequest{
		StageName:  r.FormValue("stage_name"),
		Email:      r.FormValue("email"),
		Subdomain:  r.FormValue("subdomain"),
		Location:   r.FormValue("location"),
		Genre:      r.FormValue("genre"),
		Instagram:  r.FormValue("instagram"),
		SoundCloud: r.FormValue("soundcloud"),
		YouTube:    r.FormValue("youtube"),
		Bandcamp:   r.FormValue("bandcamp"),
		Bio:        r.FormValue("bio"),
		Embed:      r.FormValue("embed"),
		TechRider:  r.FormValue("tech_rider"),
	}

	var portrait *application.Portrait
	if file, header, err := r.FormFile("profile_image"); err == nil {
		defer file.Close()
		portrait = &application.Portrait{
			File:        file,
			ContentType: header.Header.Get("Content-Type"),
		}
	}

	profile, err := h.service.Signup(r.Context(), req, portrait)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": verr.Message})
		case errors.Is(err, domain.ErrSubdomainTaken):
			writeJSON(w, http.StatusConflict, map[string]any{"error": "Ese subdominio ya está registrado."})
		default:
			h.logger.WithError(err).Error("signup failed")
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "No pudimos completar el registro. Intentalo de nuevo."})
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "profile": profile})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
