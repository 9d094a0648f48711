package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/djsar/stagepage/internal/modules/profile/domain"
	"github.com/djsar/stagepage/internal/modules/profile/interfaces/html"
)

// ProfileFinder is the read side of the profile store.
type ProfileFinder interface {
	Get(ctx context.Context, subdomain string) (*domain.Profile, error)
}

// PageHandler serves the public HTML page for one subdomain. The approved
// flag is deliberately not consulted here; moderation happens outside this
// service and the page goes live as soon as the record exists.
type PageHandler struct {
	finder   ProfileFinder
	renderer *html.Renderer
	logger   *logrus.Logger
}

func NewPageHandler(finder ProfileFinder, renderer *html.Renderer, logger *logrus.Logger) *PageHandler {
	return &PageHandler{finder: finder, renderer: renderer, logger: logger}
}

// Serve renders the page for the given subdomain label.
func (h *PageHandler) Serve(w http.ResponseWriter, r *http.Request, subdomain string) {
	profile, err := h.finder.Get(r.Context(), subdomain)
	if errors.Is(err, domain.ErrProfileNotFound) {
		writeHTML(w, http.StatusNotFound, h.renderer.RenderNotFound(subdomain))
		return
	}
	if err != nil {
		h.logger.WithError(err).WithField("subdomain", subdomain).Error("profile lookup failed")
		writeHTML(w, http.StatusInternalServerError, h.renderer.RenderNotFound(subdomain))
		return
	}

	writeHTML(w, http.StatusOK, h.renderer.RenderProfile(profile))
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
