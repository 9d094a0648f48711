package application

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/djsar/stagepage/internal/modules/profile/domain"
)

var subdomainPattern = regexp.MustCompile(`^[a-z0-9-]{3,32}$`)

// SignupRequest carries the multipart form fields of one signup attempt.
// Only stage name, email and subdomain are mandatory; everything else may be
// empty and is stored as an empty string.
type SignupRequest struct {
	StageName  string `validate:"required"`
	Email      string `validate:"required"`
	Subdomain  string `validate:"required,subdomain"`
	Location   string
	Genre      string
	Instagram  string
	SoundCloud string
	YouTube    string
	Bandcamp   string
	Bio        string
	Embed      string
	TechRider  string
}

// normalize trims every field and lowercases email and subdomain before
// validation, so "  Nova " and "NOVA" collapse onto the same identity.
func (r *SignupRequest) normalize() {
	r.StageName = strings.TrimSpace(r.StageName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Subdomain = strings.ToLower(strings.TrimSpace(r.Subdomain))
	r.Location = strings.TrimSpace(r.Location)
	r.Genre = strings.TrimSpace(r.Genre)
	r.Instagram = strings.TrimSpace(r.Instagram)
	r.SoundCloud = strings.TrimSpace(r.SoundCloud)
	r.YouTube = strings.TrimSpace(r.YouTube)
	r.Bandcamp = strings.TrimSpace(r.Bandcamp)
	r.Bio = strings.TrimSpace(r.Bio)
	r.Embed = strings.TrimSpace(r.Embed)
	r.TechRider = strings.TrimSpace(r.TechRider)
}

// Portrait is an optional image accompanying the signup.
type Portrait struct {
	File        io.Reader
	ContentType string
}

// PortraitStore uploads a profile image and returns its public URL.
type PortraitStore interface {
	Store(ctx context.Context, subdomain string, file io.Reader, contentType string) (string, error)
}

// Announcer delivers a best-effort signup notification. Implementations must
// never block the signup response; the service invokes it on its own
// goroutine and discards the outcome.
type Announcer interface {
	Announce(profile *domain.Profile)
}

// SignupService runs the signup protocol: validate, uniqueness check,
// optional media upload, conditional persist, async announce.
type SignupService struct {
	repo     domain.ProfileRepository
	media    PortraitStore
	notifier Announcer
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewSignupService wires the signup protocol. notifier may be nil when no
// webhook destination is configured.
func NewSignupService(repo domain.ProfileRepository, media PortraitStore, notifier Announcer, logger *logrus.Logger) *SignupService {
	v := validator.New()
	// Never fails: the tag name is a valid literal and the fn is non-nil.
	_ = v.RegisterValidation("subdomain", func(fl validator.FieldLevel) bool {
		return subdomainPattern.MatchString(fl.Field().String())
	})

	return &SignupService{
		repo:     repo,
		media:    media,
		notifier: notifier,
		validate: v,
		logger:   logger,
	}
}

// Validate normalizes req in place and checks the field contracts. It is
// pure apart from the in-place normalization: no store or network access.
func (s *SignupService) Validate(req *SignupRequest) error {
	req.normalize()

	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &domain.ValidationError{Message: "Faltan campos obligatorios."}
	}
	// Missing required fields outrank a malformed subdomain.
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return &domain.ValidationError{Message: "Faltan campos obligatorios."}
		}
	}
	return &domain.ValidationError{Message: "El subdominio solo puede contener minúsculas, números y guiones."}
}

// Signup executes the full protocol and returns the persisted profile.
// Errors short-circuit in order: validation, conflict, media, store. No
// partial profile is ever written; a media upload orphaned by a later store
// failure is accepted garbage (nothing will ever reference it).
func (s *SignupService) Signup(ctx context.Context, req SignupRequest, portrait *Portrait) (*domain.Profile, error) {
	if err := s.Validate(&req); err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, req.Subdomain)
	if err != nil {
		return nil, fmt.Errorf("existence check failed: %w", err)
	}
	if exists {
		return nil, domain.ErrSubdomainTaken
	}

	var imageURL *string
	if portrait != nil {
		url, err := s.media.Store(ctx, req.Subdomain, portrait.File, portrait.ContentType)
		if err != nil {
			return nil, fmt.Errorf("portrait upload failed: %w", err)
		}
		imageURL = &url
	}

	profile := domain.NewProfile(req.Subdomain)
	profile.StageName = req.StageName
	profile.Email = req.Email
	profile.Location = req.Location
	profile.Genre = req.Genre
	profile.Instagram = req.Instagram
	profile.SoundCloud = req.SoundCloud
	profile.YouTube = req.YouTube
	profile.Bandcamp = req.Bandcamp
	profile.Bio = req.Bio
	profile.Embed = req.Embed
	profile.TechRider = req.TechRider
	profile.ImageURL = imageURL

	if err := s.repo.Put(ctx, profile); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		go s.notifier.Announce(profile)
	}

	s.logger.WithFields(logrus.Fields{
		"subdomain": profile.Subdomain,
		"stageName": profile.StageName,
	}).Info("profile registered")

	return profile, nil
}
