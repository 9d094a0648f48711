package profile

import (
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/djsar/stagepage/internal/modules/profile/application"
	"github.com/djsar/stagepage/internal/modules/profile/infrastructure/persistence/redis"
	"github.com/djsar/stagepage/internal/modules/profile/interfaces/html"
	profile_http "github.com/djsar/stagepage/internal/modules/profile/interfaces/http"
)

// Module bundles the profile domain: signup protocol, Redis persistence and
// the public page renderer.
type Module struct {
	repo          *redis.ProfileRepository
	service       *application.SignupService
	signupHandler *profile_http.SignupHandler
	pageHandler   *profile_http.PageHandler
}

// NewModule creates and initializes the Profile module. notifier may be nil.
func NewModule(rdb *goredis.Client, media application.PortraitStore, notifier application.Announcer, rootDomain string, logger *logrus.Logger) *Module {
	repo := redis.NewProfileRepository(rdb)
	service := application.NewSignupService(repo, media, notifier, logger)
	renderer := html.NewRenderer(rootDomain)

	return &Module{
		repo:          repo,
		service:       service,
		signupHandler: profile_http.NewSignupHandler(service, logger),
		pageHandler:   profile_http.NewPageHandler(repo, renderer, logger),
	}
}

// SignupHandler returns the HTTP handler for the registration endpoint.
func (m *Module) SignupHandler() *profile_http.SignupHandler {
	return m.signupHandler
}

// PageHandler returns the HTTP handler for subdomain profile pages.
func (m *Module) PageHandler() *profile_http.PageHandler {
	return m.pageHandler
}
