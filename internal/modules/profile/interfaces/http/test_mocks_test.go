package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/djsar/stagepage/internal/modules/profile/application"
	"github.com/djsar/stagepage/internal/modules/profile/domain"
)

type mockSignupService struct{ mock.Mock }

func (m *mockSignupService) Signup(ctx context.Context, req application.SignupRequest, portrait *application.Portrait) (*domain.Profile, error) {
	args := m.Called(ctx, req, portrait)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type mockProfileFinder struct{ mock.Mock }

func (m *mockProfileFinder) Get(ctx context.Context, subdomain string) (*domain.Profile, error) {
	args := m.Called(ctx, subdomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
