package application_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/djsar/stagepage/internal/modules/profile/domain"
)

type mockProfileRepo struct{ mock.Mock }

func (m *mockProfileRepo) Exists(ctx context.Context, subdomain string) (bool, error) {
	args := m.Called(ctx, subdomain)
	return args.Bool(0), args.Error(1)
}

func (m *mockProfileRepo) Get(ctx context.Context, subdomain string) (*domain.Profile, error) {
	args := m.Called(ctx, subdomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockProfileRepo) Put(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

type mockPortraitStore struct{ mock.Mock }

func (m *mockPortraitStore) Store(ctx context.Context, subdomain string, file io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, subdomain, file, contentType)
	return args.String(0), args.Error(1)
}

type mockAnnouncer struct {
	mock.Mock
	done chan struct{}
}

func (m *mockAnnouncer) Announce(profile *domain.Profile) {
	m.Called(profile)
	if m.done != nil {
		close(m.done)
	}
}
