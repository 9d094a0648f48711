package domain

import (
	"context"
	"time"
)

// Profile is the persisted record describing one performer. It is created
// once at signup and read on every page render; no update or delete path
// exists. The subdomain doubles as primary key and public identity
// (<subdomain>.<root-domain>).
type Profile struct {
	Subdomain  string  `json:"subdomain"`
	StageName  string  `json:"stageName"`
	Email      string  `json:"email"`
	Location   string  `json:"location"`
	Genre      string  `json:"genre"`
	Instagram  string  `json:"instagram"`
	SoundCloud string  `json:"soundcloud"`
	YouTube    string  `json:"youtube"`
	Bandcamp   string  `json:"bandcamp"`
	Bio        string  `json:"bio"`
	Embed      string  `json:"embed"`
	TechRider  string  `json:"techRider"`
	ImageURL   *string `json:"imageUrl"`
	CreatedAt  string  `json:"createdAt"`
	Approved   bool    `json:"approved"`
}

// NewProfile stamps creation time and the moderation default on a record
// that already passed validation.
func NewProfile(subdomain string) *Profile {
	return &Profile{
		Subdomain: subdomain,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Approved:  false,
	}
}

// ProfileRepository is the key-value capability the edge persists profiles
// through. Put must be conditional: it fails with ErrSubdomainTaken instead
// of overwriting an existing record.
type ProfileRepository interface {
	Exists(ctx context.Context, subdomain string) (bool, error)
	Get(ctx context.Context, subdomain string) (*Profile, error)
	Put(ctx context.Context, profile *Profile) error
}
