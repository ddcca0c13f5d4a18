package profile

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/shared"
)

// Profile is a storefront customer account. Legacy imports carry no
// authentication credential; one is attached when the customer first signs
// in on the new platform.
type Profile struct {
	shared.BaseAggregateRoot
	Email          string
	FullName       string
	FirstName      string
	LastName       string
	Company        string
	Phone          string
	Street1        string
	Street2        string
	City           string
	State          string
	Zip            string
	Country        string
	LegacyID       string
	IsLegacyImport bool
}

// NewProfile creates a new profile keyed by its lowercased email
func NewProfile(email, fullName string) (*Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if fullName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Full name cannot be empty")
	}
	return &Profile{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		FullName:          fullName,
	}, nil
}

// ProfileRepository is the persistence port for customer profiles.
// Upsert keys on the case-insensitive email.
type ProfileRepository interface {
	ListEmails(ctx context.Context) ([]string, error)
	// EmailIndex returns a lowercased email -> profile ID map for order
	// ownership resolution.
	EmailIndex(ctx context.Context) (map[string]uuid.UUID, error)
	Upsert(ctx context.Context, profile *Profile) error
}
