package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/profile"
	"github.com/nickborrello/BayStateApp-sub000/internal/infrastructure/persistence/models"
)

// GormProfileRepository implements profile.ProfileRepository using GORM
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GormProfileRepository
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

var _ profile.ProfileRepository = (*GormProfileRepository)(nil)

// ListEmails returns every profile email
func (r *GormProfileRepository) ListEmails(ctx context.Context) ([]string, error) {
	var emails []string
	if err := r.db.WithContext(ctx).
		Model(&models.ProfileModel{}).
		Pluck("email", &emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}

// EmailIndex returns a lowercased email -> profile ID map
func (r *GormProfileRepository) EmailIndex(ctx context.Context) (map[string]uuid.UUID, error) {
	var rows []struct {
		Email string
		ID    uuid.UUID
	}
	if err := r.db.WithContext(ctx).
		Model(&models.ProfileModel{}).
		Select("email", "id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	index := make(map[string]uuid.UUID, len(rows))
	for _, row := range rows {
		index[row.Email] = row.ID
	}
	return index, nil
}

// Upsert inserts the profile or, when its email already exists, updates the
// existing row in place
func (r *GormProfileRepository) Upsert(ctx context.Context, p *profile.Profile) error {
	model := models.ProfileModelFromDomain(p)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_name", "first_name", "last_name", "company", "phone",
				"street1", "street2", "city", "state", "zip", "country",
				"legacy_id", "is_legacy_import", "updated_at", "version",
			}),
		}).
		Create(model).Error
}
