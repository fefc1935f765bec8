package household

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"household-app-go/internal/apperr"
	householddomain "household-app-go/internal/domain/household"
	"household-app-go/internal/repo"
	"household-app-go/internal/repo/gormstore"
)

type PostgresRepository struct {
	db         *gorm.DB
	households *gormstore.Repository[householddomain.Household, *householddomain.Household]
	members    *gormstore.Repository[householddomain.Member, *householddomain.Member]
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{
		db:         db,
		households: gormstore.New[householddomain.Household, *householddomain.Household](db),
		members:    gormstore.New[householddomain.Member, *householddomain.Member](db),
	}
}

func (r *PostgresRepository) HouseholdsForUser(ctx context.Context, userID string) ([]householddomain.Household, error) {
	var households []householddomain.Household
	err := r.db.WithContext(ctx).
		Table("households").
		Select("DISTINCT households.*").
		Joins("left join members on members.household_id = households.id AND members.user_id = ? AND members.is_active = true", userID).
		Where("households.created_by = ? OR members.id IS NOT NULL", userID).
		Order("households.created_at asc").
		Find(&households).Error
	if err != nil {
		return nil, apperr.Normalize(err)
	}
	return households, nil
}

func (r *PostgresRepository) HouseholdByID(ctx context.Context, id string) (*householddomain.Household, error) {
	h, err := r.households.FindByID(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, householddomain.ErrHouseholdNotFound
	}
	return h, err
}

func (r *PostgresRepository) CreateHousehold(ctx context.Context, h *householddomain.Household) (*householddomain.Household, error) {
	return r.households.Create(ctx, h)
}

func (r *PostgresRepository) UpdateHousehold(ctx context.Context, id string, changes repo.Changes) (*householddomain.Household, error) {
	h, err := r.households.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, householddomain.ErrHouseholdNotFound
	}
	return h, err
}

func (r *PostgresRepository) DeleteHousehold(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("household_id = ?", id).Delete(&householddomain.Member{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&householddomain.Household{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return householddomain.ErrHouseholdNotFound
		}
		return nil
	})
	if err != nil {
		return apperr.Normalize(err)
	}
	return nil
}

func (r *PostgresRepository) MembersByHousehold(ctx context.Context, householdID string, activeOnly bool) ([]householddomain.Member, error) {
	query := r.db.WithContext(ctx).Where("household_id = ?", householdID)
	if activeOnly {
		query = query.Where("is_active = true")
	}

	var members []householddomain.Member
	if err := query.Order("created_at asc").Find(&members).Error; err != nil {
		return nil, apperr.Normalize(err)
	}
	return members, nil
}

func (r *PostgresRepository) MemberByID(ctx context.Context, id string) (*householddomain.Member, error) {
	m, err := r.members.FindByID(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, householddomain.ErrMemberNotFound
	}
	return m, err
}

func (r *PostgresRepository) MemberForUser(ctx context.Context, householdID, userID string) (*householddomain.Member, error) {
	var member householddomain.Member
	err := r.db.WithContext(ctx).
		Where("household_id = ? AND user_id = ? AND is_active = true", householdID, userID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, householddomain.ErrMemberNotFound
	}
	if err != nil {
		return nil, apperr.Normalize(err)
	}
	return &member, nil
}

func (r *PostgresRepository) CreateMember(ctx context.Context, m *householddomain.Member) (*householddomain.Member, error) {
	return r.members.Create(ctx, m)
}

func (r *PostgresRepository) UpdateMember(ctx context.Context, id string, changes repo.Changes) (*householddomain.Member, error) {
	m, err := r.members.Update(ctx, id, changes)
	if apperr.IsNotFound(err) {
		return nil, householddomain.ErrMemberNotFound
	}
	return m, err
}

func (r *PostgresRepository) DeleteMember(ctx context.Context, id string) error {
	err := r.members.Delete(ctx, id)
	if apperr.IsNotFound(err) {
		return householddomain.ErrMemberNotFound
	}
	return err
}
