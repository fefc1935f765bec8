package household

import (
	"context"
	"strings"

	"golang.org/x/sync/singleflight"

	"household-app-go/internal/repo"
	"household-app-go/pkg/logger"
)

const defaultHouseholdName = "My Household"

type Service struct {
	repo   Repository
	log    logger.Logger
	ensure singleflight.Group
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) HouseholdsForUser(ctx context.Context, userID string) ([]Household, error) {
	return s.repo.HouseholdsForUser(ctx, userID)
}

func (s *Service) GetHousehold(ctx context.Context, id string) (*Household, error) {
	return s.repo.HouseholdByID(ctx, id)
}

// CreateWithOwner creates a household and its owner member as one
// logical unit. When the owner member cannot be created the household is
// deleted again so no caller ever observes an ownerless household; the
// rollback itself is best-effort and its failure is only logged, the
// member error is what the caller gets either way.
func (s *Service) CreateWithOwner(ctx context.Context, userID, name, ownerName string) (*Household, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	ownerName = strings.TrimSpace(ownerName)
	if ownerName == "" {
		ownerName = "Owner"
	}

	created, err := s.repo.CreateHousehold(ctx, &Household{Name: name, CreatedBy: userID})
	if err != nil {
		return nil, err
	}

	owner := &Member{
		HouseholdID: created.ID,
		UserID:      &userID,
		Name:        ownerName,
		Role:        RoleOwner,
		IsActive:    true,
	}
	if _, err := s.repo.CreateMember(ctx, owner); err != nil {
		if delErr := s.repo.DeleteHousehold(ctx, created.ID); delErr != nil {
			s.log.Warn("household: rollback delete failed", "household_id", created.ID, "err", delErr)
		}
		return nil, err
	}

	return created, nil
}

// EnsureDefaultHousehold creates a default household for a user that has
// none. Concurrent calls for the same user are collapsed onto one
// in-flight creation, so a racing second call resolves to the same
// household instead of creating a duplicate.
func (s *Service) EnsureDefaultHousehold(ctx context.Context, userID, ownerName string) (*Household, error) {
	result, err, _ := s.ensure.Do(userID, func() (any, error) {
		existing, err := s.repo.HouseholdsForUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			first := existing[0]
			return &first, nil
		}
		return s.CreateWithOwner(ctx, userID, defaultHouseholdName, ownerName)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Household), nil
}

func (s *Service) RenameHousehold(ctx context.Context, id, name string) (*Household, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	return s.repo.UpdateHousehold(ctx, id, repo.Changes{"name": name})
}

func (s *Service) DeleteHousehold(ctx context.Context, id string) error {
	return s.repo.DeleteHousehold(ctx, id)
}

func (s *Service) ListMembers(ctx context.Context, householdID string, activeOnly bool) ([]Member, error) {
	return s.repo.MembersByHousehold(ctx, householdID, activeOnly)
}

func (s *Service) GetMember(ctx context.Context, id string) (*Member, error) {
	return s.repo.MemberByID(ctx, id)
}

func (s *Service) AddMember(ctx context.Context, m *Member) (*Member, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return nil, ErrMemberName
	}
	if !ValidRole(m.Role) {
		return nil, ErrInvalidRole
	}
	if m.Role == RoleChild {
		m.UserID = nil
	}
	m.IsActive = true
	return s.repo.CreateMember(ctx, m)
}

func (s *Service) UpdateMember(ctx context.Context, id string, changes repo.Changes) (*Member, error) {
	if role, ok := changes["role"].(string); ok && !ValidRole(role) {
		return nil, ErrInvalidRole
	}
	return s.repo.UpdateMember(ctx, id, changes)
}

// RemoveMember deactivates the member row but keeps it around; member
// removal is a soft delete everywhere in the app.
func (s *Service) RemoveMember(ctx context.Context, id string) error {
	_, err := s.repo.UpdateMember(ctx, id, repo.Changes{"is_active": false})
	return err
}
