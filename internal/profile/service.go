package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minhtridev/edustore-backend/pkg/db/models"
	pkgerrors "github.com/minhtridev/edustore-backend/pkg/errors"
)

type repository interface {
	FindByID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	UpdateFields(ctx context.Context, userID uuid.UUID, updates map[string]any) error
}

// Service exposes the account page reads and writes.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*DTO, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*DTO, error)
}

// DTO is the transport shape for a profile.
type DTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateInput carries the editable profile fields. Email is immutable; it
// identifies the account.
type UpdateInput struct {
	FullName *string `json:"full_name" validate:"omitempty,max=120"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Address  *string `json:"address" validate:"omitempty,max=255"`
}

type service struct {
	repo repository
}

// NewService builds the profile service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "profile repository required")
	}
	return &service{repo: repo}, nil
}

func fromModel(row *models.Profile) *DTO {
	return &DTO{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  row.FullName,
		Phone:     row.Phone,
		Address:   row.Address,
		AvatarURL: row.AvatarURL,
		UpdatedAt: row.UpdatedAt,
	}
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*DTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user is required")
	}

	row, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profile")
	}
	return fromModel(row), nil
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*DTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user is required")
	}

	updates := map[string]any{}
	if input.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*input.FullName)
	}
	if input.Phone != nil {
		updates["phone"] = strings.TrimSpace(*input.Phone)
	}
	if input.Address != nil {
		updates["address"] = strings.TrimSpace(*input.Address)
	}

	if len(updates) > 0 {
		err := s.repo.UpdateFields(ctx, userID, updates)
		if errors.Is(err, ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
		}
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update profile")
		}
	}
	return s.Get(ctx, userID)
}
