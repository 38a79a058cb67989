package profile

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/minhtridev/edustore-backend/pkg/db/models"
	pkgerrors "github.com/minhtridev/edustore-backend/pkg/errors"
)

type stubRepo struct {
	rows map[uuid.UUID]*models.Profile
}

func newStubRepo() *stubRepo {
	return &stubRepo{rows: map[uuid.UUID]*models.Profile{}}
}

func (s *stubRepo) FindByID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	row, ok := s.rows[userID]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *row
	return &clone, nil
}

func (s *stubRepo) UpdateFields(ctx context.Context, userID uuid.UUID, updates map[string]any) error {
	row, ok := s.rows[userID]
	if !ok {
		return ErrNotFound
	}
	if v, ok := updates["full_name"]; ok {
		row.FullName = v.(string)
	}
	if v, ok := updates["phone"]; ok {
		row.Phone = v.(string)
	}
	if v, ok := updates["address"]; ok {
		row.Address = v.(string)
	}
	return nil
}

func ptr(s string) *string { return &s }

func newTestService(t *testing.T) (Service, *stubRepo) {
	t.Helper()
	repo := newStubRepo()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, repo
}

func TestGetReturnsProfile(t *testing.T) {
	svc, repo := newTestService(t)
	userID := uuid.New()
	repo.rows[userID] = &models.Profile{ID: userID, Email: "an@example.com", FullName: "Nguyễn Văn An"}

	dto, err := svc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if dto.Email != "an@example.com" || dto.FullName != "Nguyễn Văn An" {
		t.Fatalf("unexpected profile: %+v", dto)
	}
}

func TestGetUnknownProfile(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	svc, repo := newTestService(t)
	userID := uuid.New()
	repo.rows[userID] = &models.Profile{
		ID:       userID,
		Email:    "an@example.com",
		FullName: "Nguyễn Văn An",
		Phone:    "0901111111",
		Address:  "Hà Nội",
	}

	dto, err := svc.Update(context.Background(), userID, UpdateInput{
		Phone: ptr(" 0902222222 "),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.Phone != "0902222222" {
		t.Fatalf("expected trimmed phone, got %q", dto.Phone)
	}
	if dto.FullName != "Nguyễn Văn An" || dto.Address != "Hà Nội" {
		t.Fatalf("untouched fields changed: %+v", dto)
	}
	if dto.Email != "an@example.com" {
		t.Fatalf("email must stay immutable, got %q", dto.Email)
	}
}

func TestUpdateWithNoFieldsIsARead(t *testing.T) {
	svc, repo := newTestService(t)
	userID := uuid.New()
	repo.rows[userID] = &models.Profile{ID: userID, Email: "an@example.com"}

	dto, err := svc.Update(context.Background(), userID, UpdateInput{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.ID != userID {
		t.Fatalf("unexpected profile: %+v", dto)
	}
}

func TestUpdateRequiresUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), uuid.Nil, UpdateInput{Phone: ptr("0900000000")})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}
}
