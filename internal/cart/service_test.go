package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/minhtridev/edustore-backend/pkg/db/models"
	pkgerrors "github.com/minhtridev/edustore-backend/pkg/errors"
)

type stubRepo struct {
	rows    []models.CartItem
	failAll bool
}

func (s *stubRepo) find(userID uuid.UUID, productID string) *models.CartItem {
	for i := range s.rows {
		if s.rows[i].UserID == userID && s.rows[i].ProductID == productID {
			return &s.rows[i]
		}
	}
	return nil
}

func (s *stubRepo) Upsert(ctx context.Context, userID uuid.UUID, productID string) error {
	if s.failAll {
		return context.DeadlineExceeded
	}
	if row := s.find(userID, productID); row != nil {
		row.Quantity++
		return nil
	}
	s.rows = append(s.rows, models.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	})
	return nil
}

func (s *stubRepo) SetQuantity(ctx context.Context, userID uuid.UUID, productID string, quantity int) (int64, error) {
	if row := s.find(userID, productID); row != nil {
		row.Quantity = quantity
		return 1, nil
	}
	return 0, nil
}

func (s *stubRepo) Delete(ctx context.Context, userID uuid.UUID, productID string) error {
	kept := s.rows[:0]
	for _, row := range s.rows {
		if row.UserID != userID || row.ProductID != productID {
			kept = append(kept, row)
		}
	}
	s.rows = kept
	return nil
}

func (s *stubRepo) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	kept := s.rows[:0]
	for _, row := range s.rows {
		if row.UserID != userID {
			kept = append(kept, row)
		}
	}
	s.rows = kept
	return nil
}

func (s *stubRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, row := range s.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubRepo) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := s.rows[:0]
	for _, row := range s.rows {
		if !drop[row.ID] {
			kept = append(kept, row)
		}
	}
	s.rows = kept
	return nil
}

func newTestService(t *testing.T) (Service, *stubRepo) {
	t.Helper()
	repo := &stubRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, repo
}

func TestAddDistinctProducts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	if _, err := svc.Add(ctx, userID, "sach-scratch-lop-3"); err != nil {
		t.Fatalf("add first: %v", err)
	}
	view, err := svc.Add(ctx, userID, "video-scratch-co-ban")
	if err != nil {
		t.Fatalf("add second: %v", err)
	}

	if len(view.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(view.Items))
	}
	if view.ItemCount != 2 {
		t.Fatalf("expected item count 2, got %d", view.ItemCount)
	}
	want := int64(150000 + 250000)
	if view.TotalAmount != want {
		t.Fatalf("expected total %d, got %d", want, view.TotalAmount)
	}
}

func TestAddSameProductTwiceIncrementsQuantity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	if _, err := svc.Add(ctx, userID, "sach-scratch-lop-3"); err != nil {
		t.Fatalf("add: %v", err)
	}
	view, err := svc.Add(ctx, userID, "sach-scratch-lop-3")
	if err != nil {
		t.Fatalf("add again: %v", err)
	}

	if len(view.Items) != 1 {
		t.Fatalf("expected a single line, got %d", len(view.Items))
	}
	if view.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", view.Items[0].Quantity)
	}
	if view.ItemCount != 2 {
		t.Fatalf("expected item count 2, got %d", view.ItemCount)
	}
	if view.TotalAmount != 300000 {
		t.Fatalf("expected total 300000, got %d", view.TotalAmount)
	}
}

func TestAddUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Add(context.Background(), uuid.New(), "no-such-product")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestAddRequiresUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Add(context.Background(), uuid.Nil, "sach-scratch-lop-3")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}
}

func TestUpdateQuantityBelowOneIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	if _, err := svc.Add(ctx, userID, "sach-scratch-lop-3"); err != nil {
		t.Fatalf("add: %v", err)
	}

	for _, quantity := range []int{0, -1} {
		view, err := svc.UpdateQuantity(ctx, userID, "sach-scratch-lop-3", quantity)
		if err != nil {
			t.Fatalf("update quantity %d: %v", quantity, err)
		}
		if view.Items[0].Quantity != 1 {
			t.Fatalf("quantity %d should be a no-op, cart shows %d", quantity, view.Items[0].Quantity)
		}
	}
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	if _, err := svc.Add(ctx, userID, "sach-scratch-lop-3"); err != nil {
		t.Fatalf("add: %v", err)
	}
	view, err := svc.UpdateQuantity(ctx, userID, "sach-scratch-lop-3", 5)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if view.Items[0].Quantity != 5 || view.ItemCount != 5 {
		t.Fatalf("expected quantity 5, got %+v", view)
	}
}

func TestUpdateQuantityAbsentItemIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	view, err := svc.UpdateQuantity(ctx, userID, "sach-scratch-lop-3", 3)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", view.Items)
	}
}

func TestRemoveAbsentItemIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	if _, err := svc.Add(ctx, userID, "sach-scratch-lop-3"); err != nil {
		t.Fatalf("add: %v", err)
	}
	view, err := svc.Remove(ctx, userID, "video-scratch-co-ban")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("remove of absent id should keep cart intact, got %+v", view.Items)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	for _, id := range []string{"sach-scratch-lop-3", "video-scratch-co-ban"} {
		if _, err := svc.Add(ctx, userID, id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	view, err := svc.Clear(ctx, userID)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(view.Items) != 0 || view.ItemCount != 0 || view.TotalAmount != 0 {
		t.Fatalf("expected empty view, got %+v", view)
	}
}

func TestGetPrunesRowsMissingFromCatalog(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	repo.rows = append(repo.rows, models.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: "retired-product",
		Quantity:  2,
	})
	if _, err := svc.Add(ctx, userID, "sach-scratch-lop-3"); err != nil {
		t.Fatalf("add: %v", err)
	}

	view, err := svc.Get(ctx, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].ProductID != "sach-scratch-lop-3" {
		t.Fatalf("expected only catalog-backed rows, got %+v", view.Items)
	}
	if repo.find(userID, "retired-product") != nil {
		t.Fatal("stale row should have been deleted")
	}
}
