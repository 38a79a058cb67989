package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/minhtridev/edustore-backend/pkg/db/models"
	"github.com/minhtridev/edustore-backend/pkg/enums"
	pkgerrors "github.com/minhtridev/edustore-backend/pkg/errors"
	"github.com/minhtridev/edustore-backend/pkg/pagination"
)

type stubOrderRepo struct {
	orders map[uuid.UUID]*models.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: map[uuid.UUID]*models.Order{}}
}

func (s *stubOrderRepo) add(order models.Order) uuid.UUID {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.Status == "" {
		order.Status = enums.OrderStatusPending
	}
	s.orders[order.ID] = &order
	return order.ID
}

func (s *stubOrderRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	var out []models.Order
	for _, order := range s.orders {
		if order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (s *stubOrderRepo) FindByIDForUser(ctx context.Context, orderID, userID uuid.UUID) (*models.Order, error) {
	order, ok := s.orders[orderID]
	if !ok || order.UserID != userID {
		return nil, ErrNotFound
	}
	clone := *order
	return &clone, nil
}

func (s *stubOrderRepo) FindByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	order, ok := s.orders[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *order
	return &clone, nil
}

func (s *stubOrderRepo) MarkStatus(ctx context.Context, orderID uuid.UUID, target enums.OrderStatus, at time.Time) (int64, error) {
	order, ok := s.orders[orderID]
	if !ok || order.Status != enums.OrderStatusPending {
		return 0, nil
	}
	order.Status = target
	switch target {
	case enums.OrderStatusPaid:
		order.PaidAt = &at
	case enums.OrderStatusCancelled:
		order.CancelledAt = &at
	}
	return 1, nil
}

func (s *stubOrderRepo) ListByStatus(ctx context.Context, status enums.OrderStatus, params pagination.Params) ([]models.Order, string, error) {
	var out []models.Order
	for _, order := range s.orders {
		if status == "" || order.Status == status {
			out = append(out, *order)
		}
	}
	return out, "", nil
}

func (s *stubOrderRepo) CountByStatus(ctx context.Context, status enums.OrderStatus) (int64, error) {
	var count int64
	for _, order := range s.orders {
		if order.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *stubOrderRepo) SumPaidRevenue(ctx context.Context) (int64, error) {
	var total int64
	for _, order := range s.orders {
		if order.Status == enums.OrderStatusPaid {
			total += order.TotalAmount
		}
	}
	return total, nil
}

func newTestService(t *testing.T) (Service, *stubOrderRepo) {
	t.Helper()
	repo := newStubOrderRepo()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, repo
}

func TestDetailHidesOtherUsersOrders(t *testing.T) {
	svc, repo := newTestService(t)
	ownerID := uuid.New()
	orderID := repo.add(models.Order{UserID: ownerID, TotalAmount: 150000})

	dto, err := svc.Detail(context.Background(), ownerID, orderID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if dto.TotalAmount != 150000 {
		t.Fatalf("expected total 150000, got %d", dto.TotalAmount)
	}

	_, err = svc.Detail(context.Background(), uuid.New(), orderID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND for a stranger, got %v", err)
	}
}

func TestMarkPaidTransitionsPendingOrder(t *testing.T) {
	svc, repo := newTestService(t)
	orderID := repo.add(models.Order{UserID: uuid.New(), TotalAmount: 400000})

	dto, err := svc.MarkPaid(context.Background(), orderID)
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if dto.Status != enums.OrderStatusPaid {
		t.Fatalf("expected paid, got %s", dto.Status)
	}
	if dto.PaidAt == nil {
		t.Fatal("expected paid_at to be stamped")
	}
}

func TestMarkPaidRejectsNonPendingOrder(t *testing.T) {
	svc, repo := newTestService(t)
	orderID := repo.add(models.Order{UserID: uuid.New(), TotalAmount: 400000, Status: enums.OrderStatusCancelled})

	_, err := svc.MarkPaid(context.Background(), orderID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected STATE_CONFLICT, got %v", err)
	}
}

func TestMarkCancelledTransitionsPendingOrder(t *testing.T) {
	svc, repo := newTestService(t)
	orderID := repo.add(models.Order{UserID: uuid.New(), TotalAmount: 250000})

	dto, err := svc.MarkCancelled(context.Background(), orderID)
	if err != nil {
		t.Fatalf("mark cancelled: %v", err)
	}
	if dto.Status != enums.OrderStatusCancelled || dto.CancelledAt == nil {
		t.Fatalf("expected cancelled with timestamp, got %+v", dto)
	}
}

func TestMarkPaidUnknownOrder(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.MarkPaid(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestAdminListRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AdminList(context.Background(), "shipped", pagination.Params{})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestSummaryAveragesPaidOrders(t *testing.T) {
	svc, repo := newTestService(t)
	repo.add(models.Order{UserID: uuid.New(), TotalAmount: 150000, Status: enums.OrderStatusPaid})
	repo.add(models.Order{UserID: uuid.New(), TotalAmount: 250000, Status: enums.OrderStatusPaid})
	repo.add(models.Order{UserID: uuid.New(), TotalAmount: 999999})
	repo.add(models.Order{UserID: uuid.New(), TotalAmount: 120000, Status: enums.OrderStatusCancelled})

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.PendingCount != 1 || summary.PaidCount != 2 || summary.CancelledCount != 1 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	if summary.PaidRevenue != 400000 {
		t.Fatalf("expected revenue 400000, got %d", summary.PaidRevenue)
	}
	if summary.AveragePaid != "200000" {
		t.Fatalf("expected average 200000, got %s", summary.AveragePaid)
	}
}

func TestSummaryWithNoPaidOrders(t *testing.T) {
	svc, _ := newTestService(t)

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.AveragePaid != "0" {
		t.Fatalf("expected average 0, got %s", summary.AveragePaid)
	}
}
