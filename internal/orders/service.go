package orders

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/minhtridev/edustore-backend/pkg/db/models"
	"github.com/minhtridev/edustore-backend/pkg/enums"
	pkgerrors "github.com/minhtridev/edustore-backend/pkg/errors"
	"github.com/minhtridev/edustore-backend/pkg/pagination"
)

type repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	FindByIDForUser(ctx context.Context, orderID, userID uuid.UUID) (*models.Order, error)
	FindByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	MarkStatus(ctx context.Context, orderID uuid.UUID, target enums.OrderStatus, at time.Time) (int64, error)
	ListByStatus(ctx context.Context, status enums.OrderStatus, params pagination.Params) ([]models.Order, string, error)
	CountByStatus(ctx context.Context, status enums.OrderStatus) (int64, error)
	SumPaidRevenue(ctx context.Context) (int64, error)
}

// Service exposes order reads for customers plus the manual settlement
// operations the back office performs.
type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error)
	Detail(ctx context.Context, userID, orderID uuid.UUID) (*OrderDTO, error)
	AdminList(ctx context.Context, status string, params pagination.Params) (*AdminOrderList, error)
	AdminDetail(ctx context.Context, orderID uuid.UUID) (*OrderDTO, error)
	MarkPaid(ctx context.Context, orderID uuid.UUID) (*OrderDTO, error)
	MarkCancelled(ctx context.Context, orderID uuid.UUID) (*OrderDTO, error)
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	repo repository
	now  func() time.Time
}

// NewService builds the order service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "orders repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user is required")
	}

	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	out := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Detail(ctx context.Context, userID, orderID uuid.UUID) (*OrderDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user is required")
	}

	row, err := s.repo.FindByIDForUser(ctx, orderID, userID)
	if errors.Is(err, ErrNotFound) {
		// Other users' orders look identical to missing ones.
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return FromModel(row), nil
}

func (s *service) AdminList(ctx context.Context, status string, params pagination.Params) (*AdminOrderList, error) {
	var filter enums.OrderStatus
	if status != "" {
		parsed, err := enums.ParseOrderStatus(status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
		}
		filter = parsed
	}

	rows, next, err := s.repo.ListByStatus(ctx, filter, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders by status")
	}

	list := &AdminOrderList{Orders: make([]OrderDTO, 0, len(rows)), NextCursor: next}
	for i := range rows {
		list.Orders = append(list.Orders, *FromModel(&rows[i]))
	}
	return list, nil
}

func (s *service) AdminDetail(ctx context.Context, orderID uuid.UUID) (*OrderDTO, error) {
	row, err := s.repo.FindByID(ctx, orderID)
	if errors.Is(err, ErrNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return FromModel(row), nil
}

func (s *service) MarkPaid(ctx context.Context, orderID uuid.UUID) (*OrderDTO, error) {
	return s.transition(ctx, orderID, enums.OrderStatusPaid)
}

func (s *service) MarkCancelled(ctx context.Context, orderID uuid.UUID) (*OrderDTO, error) {
	return s.transition(ctx, orderID, enums.OrderStatusCancelled)
}

// transition moves a pending order to its terminal status. Paid and cancelled
// orders reject further transitions.
func (s *service) transition(ctx context.Context, orderID uuid.UUID, target enums.OrderStatus) (*OrderDTO, error) {
	row, err := s.repo.FindByID(ctx, orderID)
	if errors.Is(err, ErrNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	if row.Status != enums.OrderStatusPending {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order is not pending")
	}

	affected, err := s.repo.MarkStatus(ctx, orderID, target, s.now().UTC())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}
	if affected == 0 {
		// Lost the race against a concurrent transition.
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order is not pending")
	}

	row, err = s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload order")
	}
	return FromModel(row), nil
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	counts := []struct {
		status enums.OrderStatus
		dest   *int64
	}{
		{enums.OrderStatusPending, &summary.PendingCount},
		{enums.OrderStatusPaid, &summary.PaidCount},
		{enums.OrderStatusCancelled, &summary.CancelledCount},
	}
	for _, c := range counts {
		count, err := s.repo.CountByStatus(ctx, c.status)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count orders")
		}
		*c.dest = count
	}

	revenue, err := s.repo.SumPaidRevenue(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum paid revenue")
	}
	summary.PaidRevenue = revenue

	average := decimal.Zero
	if summary.PaidCount > 0 {
		average = decimal.NewFromInt(revenue).
			Div(decimal.NewFromInt(summary.PaidCount)).
			Round(0)
	}
	summary.AveragePaid = average.String()

	return summary, nil
}
