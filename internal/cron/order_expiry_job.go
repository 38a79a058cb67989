package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/minhtridev/edustore-backend/pkg/logger"
)

const defaultOrderExpiryDays = 10

type pendingOrderCanceller interface {
	CancelPendingOlderThan(ctx context.Context, cutoff, at time.Time) (int64, error)
}

// OrderExpiryJobParams configure the pending order expiry sweep.
type OrderExpiryJobParams struct {
	Logger     *logger.Logger
	Orders     pendingOrderCanceller
	ExpiryDays int
}

// NewOrderExpiryJob builds the job that cancels bank-transfer orders whose
// payment never arrived.
func NewOrderExpiryJob(params OrderExpiryJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	expiryDays := params.ExpiryDays
	if expiryDays <= 0 {
		expiryDays = defaultOrderExpiryDays
	}
	return &orderExpiryJob{
		logg:       params.Logger,
		orders:     params.Orders,
		expiryDays: expiryDays,
		now:        time.Now,
	}, nil
}

type orderExpiryJob struct {
	logg       *logger.Logger
	orders     pendingOrderCanceller
	expiryDays int
	now        func() time.Time
}

func (j *orderExpiryJob) Name() string { return "order-expiry" }

func (j *orderExpiryJob) Run(ctx context.Context) error {
	now := j.now().UTC()
	cutoff := now.Add(-time.Duration(j.expiryDays) * 24 * time.Hour)

	cancelled, err := j.orders.CancelPendingOlderThan(ctx, cutoff, now)
	if err != nil {
		return fmt.Errorf("cancel stale pending orders: %w", err)
	}

	logCtx := j.logg.WithFields(ctx, map[string]any{
		"cancelled":   cancelled,
		"expiry_days": j.expiryDays,
	})
	j.logg.Info(logCtx, "order expiry sweep complete")
	return nil
}
