package cron

import (
	"context"
	"fmt"

	"github.com/minhtridev/edustore-backend/internal/catalog"
	"github.com/minhtridev/edustore-backend/pkg/logger"
)

type staleCartRemover interface {
	DeleteWhereProductNotIn(ctx context.Context, productIDs []string) (int64, error)
}

// CartReconcileJobParams configure the cart sweep.
type CartReconcileJobParams struct {
	Logger *logger.Logger
	Carts  staleCartRemover
}

// NewCartReconcileJob builds the job that removes cart rows pointing at
// products no longer in the catalog.
func NewCartReconcileJob(params CartReconcileJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Carts == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	return &cartReconcileJob{
		logg:  params.Logger,
		carts: params.Carts,
	}, nil
}

type cartReconcileJob struct {
	logg  *logger.Logger
	carts staleCartRemover
}

func (j *cartReconcileJob) Name() string { return "cart-reconcile" }

func (j *cartReconcileJob) Run(ctx context.Context) error {
	products := catalog.All()
	ids := make([]string, 0, len(products))
	for _, product := range products {
		ids = append(ids, product.ID)
	}

	removed, err := j.carts.DeleteWhereProductNotIn(ctx, ids)
	if err != nil {
		return fmt.Errorf("delete stale cart rows: %w", err)
	}

	logCtx := j.logg.WithFields(ctx, map[string]any{"removed": removed})
	j.logg.Info(logCtx, "cart reconcile sweep complete")
	return nil
}
