package cron

import (
	"context"
	"errors"
	"testing"

	"github.com/minhtridev/edustore-backend/internal/catalog"
	"github.com/minhtridev/edustore-backend/pkg/logger"
)

type stubCartRemover struct {
	removed int64
	err     error
	gotIDs  []string
}

func (s *stubCartRemover) DeleteWhereProductNotIn(ctx context.Context, productIDs []string) (int64, error) {
	s.gotIDs = productIDs
	return s.removed, s.err
}

func TestCartReconcileJobSweepsWithCatalogIDs(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "cron-test"})
	remover := &stubCartRemover{removed: 2}

	job, err := NewCartReconcileJob(CartReconcileJobParams{
		Logger: logg,
		Carts:  remover,
	})
	if err != nil {
		t.Fatalf("new job: %v", err)
	}
	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(remover.gotIDs) != len(catalog.All()) {
		t.Fatalf("expected %d catalog ids, got %d", len(catalog.All()), len(remover.gotIDs))
	}
	seen := map[string]bool{}
	for _, id := range remover.gotIDs {
		seen[id] = true
	}
	if !seen["sach-scratch-lop-3"] || !seen["robotics-starter-kit"] {
		t.Fatalf("catalog ids missing from sweep set: %v", remover.gotIDs)
	}
}

func TestCartReconcileJobPropagatesErrors(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "cron-test"})
	remover := &stubCartRemover{err: errors.New("db down")}

	job, err := NewCartReconcileJob(CartReconcileJobParams{
		Logger: logg,
		Carts:  remover,
	})
	if err != nil {
		t.Fatalf("new job: %v", err)
	}
	if err := job.Run(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
