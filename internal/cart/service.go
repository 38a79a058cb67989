package cart

import (
	"context"

	"github.com/google/uuid"

	"github.com/minhtridev/edustore-backend/internal/catalog"
	"github.com/minhtridev/edustore-backend/pkg/db/models"
	"github.com/minhtridev/edustore-backend/pkg/enums"
	pkgerrors "github.com/minhtridev/edustore-backend/pkg/errors"
)

type repository interface {
	Upsert(ctx context.Context, userID uuid.UUID, productID string) error
	SetQuantity(ctx context.Context, userID uuid.UUID, productID string, quantity int) (int64, error)
	Delete(ctx context.Context, userID uuid.UUID, productID string) error
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) error
}

// Service exposes the authoritative cart operations. Every mutation returns
// the cart view re-read from the database.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*View, error)
	Add(ctx context.Context, userID uuid.UUID, productID string) (*View, error)
	UpdateQuantity(ctx context.Context, userID uuid.UUID, productID string, quantity int) (*View, error)
	Remove(ctx context.Context, userID uuid.UUID, productID string) (*View, error)
	Clear(ctx context.Context, userID uuid.UUID) (*View, error)
}

type service struct {
	repo repository
}

// NewService builds a cart service backed by the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart repository required")
	}
	return &service{repo: repo}, nil
}

// ItemView is one cart line joined against the catalog.
type ItemView struct {
	CartItemID uuid.UUID           `json:"cart_item_id"`
	ProductID  string              `json:"product_id"`
	Title      string              `json:"title"`
	Types      []enums.ProductType `json:"types"`
	Price      int64               `json:"price"`
	Quantity   int                 `json:"quantity"`
	LineTotal  int64               `json:"line_total"`
	Image      string              `json:"image"`
}

// View is the full cart. ItemCount and TotalAmount are derived per read and
// never cached.
type View struct {
	Items       []ItemView `json:"items"`
	ItemCount   int        `json:"item_count"`
	TotalAmount int64      `json:"total_amount"`
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*View, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user is required")
	}

	rows, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	view := &View{Items: []ItemView{}}
	var stale []uuid.UUID
	for _, row := range rows {
		product, ok := catalog.Find(row.ProductID)
		if !ok {
			// The product left the catalog since the row was written.
			stale = append(stale, row.ID)
			continue
		}
		line := ItemView{
			CartItemID: row.ID,
			ProductID:  product.ID,
			Title:      product.Title,
			Types:      product.Types,
			Price:      product.Price,
			Quantity:   row.Quantity,
			LineTotal:  product.Price * int64(row.Quantity),
			Image:      product.Image,
		}
		view.Items = append(view.Items, line)
		view.ItemCount += row.Quantity
		view.TotalAmount += line.LineTotal
	}

	if len(stale) > 0 {
		if err := s.repo.DeleteByIDs(ctx, stale); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "prune stale cart rows")
		}
	}

	return view, nil
}

func (s *service) Add(ctx context.Context, userID uuid.UUID, productID string) (*View, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user is required")
	}
	if _, ok := catalog.Find(productID); !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	if err := s.repo.Upsert(ctx, userID, productID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add cart item")
	}
	return s.Get(ctx, userID)
}

func (s *service) UpdateQuantity(ctx context.Context, userID uuid.UUID, productID string, quantity int) (*View, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user is required")
	}

	// Quantities below one and absent rows are silent no-ops.
	if quantity >= 1 {
		if _, err := s.repo.SetQuantity(ctx, userID, productID, quantity); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart quantity")
		}
	}
	return s.Get(ctx, userID)
}

func (s *service) Remove(ctx context.Context, userID uuid.UUID, productID string) (*View, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user is required")
	}

	if err := s.repo.Delete(ctx, userID, productID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove cart item")
	}
	return s.Get(ctx, userID)
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) (*View, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user is required")
	}

	if err := s.repo.DeleteAllForUser(ctx, userID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return s.Get(ctx, userID)
}
