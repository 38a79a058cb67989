package checkout

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minhtridev/edustore-backend/internal/cart"
	"github.com/minhtridev/edustore-backend/internal/catalog"
	"github.com/minhtridev/edustore-backend/internal/orders"
	"github.com/minhtridev/edustore-backend/internal/profile"
	"github.com/minhtridev/edustore-backend/pkg/config"
	"github.com/minhtridev/edustore-backend/pkg/currency"
	"github.com/minhtridev/edustore-backend/pkg/db/models"
	"github.com/minhtridev/edustore-backend/pkg/enums"
	pkgerrors "github.com/minhtridev/edustore-backend/pkg/errors"
)

// Placeholders shown in the transfer reference when the profile is missing
// the field.
const (
	phonePlaceholder = "SDT"
	namePlaceholder  = "TEN"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Instructions is everything the customer needs to settle an order by bank
// transfer.
type Instructions struct {
	BankName          string `json:"bank_name"`
	AccountNumber     string `json:"account_number"`
	AccountHolder     string `json:"account_holder"`
	Amount            int64  `json:"amount"`
	AmountFormatted   string `json:"amount_formatted"`
	TransferReference string `json:"transfer_reference"`
}

// Service converts a cart into a pending order settled by manual bank
// transfer.
type Service interface {
	Instructions(ctx context.Context, userID uuid.UUID) (*Instructions, error)
	Confirm(ctx context.Context, userID uuid.UUID) (*orders.OrderDTO, error)
}

type service struct {
	tx       txRunner
	carts    *cart.Repository
	orders   *orders.Repository
	profiles *profile.Repository
	bank     config.BankConfig
}

// NewService builds the checkout service.
func NewService(
	tx txRunner,
	carts *cart.Repository,
	ordersRepo *orders.Repository,
	profiles *profile.Repository,
	bank config.BankConfig,
) (Service, error) {
	if tx == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "tx runner required")
	}
	if carts == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart repository required")
	}
	if ordersRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "orders repository required")
	}
	if profiles == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "profile repository required")
	}
	return &service{
		tx:       tx,
		carts:    carts,
		orders:   ordersRepo,
		profiles: profiles,
		bank:     bank,
	}, nil
}

// priced is a cart row joined against the catalog.
type priced struct {
	product  catalog.Product
	quantity int
}

// priceCart resolves cart rows against the catalog. Rows whose product id no
// longer resolves are skipped; the cart sweep removes them later.
func priceCart(rows []models.CartItem) ([]priced, int64) {
	var lines []priced
	var total int64
	for _, row := range rows {
		product, ok := catalog.Find(row.ProductID)
		if !ok {
			continue
		}
		lines = append(lines, priced{product: product, quantity: row.Quantity})
		total += product.Price * int64(row.Quantity)
	}
	return lines, total
}

func (s *service) Instructions(ctx context.Context, userID uuid.UUID) (*Instructions, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user is required")
	}

	rows, err := s.carts.ListForUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	lines, total := priceCart(rows)
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	reference := s.transferReference(ctx, userID)

	return &Instructions{
		BankName:          s.bank.Name,
		AccountNumber:     s.bank.AccountNumber,
		AccountHolder:     s.bank.AccountHolder,
		Amount:            total,
		AmountFormatted:   currency.FormatVND(total),
		TransferReference: reference,
	}, nil
}

// transferReference renders "{phone} {full_name}" from the profile, falling
// back to literal placeholders when either field is blank. An unreadable
// profile degrades to the placeholders rather than failing the read.
func (s *service) transferReference(ctx context.Context, userID uuid.UUID) string {
	phone, name := phonePlaceholder, namePlaceholder

	row, err := s.profiles.FindByID(ctx, userID)
	if err == nil {
		if v := strings.TrimSpace(row.Phone); v != "" {
			phone = v
		}
		if v := strings.TrimSpace(row.FullName); v != "" {
			name = v
		}
	}
	return phone + " " + name
}

// Confirm creates the pending order and its line snapshots and empties the
// cart, all in one transaction. Partial failure rolls everything back.
func (s *service) Confirm(ctx context.Context, userID uuid.UUID) (*orders.OrderDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user is required")
	}

	var result *orders.OrderDTO
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		carts := s.carts.WithTx(tx)
		ordersRepo := s.orders.WithTx(tx)

		rows, err := carts.ListForUser(ctx, userID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
		}
		lines, total := priceCart(rows)
		if len(lines) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}

		order := &models.Order{
			UserID:      userID,
			TotalAmount: total,
			Status:      enums.OrderStatusPending,
		}
		if err := ordersRepo.Create(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}

		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			types := make([]string, 0, len(line.product.Types))
			for _, t := range line.product.Types {
				types = append(types, t.String())
			}
			items = append(items, orders.SnapshotItem(
				order.ID,
				line.product.ID,
				line.product.Title,
				types,
				line.product.Price,
				line.quantity,
			))
		}
		if err := ordersRepo.CreateItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order items")
		}

		// Delete only the rows priced into the order. A row committed by
		// a concurrent add after the read stays in the cart.
		ids := make([]uuid.UUID, 0, len(rows))
		for _, row := range rows {
			ids = append(ids, row.ID)
		}
		if err := carts.DeleteByIDs(ctx, ids); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
		}

		order.Items = items
		result = orders.FromModel(order)
		return nil
	})
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checkout")
	}
	return result, nil
}
