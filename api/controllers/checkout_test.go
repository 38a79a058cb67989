package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/minhtridev/edustore-backend/internal/checkout"
	"github.com/minhtridev/edustore-backend/internal/orders"
	"github.com/minhtridev/edustore-backend/pkg/enums"
	pkgerrors "github.com/minhtridev/edustore-backend/pkg/errors"
)

type stubCheckoutService struct {
	instructions *checkout.Instructions
	order        *orders.OrderDTO
	err          error
}

func (s stubCheckoutService) Instructions(ctx context.Context, userID uuid.UUID) (*checkout.Instructions, error) {
	return s.instructions, s.err
}

func (s stubCheckoutService) Confirm(ctx context.Context, userID uuid.UUID) (*orders.OrderDTO, error) {
	return s.order, s.err
}

func TestCheckoutInstructionsSuccess(t *testing.T) {
	svc := stubCheckoutService{instructions: &checkout.Instructions{
		BankName:          "MB Bank",
		AccountNumber:     "0901234567",
		AccountHolder:     "NGUYEN VAN A",
		Amount:            400000,
		AmountFormatted:   "400.000đ",
		TransferReference: "0905555555 Nguyễn Văn An",
	}}
	req := authedRequest(httptest.NewRequest(http.MethodGet, "/api/v1/checkout/instructions", nil), uuid.New())
	resp := httptest.NewRecorder()
	CheckoutInstructions(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var data checkout.Instructions
	decodeEnvelope(t, resp.Body.Bytes(), &data)
	if data.AmountFormatted != "400.000đ" {
		t.Fatalf("expected formatted amount got %q", data.AmountFormatted)
	}
}

func TestCheckoutInstructionsEmptyCart(t *testing.T) {
	svc := stubCheckoutService{err: pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")}
	req := authedRequest(httptest.NewRequest(http.MethodGet, "/api/v1/checkout/instructions", nil), uuid.New())
	resp := httptest.NewRecorder()
	CheckoutInstructions(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCheckoutConfirmReturnsCreated(t *testing.T) {
	order := &orders.OrderDTO{
		ID:          uuid.New(),
		TotalAmount: 550000,
		Status:      enums.OrderStatusPending,
	}
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil), uuid.New())
	resp := httptest.NewRecorder()
	CheckoutConfirm(stubCheckoutService{order: order}, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	var data orders.OrderDTO
	decodeEnvelope(t, resp.Body.Bytes(), &data)
	if data.TotalAmount != 550000 {
		t.Fatalf("expected total 550000 got %d", data.TotalAmount)
	}
	if data.Status != enums.OrderStatusPending {
		t.Fatalf("expected pending status got %s", data.Status)
	}
}

func TestCheckoutConfirmRequiresUserContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
	resp := httptest.NewRecorder()
	CheckoutConfirm(stubCheckoutService{}, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
