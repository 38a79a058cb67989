package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/minhtridev/edustore-backend/api/responses"
	"github.com/minhtridev/edustore-backend/api/validators"
	"github.com/minhtridev/edustore-backend/internal/orders"
	pkgerrors "github.com/minhtridev/edustore-backend/pkg/errors"
	"github.com/minhtridev/edustore-backend/pkg/logger"
	"github.com/minhtridev/edustore-backend/pkg/pagination"
)

// AdminOrdersList pages through all orders, optionally filtered by status.
func AdminOrdersList(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params := pagination.Params{
			Limit:  limit,
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		}
		status := strings.TrimSpace(r.URL.Query().Get("status"))

		list, err := svc.AdminList(r.Context(), status, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// AdminOrderGet returns any order regardless of owner.
func AdminOrderGet(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "order not found"))
			return
		}

		order, err := svc.AdminDetail(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// AdminOrderMarkPaid confirms a bank transfer landed for a pending order.
func AdminOrderMarkPaid(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return adminOrderTransition(svc, logg, func(r *http.Request, orderID uuid.UUID) (*orders.OrderDTO, error) {
		return svc.MarkPaid(r.Context(), orderID)
	})
}

// AdminOrderCancel cancels a pending order.
func AdminOrderCancel(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return adminOrderTransition(svc, logg, func(r *http.Request, orderID uuid.UUID) (*orders.OrderDTO, error) {
		return svc.MarkCancelled(r.Context(), orderID)
	})
}

func adminOrderTransition(
	svc orders.Service,
	logg *logger.Logger,
	apply func(r *http.Request, orderID uuid.UUID) (*orders.OrderDTO, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "order not found"))
			return
		}

		order, err := apply(r, orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// AdminOrdersSummary reports order counts and paid revenue totals.
func AdminOrdersSummary(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.Summary(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}
