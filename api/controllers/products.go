package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/minhtridev/edustore-backend/api/responses"
	"github.com/minhtridev/edustore-backend/api/validators"
	"github.com/minhtridev/edustore-backend/internal/catalog"
	"github.com/minhtridev/edustore-backend/pkg/enums"
	pkgerrors "github.com/minhtridev/edustore-backend/pkg/errors"
	"github.com/minhtridev/edustore-backend/pkg/logger"
)

// ProductsList returns the catalog, optionally filtered by grade and type.
func ProductsList(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grade, err := validators.ParseQueryInt(r, "grade", 0, 1, 12)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var productType enums.ProductType
		if raw := strings.TrimSpace(r.URL.Query().Get("type")); raw != "" {
			parsed, err := enums.ParseProductType(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "unknown product type"))
				return
			}
			productType = parsed
		}

		responses.WriteSuccess(w, map[string]any{
			"products": catalog.Filter(grade, productType),
		})
	}
}

// ProductGet returns one catalog entry by id.
func ProductGet(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "productID")
		product, ok := catalog.Find(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}
