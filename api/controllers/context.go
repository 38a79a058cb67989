package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/minhtridev/edustore-backend/api/middleware"
	pkgerrors "github.com/minhtridev/edustore-backend/pkg/errors"
)

// requestUserID resolves the authenticated user id seeded by the auth
// middleware.
func requestUserID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user id")
	}
	return id, nil
}
