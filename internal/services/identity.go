package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/apierr"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/requestdata"
)

// currentUserID pulls the authenticated user out of the request context.
// Every service operation is scoped to this identity; there is no other
// authorization model.
func currentUserID(ctx context.Context) (uuid.UUID, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, apierr.Unauthorized("Não autenticado")
	}
	return rd.UserID, nil
}
