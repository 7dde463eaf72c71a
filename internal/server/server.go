package server

import (
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/google/uuid"

	"lotmarket/pkg/contextx"
	"lotmarket/pkg/errcodes"
)

// Server объединяет HTTP сервера отдельных сущностей
type Server struct {
	OfferServer
	LotServer
	MailServer
}

func NewServer(
	offerServer OfferServer,
	lotServer LotServer,
	mailServer MailServer,
) Server {
	return Server{
		OfferServer: offerServer,
		LotServer:   lotServer,
		MailServer:  mailServer,
	}
}

// tenantID достаёт арендатора, выставленный middlewarex.Tenant.
func tenantID(r *http.Request) (uuid.UUID, error) {
	raw, err := contextx.TenantIDFromContext(r.Context())
	if err != nil {
		return uuid.Nil, failure.NewInvalidArgumentError(
			err.Error(),
			failure.WithCode(errcodes.TenantRequired),
			failure.WithDescription("X-Tenant-Id header is required"),
		)
	}

	id, err := uuid.Parse(raw.String())
	if err != nil {
		return uuid.Nil, failure.NewInvalidArgumentError(
			err.Error(),
			failure.WithCode(errcodes.TenantRequired),
			failure.WithDescription("X-Tenant-Id must be a uuid"),
		)
	}

	return id, nil
}

func userID(r *http.Request) (string, error) {
	id, err := contextx.UserIDFromContext(r.Context())
	if err != nil || id == "" {
		return "", failure.NewInvalidArgumentError(
			"user id is missing",
			failure.WithCode(errcodes.UserRequired),
			failure.WithDescription("X-User-Id header is required"),
		)
	}

	return id.String(), nil
}

func lotID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, failure.NewInvalidArgumentError(
			err.Error(),
			failure.WithCode(errcodes.InvalidLotID),
			failure.WithDescription("Lot id must be a uuid"),
		)
	}

	return id, nil
}
