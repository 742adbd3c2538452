package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"phone-input/internal/domain"
	"phone-input/internal/domain/entity"
	"phone-input/internal/domain/service/links"
	"phone-input/internal/domain/service/phonefmt"
	"phone-input/internal/domain/value"
	"phone-input/pkg/contextx"
	"phone-input/pkg/errcodes"
	"phone-input/pkg/httpx/reply"
	"phone-input/pkg/httpx/req"
	"phone-input/pkg/logx"
	"phone-input/pkg/rest"
)

type fieldService interface {
	Update(ctx context.Context, sessionID value.SessionID, fieldID value.FieldID, raw string, kind phonefmt.InputKind) (entity.FormField, error)
	Get(ctx context.Context, sessionID value.SessionID, fieldID value.FieldID) (entity.FormField, error)
	Clear(ctx context.Context, sessionID value.SessionID, fieldID value.FieldID) error
}

// SessionServer обслуживает поля, привязанные к сессии формы: значение
// между событиями живёт во внешнем хранилище, ядро остаётся без состояния.
type SessionServer struct {
	fieldService fieldService
	links        links.Builder
}

func NewSessionServer(fieldService fieldService, links links.Builder) SessionServer {
	return SessionServer{
		fieldService: fieldService,
		links:        links,
	}
}

func (s SessionServer) putV1SessionField(w http.ResponseWriter, r *http.Request) error {
	ctx, sessionID, fieldID, err := sessionFieldIDs(r)
	if err != nil {
		return err
	}

	var request rest.FieldUpdateRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	kind, err := parseInputKind(request.InputKind)
	if err != nil {
		return err
	}

	field, err := s.fieldService.Update(ctx, sessionID, fieldID, request.Raw, kind)
	if err != nil {
		return fmt.Errorf("fieldService.Update: %w", err)
	}

	observeFormat(field.Value.Kind().String(), string(kind))

	reply.JSON(ctx, w, http.StatusOK, newRESTField(field))

	return nil
}

func (s SessionServer) getV1SessionField(w http.ResponseWriter, r *http.Request) error {
	ctx, sessionID, fieldID, err := sessionFieldIDs(r)
	if err != nil {
		return err
	}

	field, err := s.fieldService.Get(ctx, sessionID, fieldID)
	if errors.Is(err, domain.ErrFieldNotFound) {
		return failure.NewNotFoundError(
			fmt.Sprintf("field %s in session %s", fieldID, sessionID),
			failure.WithCode(errcodes.FieldNotFound),
			failure.WithDescription("Form field not found"),
		)
	}
	if err != nil {
		return fmt.Errorf("fieldService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, s.restFieldWithLinks(field))

	return nil
}

func (s SessionServer) deleteV1SessionField(w http.ResponseWriter, r *http.Request) error {
	ctx, sessionID, fieldID, err := sessionFieldIDs(r)
	if err != nil {
		return err
	}

	if err := s.fieldService.Clear(ctx, sessionID, fieldID); err != nil {
		return fmt.Errorf("fieldService.Clear: %w", err)
	}

	reply.OK(w)

	return nil
}

func sessionFieldIDs(r *http.Request) (context.Context, value.SessionID, value.FieldID, error) {
	ctx := r.Context()

	sessionID, err := value.ParseSessionID(r.PathValue("sessionID"))
	if err != nil {
		return ctx, "", "", failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseSessionID: %w", err),
			failure.WithCode(errcodes.InvalidSessionID),
		)
	}

	fieldID, err := value.ParseFieldID(r.PathValue("fieldID"))
	if err != nil {
		return ctx, "", "", failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseFieldID: %w", err),
			failure.WithCode(errcodes.InvalidFieldID),
		)
	}

	ctx = contextx.WithSessionID(ctx, contextx.SessionID(sessionID.String()))
	ctx = contextx.WithLogger(ctx, contextx.LoggerFromContextOrDefault(ctx).With(
		slog.String(logx.FieldSessionID, sessionID.String()),
		slog.String(logx.FieldFieldID, fieldID.String()),
	))

	return ctx, sessionID, fieldID, nil
}
