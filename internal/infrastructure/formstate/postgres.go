package formstate

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"phone-input/internal/domain"
	"phone-input/internal/domain/entity"
	"phone-input/internal/domain/value"
	"phone-input/pkg/errcodes"
)

// PostgresStore долговременное хранилище: значение поля переживает рестарт,
// просроченные записи убирает воркер через PurgeBefore.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type formFieldRow struct {
	SessionID string    `db:"session_id"`
	FieldID   string    `db:"field_id"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (s *PostgresStore) Get(ctx context.Context, sessionID value.SessionID, fieldID value.FieldID) (entity.FormField, error) {
	const query = `
		SELECT session_id, field_id, value, updated_at
		FROM form_fields
		WHERE session_id = $1 AND field_id = $2`

	var row formFieldRow

	err := s.db.GetContext(ctx, &row, query, sessionID.String(), fieldID.String())
	if errors.Is(err, sql.ErrNoRows) {
		return entity.FormField{}, domain.ErrFieldNotFound
	}
	if err != nil {
		return entity.FormField{}, domain.WrapError(err, errcodes.InternalServerError, "failed to load form field")
	}

	return entity.FormField{
		SessionID: value.SessionID(row.SessionID),
		FieldID:   value.FieldID(row.FieldID),
		Value:     value.PhoneValue(row.Value),
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (s *PostgresStore) Put(ctx context.Context, field entity.FormField) error {
	const query = `
		INSERT INTO form_fields (session_id, field_id, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id, field_id)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		field.SessionID.String(),
		field.FieldID.String(),
		field.Value.String(),
		field.UpdatedAt,
	)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to save form field")
	}

	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, sessionID value.SessionID, fieldID value.FieldID) error {
	const query = `DELETE FROM form_fields WHERE session_id = $1 AND field_id = $2`

	if _, err := s.db.ExecContext(ctx, query, sessionID.String(), fieldID.String()); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to delete form field")
	}

	return nil
}

func (s *PostgresStore) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `DELETE FROM form_fields WHERE updated_at < $1`

	res, err := s.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to purge form fields")
	}

	purged, err := res.RowsAffected()
	if err != nil {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to count purged fields")
	}

	return purged, nil
}
