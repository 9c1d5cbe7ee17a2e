package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/vfg2006/customer360-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer360-api/internal/domain"
)

const actionExecutionsTable = "action_executions"

// ActionExecutionRepository is the idempotency ledger for executed actions.
type ActionExecutionRepository interface {
	GetByKey(ctx context.Context, idempotencyKey string) (*domain.ActionResult, error)
	Save(ctx context.Context, cmd domain.ActionCommand, result domain.ActionResult) error
}

type actionExecutionRepository struct {
	conn postgres.Queryer
}

func NewActionExecutionRepository(conn postgres.Queryer) ActionExecutionRepository {
	return &actionExecutionRepository{
		conn: conn,
	}
}

// GetByKey returns nil, nil when the key was never recorded.
func (r *actionExecutionRepository) GetByKey(ctx context.Context, idempotencyKey string) (*domain.ActionResult, error) {
	query, args, err := squirrel.
		Select("action_id", "idempotency_key", "outcome", "reason", "retryable", "message", "executed_at").
		From(actionExecutionsTable).
		Where(squirrel.Eq{"idempotency_key": idempotencyKey}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var (
		result     domain.ActionResult
		outcome    string
		executedAt sql.NullTime
	)
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&result.ActionID,
		&result.IdempotencyKey,
		&outcome,
		&result.Reason,
		&result.Retryable,
		&result.Message,
		&executedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "action executions: get by key")
	}

	result.Outcome = domain.ActionOutcome(outcome)
	if executedAt.Valid {
		t := executedAt.Time
		result.ExecutedAt = &t
	}

	return &result, nil
}

// Save records the result. A key that is already present keeps its first result.
func (r *actionExecutionRepository) Save(ctx context.Context, cmd domain.ActionCommand, result domain.ActionResult) error {
	query, args, err := saveExecutionQuery(cmd, result, time.Now().UTC()).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "action executions: save %s", cmd.ActionID)
	}

	return nil
}

func saveExecutionQuery(cmd domain.ActionCommand, result domain.ActionResult, now time.Time) squirrel.InsertBuilder {
	var requestedBy *int
	if cmd.RequestedBy != 0 {
		requestedBy = &cmd.RequestedBy
	}

	return squirrel.
		Insert(actionExecutionsTable).
		Columns(
			"idempotency_key", "action_id", "customer_id", "action_type", "requested_by",
			"outcome", "reason", "retryable", "message", "executed_at", "created_at",
		).
		Values(
			cmd.IdempotencyKey, cmd.ActionID, cmd.CustomerID, cmd.ActionType, requestedBy,
			string(result.Outcome), result.Reason, result.Retryable, result.Message, result.ExecutedAt, now,
		).
		Suffix("ON CONFLICT (idempotency_key) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)
}
