package acting

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360"
	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/c360client"
	"github.com/vfg2006/customer360-api/infrastructure/publisher"
	"github.com/vfg2006/customer360-api/infrastructure/repository"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/pkg/log"
	"github.com/vfg2006/customer360-api/pkg/utils"
)

var ErrMissingActionID = errors.New("action id is required")

const receiptTimeLayout = "2006-01-02T15:04:05"

// Execution is the answer to one execute request.
type Execution struct {
	Result          domain.ActionResult     `json:"result"`
	State           State                   `json:"state"`
	Replayed        bool                    `json:"replayed"`
	Recommendations []domain.Recommendation `json:"recommendations,omitempty"`
	DataIssues      []domain.DataIssue      `json:"data_issues,omitempty"`
}

type Executor interface {
	Execute(ctx context.Context, cmd domain.ActionCommand, refetch bool) (*Execution, error)
	Status(actionID string) State
}

type Service struct {
	integrator customer360.Integrator
	ledger     repository.ActionExecutionRepository
	publisher  publisher.ActionPublisher
	tracker    *Tracker
	now        func() time.Time
}

func NewService(
	integrator customer360.Integrator,
	ledger repository.ActionExecutionRepository,
	pub publisher.ActionPublisher,
	tracker *Tracker,
) Executor {
	return &Service{
		integrator: integrator,
		ledger:     ledger,
		publisher:  pub,
		tracker:    tracker,
		now:        time.Now,
	}
}

func (s *Service) Status(actionID string) State {
	return s.tracker.State(actionID)
}

// Execute runs cmd once. A key already in the ledger replays the recorded
// result without calling the backend. Failures are not retried.
func (s *Service) Execute(ctx context.Context, cmd domain.ActionCommand, refetch bool) (*Execution, error) {
	if cmd.ActionID == "" {
		return nil, ErrMissingActionID
	}
	if cmd.IdempotencyKey == "" {
		cmd.IdempotencyKey = utils.NewIdempotencyKey()
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"action_id":       cmd.ActionID,
		"idempotency_key": cmd.IdempotencyKey,
	})

	recorded, err := s.ledger.GetByKey(ctx, cmd.IdempotencyKey)
	if err != nil {
		logger.WithError(err).Warn("acting: ledger lookup failed, executing anyway")
	}
	if recorded != nil {
		logger.Info("acting: replaying recorded result")
		return &Execution{Result: *recorded, State: s.tracker.State(cmd.ActionID), Replayed: true}, nil
	}

	if err := s.tracker.Start(cmd.ActionID); err != nil {
		return nil, err
	}

	receipt, callErr := s.integrator.ExecuteAction(ctx, cmd.ActionID, cmd.IdempotencyKey)
	result := s.resultFor(ctx, receipt, callErr)
	result.ActionID = cmd.ActionID
	result.IdempotencyKey = cmd.IdempotencyKey

	exec := &Execution{
		Result: result,
		State:  s.tracker.Finish(cmd.ActionID, result),
	}

	logger.WithFields(log.Fields{
		"outcome":   result.Outcome,
		"retryable": result.Retryable,
	}).Info("acting: action completed")

	// retryable failures stay out of the ledger so the same key can be retried
	if !result.Retryable {
		if err := s.ledger.Save(ctx, cmd, result); err != nil {
			logger.WithError(err).Error("acting: could not record result")
		}
	}

	if err := s.publisher.Publish(ctx, eventFor(cmd, result, s.now())); err != nil {
		logger.WithError(err).Warn("acting: could not publish action event")
	}

	if refetch && result.Succeeded() && cmd.CustomerID != "" {
		recs, err := s.integrator.RefreshRecommendations(ctx, cmd.CustomerID)
		if err != nil {
			logger.WithError(err).Warn("acting: recommendations refetch failed")
			exec.DataIssues = append(exec.DataIssues, domain.DataIssue{Field: "recommendations", Message: err.Error()})
		} else {
			exec.Recommendations = recs
		}
	}

	return exec, nil
}

// resultFor maps the backend answer: 2xx accepted, 4xx rejected, anything
// else failed. Only a cancelled request is not worth retrying.
func (s *Service) resultFor(ctx context.Context, receipt *domain.ActionReceipt, err error) domain.ActionResult {
	if err == nil {
		executedAt := s.now()
		message := ""
		if receipt != nil {
			message = receipt.Message
			if t, parseErr := time.Parse(receiptTimeLayout, receipt.ExecutedAt); parseErr == nil {
				executedAt = t
			}
		}
		return domain.Accepted(message, executedAt)
	}

	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return domain.Failed("request cancelled", false)
	}

	if apiErr, ok := c360client.AsAPIError(err); ok && apiErr.ClientError() {
		return domain.Rejected(apiErr.Message)
	}

	return domain.Failed(err.Error(), true)
}

func eventFor(cmd domain.ActionCommand, result domain.ActionResult, now time.Time) domain.ActionEvent {
	return domain.ActionEvent{
		ActionID:       cmd.ActionID,
		IdempotencyKey: cmd.IdempotencyKey,
		CustomerID:     cmd.CustomerID,
		ActionType:     cmd.ActionType,
		Outcome:        result.Outcome,
		Reason:         result.Reason,
		RequestedBy:    cmd.RequestedBy,
		OccurredAt:     now,
	}
}
