package domain

import "time"

// ActionCommand asks the backend to execute a recommended action.
// The idempotency key makes re-submission of the same command safe.
type ActionCommand struct {
	ActionID       string         `json:"action_id"`
	IdempotencyKey string         `json:"idempotency_key"`
	CustomerID     string         `json:"customer_id,omitempty"`
	ActionType     string         `json:"action_type,omitempty"`
	Context        map[string]any `json:"context,omitempty"`
	RequestedBy    int            `json:"requested_by,omitempty"`
}

type ActionOutcome string

const (
	ActionAccepted ActionOutcome = "accepted"
	ActionRejected ActionOutcome = "rejected"
	ActionFailed   ActionOutcome = "failed"
)

type ActionResult struct {
	ActionID       string        `json:"action_id"`
	IdempotencyKey string        `json:"idempotency_key"`
	Outcome        ActionOutcome `json:"outcome"`
	Reason         string        `json:"reason,omitempty"`
	Retryable      bool          `json:"retryable"`
	Message        string        `json:"message,omitempty"`
	ExecutedAt     *time.Time    `json:"executed_at,omitempty"`
}

func Accepted(message string, executedAt time.Time) ActionResult {
	return ActionResult{Outcome: ActionAccepted, Message: message, ExecutedAt: &executedAt}
}

func Rejected(reason string) ActionResult {
	return ActionResult{Outcome: ActionRejected, Reason: reason}
}

func Failed(reason string, retryable bool) ActionResult {
	return ActionResult{Outcome: ActionFailed, Reason: reason, Retryable: retryable}
}

func (r ActionResult) Succeeded() bool {
	return r.Outcome == ActionAccepted
}

// ActionReceipt is the backend response to an execute call.
type ActionReceipt struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	ExecutedAt string `json:"executed_at"`
}

// ActionEvent is published once a command reaches a final result.
type ActionEvent struct {
	ActionID       string        `json:"action_id"`
	IdempotencyKey string        `json:"idempotency_key"`
	CustomerID     string        `json:"customer_id,omitempty"`
	ActionType     string        `json:"action_type,omitempty"`
	Outcome        ActionOutcome `json:"outcome"`
	Reason         string        `json:"reason,omitempty"`
	RequestedBy    int           `json:"requested_by,omitempty"`
	OccurredAt     time.Time     `json:"occurred_at"`
}
