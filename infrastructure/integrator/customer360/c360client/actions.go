package c360client

import (
	"context"
	"net/http"

	"github.com/vfg2006/customer360-api/internal/domain"
)

// IdempotencyHeader lets the backend drop a command it has already executed.
const IdempotencyHeader = "Idempotency-Key"

func (c *C360Client) ExecuteAction(ctx context.Context, actionID, idempotencyKey string) (*domain.ActionReceipt, error) {
	op := "execute action"

	headers := map[string]string{}
	if idempotencyKey != "" {
		headers[IdempotencyHeader] = idempotencyKey
	}

	data, err := c.do(ctx, request{
		op:      op,
		method:  http.MethodPost,
		path:    "/actions/" + actionID + "/execute",
		body:    map[string]string{},
		headers: headers,
	})
	if err != nil {
		return nil, err
	}

	var receipt domain.ActionReceipt
	if len(data) == 0 {
		return &receipt, nil
	}
	if err := c.decode(op, data, "", false, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}
