package c360client

import (
	"context"
	"net/http"

	"github.com/vfg2006/customer360-api/internal/domain"
)

// QueryChatbot posts a question plus the prior conversation to the backend assistant.
func (c *C360Client) QueryChatbot(ctx context.Context, query domain.ChatQuery) (*domain.ChatAnswer, error) {
	op := "query chatbot"

	if query.History == nil {
		query.History = []domain.ChatTurn{}
	}

	data, err := c.do(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   "/chatbot/query",
		body:   query,
	})
	if err != nil {
		return nil, err
	}

	var answer domain.ChatAnswer
	if err := c.decode(op, data, "", false, &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}
