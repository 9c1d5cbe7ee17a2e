package handler

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/mocks"
	"github.com/vfg2006/customer360-api/internal/api/handler/router"
	"github.com/vfg2006/customer360-api/internal/config"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/internal/usecases/chatting"
	"github.com/vfg2006/customer360-api/pkg/apiErrors"
	"github.com/vfg2006/customer360-api/pkg/middleware"
)

func chatRoutes(integrator *mocks.MockIntegrator) []router.Route {
	return Chat(chatting.NewService(&config.Config{}, integrator, nil))
}

func createSession(t *testing.T, routes []router.Route) chatting.View {
	t.Helper()

	rec := serve(t, routes, testRequest{method: http.MethodPost, path: "/v1/chat/sessions", roleID: middleware.RoleAnalyst})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[chatting.View](t, rec)
}

func TestChatSession(t *testing.T) {
	integrator := newIntegrator(t)
	routes := chatRoutes(integrator)

	integrator.EXPECT().SearchCustomers(gomock.Any(), "").Return([]domain.Customer{
		{AccountID: "ACC-1", AccountName: "Econet Wireless"},
		{AccountID: "ACC-2", AccountName: "Delta Beverages"},
	}, nil)

	session := createSession(t, routes)
	require.Len(t, session.Messages, 1)
	assert.Equal(t, chatting.Greeting, session.Messages[0].Content)

	integrator.EXPECT().QueryChatbot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, q domain.ChatQuery) (*domain.ChatAnswer, error) {
			assert.Equal(t, "who is at risk?", q.Query)
			require.Len(t, q.History, 1)
			return &domain.ChatAnswer{Response: "Delta Beverages is At-Risk."}, nil
		})

	rec := serve(t, routes, testRequest{
		method: http.MethodPost,
		path:   "/v1/chat/sessions/" + session.ID + "/messages",
		body:   `{"text":"  who is at risk?  "}`,
		roleID: middleware.RoleAnalyst,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	view := decode[chatting.View](t, rec)
	require.Len(t, view.Messages, 3)
	assert.Equal(t, domain.ChatRoleUser, view.Messages[1].Role)
	assert.Equal(t, "Delta Beverages is At-Risk.", view.Messages[2].Content)
	assert.False(t, view.Loading)

	rec = serve(t, routes, testRequest{
		method: http.MethodPost,
		path:   "/v1/chat/sessions/" + session.ID + "/reset",
		roleID: middleware.RoleAnalyst,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, decode[chatting.View](t, rec).Messages, 1)

	rec = serve(t, routes, testRequest{
		method: http.MethodDelete,
		path:   "/v1/chat/sessions/" + session.ID,
		roleID: middleware.RoleAnalyst,
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(t, routes, testRequest{
		method: http.MethodGet,
		path:   "/v1/chat/sessions/" + session.ID,
		roleID: middleware.RoleAnalyst,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrSessionNotFound, errorCodeOf(t, rec))
}

func TestSendChatMessage_BackendFailure(t *testing.T) {
	integrator := newIntegrator(t)
	routes := chatRoutes(integrator)

	integrator.EXPECT().SearchCustomers(gomock.Any(), "").Return(nil, errors.New("unavailable"))
	session := createSession(t, routes)

	integrator.EXPECT().QueryChatbot(gomock.Any(), gomock.Any()).Return(nil, errors.New("chatbot down"))

	rec := serve(t, routes, testRequest{
		method: http.MethodPost,
		path:   "/v1/chat/sessions/" + session.ID + "/messages",
		body:   `{"text":"hello"}`,
		roleID: middleware.RoleAnalyst,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	view := decode[chatting.View](t, rec)
	require.Len(t, view.Messages, 3)
	assert.Equal(t, chatting.ErrorReply, view.Messages[2].Content)
}

func TestChatMentions(t *testing.T) {
	integrator := newIntegrator(t)
	routes := chatRoutes(integrator)

	integrator.EXPECT().SearchCustomers(gomock.Any(), "").Return([]domain.Customer{
		{AccountID: "ACC-1", AccountName: "Econet Wireless"},
		{AccountID: "ACC-2", AccountName: "Delta Beverages"},
	}, nil)
	session := createSession(t, routes)

	rec := serve(t, routes, testRequest{
		method: http.MethodPost,
		path:   "/v1/chat/sessions/" + session.ID + "/input",
		body:   `{"input":"tell me about @eco","cursor":18}`,
		roleID: middleware.RoleAnalyst,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	view := decode[chatting.View](t, rec)
	require.NotNil(t, view.Mention)
	require.Len(t, view.Mention.Suggestions, 1)

	rec = serve(t, routes, testRequest{
		method: http.MethodPost,
		path:   "/v1/chat/sessions/" + session.ID + "/keys",
		body:   `{"key":"Enter"}`,
		roleID: middleware.RoleAnalyst,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	result := decode[chatting.KeyResult](t, rec)
	assert.Equal(t, chatting.KeySelected, result.Action)
	assert.Equal(t, "tell me about @Econet Wireless ", result.Session.Input)
	assert.Nil(t, result.Session.Mention)
}

func TestChatKeyDown_Validation(t *testing.T) {
	routes := chatRoutes(newIntegrator(t))

	rec := serve(t, routes, testRequest{
		method: http.MethodPost,
		path:   "/v1/chat/sessions/missing/keys",
		body:   `{}`,
		roleID: middleware.RoleAnalyst,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, routes, testRequest{
		method: http.MethodPost,
		path:   "/v1/chat/sessions/missing/keys",
		body:   `{"key":"Enter"}`,
		roleID: middleware.RoleAnalyst,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrSessionNotFound, errorCodeOf(t, rec))
}
