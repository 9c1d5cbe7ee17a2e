package chatting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/mocks"
	"github.com/vfg2006/customer360-api/internal/config"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/pkg/log"
)

type fakeAssistant struct {
	enabled bool
	reply   string
	err     error
	history []domain.ChatTurn
}

func (f *fakeAssistant) Enabled() bool { return f.enabled }

func (f *fakeAssistant) Answer(_ context.Context, _ string, history []domain.ChatTurn, _ []domain.Customer) (string, error) {
	f.history = history
	return f.reply, f.err
}

var portfolio = []domain.Customer{
	{AccountID: "A", AccountName: "Acme Mining"},
	{AccountID: "B", AccountName: "Acorn Bank"},
	{AccountID: "C", AccountName: "Globex"},
}

func newTestService(t *testing.T, assistant Answerer) (*Service, *mocks.MockIntegrator) {
	t.Helper()
	log.SetupTestLogger()

	integrator := mocks.NewMockIntegrator(gomock.NewController(t))
	return NewService(&config.Config{}, integrator, assistant), integrator
}

func newSession(t *testing.T, svc *Service, integrator *mocks.MockIntegrator) *View {
	t.Helper()
	integrator.EXPECT().SearchCustomers(gomock.Any(), "").Return(portfolio, nil)
	view, err := svc.Create(context.Background())
	require.NoError(t, err)
	return view
}

func TestCreate_StartsWithGreeting(t *testing.T) {
	svc, integrator := newTestService(t, nil)
	view := newSession(t, svc, integrator)

	assert.NotEmpty(t, view.ID)
	require.Len(t, view.Messages, 1)
	assert.Equal(t, domain.ChatRoleAssistant, view.Messages[0].Role)
	assert.Equal(t, Greeting, view.Messages[0].Content)
}

func TestSend_PostsHistoryAndAppendsAnswer(t *testing.T) {
	svc, integrator := newTestService(t, nil)
	view := newSession(t, svc, integrator)

	integrator.EXPECT().QueryChatbot(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q domain.ChatQuery) (*domain.ChatAnswer, error) {
			assert.Equal(t, "who is at risk?", q.Query)
			require.Len(t, q.History, 1)
			assert.Equal(t, Greeting, q.History[0].Content)
			return &domain.ChatAnswer{Response: "**Globex** is critical"}, nil
		})

	view, err := svc.Send(context.Background(), view.ID, "  who is at risk?  ")
	require.NoError(t, err)
	require.Len(t, view.Messages, 3)
	assert.Equal(t, "who is at risk?", view.Messages[1].Content)
	assert.Equal(t, "**Globex** is critical", view.Messages[2].Content)
	assert.False(t, view.Loading)
}

func TestSend_BlankIsIgnored(t *testing.T) {
	svc, integrator := newTestService(t, nil)
	view := newSession(t, svc, integrator)

	view, err := svc.Send(context.Background(), view.ID, " \n ")
	require.NoError(t, err)
	assert.Len(t, view.Messages, 1)
}

func TestSend_FallsBackToAssistant(t *testing.T) {
	assistant := &fakeAssistant{enabled: true, reply: "from the assistant"}
	svc, integrator := newTestService(t, assistant)
	view := newSession(t, svc, integrator)

	integrator.EXPECT().QueryChatbot(gomock.Any(), gomock.Any()).Return(nil, errors.New("502"))

	view, err := svc.Send(context.Background(), view.ID, "hi")
	require.NoError(t, err)
	assert.Equal(t, "from the assistant", view.Messages[2].Content)
	assert.Len(t, assistant.history, 1)
}

func TestSend_ErrorReplyWhenEverythingFails(t *testing.T) {
	assistant := &fakeAssistant{enabled: true, err: errors.New("rate limited")}
	svc, integrator := newTestService(t, assistant)
	view := newSession(t, svc, integrator)

	integrator.EXPECT().QueryChatbot(gomock.Any(), gomock.Any()).Return(nil, errors.New("502"))

	view, err := svc.Send(context.Background(), view.ID, "hi")
	require.NoError(t, err)
	assert.Equal(t, ErrorReply, view.Messages[2].Content)
}

func TestReset_KeepsOnlyGreeting(t *testing.T) {
	svc, integrator := newTestService(t, nil)
	view := newSession(t, svc, integrator)

	integrator.EXPECT().QueryChatbot(gomock.Any(), gomock.Any()).Return(&domain.ChatAnswer{Response: "ok"}, nil)
	_, err := svc.Send(context.Background(), view.ID, "hi")
	require.NoError(t, err)

	view, err = svc.Reset(view.ID)
	require.NoError(t, err)
	require.Len(t, view.Messages, 1)
	assert.Equal(t, Greeting, view.Messages[0].Content)
}

// pendingReply makes the next chatbot call wait until release is closed.
func pendingReply(integrator *mocks.MockIntegrator) (started, release chan struct{}) {
	started = make(chan struct{})
	release = make(chan struct{})
	integrator.EXPECT().QueryChatbot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.ChatQuery) (*domain.ChatAnswer, error) {
			close(started)
			<-release
			return &domain.ChatAnswer{Response: "late answer"}, nil
		})
	return started, release
}

func TestSend_DeletedWhileWaiting(t *testing.T) {
	svc, integrator := newTestService(t, nil)
	view := newSession(t, svc, integrator)
	started, release := pendingReply(integrator)

	errs := make(chan error, 1)
	go func() {
		_, err := svc.Send(context.Background(), view.ID, "hello")
		errs <- err
	}()

	<-started
	require.NoError(t, svc.Delete(view.ID))
	close(release)

	assert.ErrorIs(t, <-errs, ErrSessionNotFound)
	_, err := svc.Get(view.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSend_ResetWhileWaiting(t *testing.T) {
	svc, integrator := newTestService(t, nil)
	view := newSession(t, svc, integrator)
	started, release := pendingReply(integrator)

	views := make(chan *View, 1)
	go func() {
		v, err := svc.Send(context.Background(), view.ID, "hello")
		assert.NoError(t, err)
		views <- v
	}()

	<-started
	_, err := svc.Reset(view.ID)
	require.NoError(t, err)
	close(release)

	got := <-views
	require.Len(t, got.Messages, 1)
	assert.Equal(t, Greeting, got.Messages[0].Content)
	assert.False(t, got.Loading)

	current, err := svc.Get(view.ID)
	require.NoError(t, err)
	assert.Len(t, current.Messages, 1)
}

func TestUnknownSession(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, svc.Delete("missing"), ErrSessionNotFound)
}

func TestCreate_CustomerListFailureDisablesMentions(t *testing.T) {
	svc, integrator := newTestService(t, nil)
	integrator.EXPECT().SearchCustomers(gomock.Any(), "").Return(nil, errors.New("down"))

	view, err := svc.Create(context.Background())
	require.NoError(t, err)

	view, err = svc.SetInput(view.ID, "@ac", 3)
	require.NoError(t, err)
	assert.Nil(t, view.Mention)
}

func TestKeyDown_MentionFlow(t *testing.T) {
	svc, integrator := newTestService(t, nil)
	ctx := context.Background()
	view := newSession(t, svc, integrator)

	view, err := svc.SetInput(view.ID, "how is @ac", 10)
	require.NoError(t, err)
	require.NotNil(t, view.Mention)
	assert.Len(t, view.Mention.Suggestions, 2)
	assert.Equal(t, 0, view.Mention.Highlight)

	res, err := svc.KeyDown(ctx, view.ID, Key{Key: KeyArrowDown})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Session.Mention.Highlight)

	res, err = svc.KeyDown(ctx, view.ID, Key{Key: KeyArrowDown})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Session.Mention.Highlight)

	res, err = svc.KeyDown(ctx, view.ID, Key{Key: KeyEnter})
	require.NoError(t, err)
	assert.Equal(t, KeySelected, res.Action)
	assert.Equal(t, "how is @Acorn Bank ", res.Session.Input)
	assert.Nil(t, res.Session.Mention)

	integrator.EXPECT().QueryChatbot(gomock.Any(), gomock.Any()).Return(&domain.ChatAnswer{Response: "fine"}, nil)

	res, err = svc.KeyDown(ctx, view.ID, Key{Key: KeyEnter})
	require.NoError(t, err)
	assert.Equal(t, KeySent, res.Action)
	assert.Equal(t, "how is @Acorn Bank", res.Session.Messages[1].Content)
	assert.Empty(t, res.Session.Input)
}

func TestKeyDown_EscapeAndShiftEnter(t *testing.T) {
	svc, integrator := newTestService(t, nil)
	ctx := context.Background()
	view := newSession(t, svc, integrator)

	_, err := svc.SetInput(view.ID, "@glo", 4)
	require.NoError(t, err)

	res, err := svc.KeyDown(ctx, view.ID, Key{Key: KeyEscape})
	require.NoError(t, err)
	assert.Equal(t, KeyClosed, res.Action)
	assert.Nil(t, res.Session.Mention)

	res, err = svc.KeyDown(ctx, view.ID, Key{Key: KeyEnter, Shift: true})
	require.NoError(t, err)
	assert.Equal(t, KeyNewline, res.Action)
	assert.Equal(t, "@glo\n", res.Session.Input)
	assert.Len(t, res.Session.Messages, 1)
}
