package chatting

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360"
	"github.com/vfg2006/customer360-api/internal/config"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/pkg/log"
	"github.com/vfg2006/customer360-api/pkg/utils"
)

const (
	Greeting = "Hello! I'm your One Cassava Customer 360 Assistant. I can help you understand your customer data!\n\n" +
		"Ask me about:\n" +
		"- Customer health and risk\n" +
		"- Revenue and top customers\n" +
		"- Regional distribution\n" +
		"- Satisfaction metrics (NPS, CSAT, CES, CLV)\n" +
		"- Specific customer information\n\n" +
		"What would you like to know?"

	ErrorReply = "Sorry, I encountered an error processing your request. Please try again."

	defaultSessionTTL = 30 * time.Minute
	sessionIDSize     = 21
	messageIDSize     = 12
)

var (
	ErrSessionNotFound = errors.New("chat session not found")
	ErrSessionBusy     = errors.New("chat session is waiting for an answer")
)

// Answerer is the direct assistant used when the backend chatbot fails.
type Answerer interface {
	Enabled() bool
	Answer(ctx context.Context, question string, history []domain.ChatTurn, customers []domain.Customer) (string, error)
}

type session struct {
	mu        sync.Mutex
	id        string
	messages  []domain.ChatMessage
	customers []domain.Customer
	input     string
	cursor    int
	mention   *Mention
	loading   bool

	// generation changes on every reset; closed is set on delete
	generation uint64
	closed     bool
}

// View is the serializable state of a session.
type View struct {
	ID       string               `json:"id"`
	Messages []domain.ChatMessage `json:"messages"`
	Loading  bool                 `json:"loading"`
	Input    string               `json:"input"`
	Cursor   int                  `json:"cursor"`
	Mention  *Mention             `json:"mention,omitempty"`
}

type Chatter interface {
	Create(ctx context.Context) (*View, error)
	Get(id string) (*View, error)
	Reset(id string) (*View, error)
	Delete(id string) error
	Send(ctx context.Context, id, text string) (*View, error)
	SetInput(id, input string, cursor int) (*View, error)
	KeyDown(ctx context.Context, id string, key Key) (*KeyResult, error)
}

type Service struct {
	integrator customer360.Integrator
	assistant  Answerer
	sessions   *gocache.Cache
	now        func() time.Time
}

func NewService(cfg *config.Config, integrator customer360.Integrator, assistant Answerer) *Service {
	ttl := cfg.Chat.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &Service{
		integrator: integrator,
		assistant:  assistant,
		sessions:   gocache.New(ttl, ttl/2),
		now:        time.Now,
	}
}

// Create starts a session holding only the greeting. The customer list for
// mentions is loaded once here; if it fails mentions stay empty.
func (s *Service) Create(ctx context.Context) (*View, error) {
	id, err := utils.GenerateID(sessionIDSize)
	if err != nil {
		return nil, err
	}

	customers, err := s.integrator.SearchCustomers(ctx, "")
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("chatting: customer list unavailable, mentions disabled")
		customers = []domain.Customer{}
	}

	sess := &session{
		id:        id,
		messages:  []domain.ChatMessage{s.greeting()},
		customers: customers,
	}
	s.sessions.SetDefault(id, sess)

	log.ForContext(ctx).WithField("session_id", id).Debug("chatting: session created")

	return sess.view(), nil
}

func (s *Service) Get(id string) (*View, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view(), nil
}

// Reset drops every message but a fresh greeting and clears the input.
func (s *Service) Reset(id string) (*View, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.messages = []domain.ChatMessage{s.greeting()}
	sess.input = ""
	sess.cursor = 0
	sess.mention = nil
	sess.loading = false
	sess.generation++

	return sess.view(), nil
}

func (s *Service) Delete(id string) error {
	sess, err := s.session(id)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.closed = true
	s.sessions.Delete(id)
	return nil
}

// Send posts text with the prior messages as history. Blank text is ignored.
// A backend failure falls back to the direct assistant, then to ErrorReply.
// A reply that arrives after the session was reset is dropped, and one that
// arrives after it was deleted or expired returns ErrSessionNotFound.
func (s *Service) Send(ctx context.Context, id, text string) (*View, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)

	sess.mu.Lock()
	if text == "" {
		defer sess.mu.Unlock()
		return sess.view(), nil
	}
	if sess.loading {
		sess.mu.Unlock()
		return nil, ErrSessionBusy
	}

	history := make([]domain.ChatTurn, 0, len(sess.messages))
	for _, m := range sess.messages {
		history = append(history, domain.ChatTurn{Role: m.Role, Content: m.Content})
	}
	customers := sess.customers
	generation := sess.generation

	sess.messages = append(sess.messages, s.message(domain.ChatRoleUser, text))
	sess.input = ""
	sess.cursor = 0
	sess.mention = nil
	sess.loading = true
	sess.mu.Unlock()

	reply := s.answer(ctx, text, history, customers)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if current, err := s.session(id); sess.closed || err != nil || current != sess {
		log.ForContext(ctx).WithField("session_id", id).Info("chatting: session gone before the reply arrived")
		return nil, ErrSessionNotFound
	}
	if sess.generation != generation {
		return sess.view(), nil
	}

	sess.messages = append(sess.messages, s.message(domain.ChatRoleAssistant, reply))
	sess.loading = false
	s.sessions.SetDefault(id, sess)

	return sess.view(), nil
}

func (s *Service) answer(ctx context.Context, text string, history []domain.ChatTurn, customers []domain.Customer) string {
	logger := log.ForContext(ctx)

	answer, err := s.integrator.QueryChatbot(ctx, domain.ChatQuery{Query: text, History: history})
	if err == nil {
		return answer.Response
	}
	logger.WithError(err).Warn("chatting: backend chatbot failed")

	if s.assistant == nil || !s.assistant.Enabled() {
		return ErrorReply
	}

	reply, err := s.assistant.Answer(ctx, text, history, customers)
	if err != nil {
		logger.WithError(err).Error("chatting: assistant fallback failed")
		return ErrorReply
	}
	return reply
}

// SetInput records the text box and recomputes the mention list.
func (s *Service) SetInput(id, input string, cursor int) (*View, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.setInput(input, cursor)
	return sess.view(), nil
}

func (s *Service) session(id string) (*session, error) {
	v, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return v.(*session), nil
}

func (s *Service) greeting() domain.ChatMessage {
	return s.message(domain.ChatRoleAssistant, Greeting)
}

func (s *Service) message(role domain.ChatRole, content string) domain.ChatMessage {
	id, err := utils.GenerateID(messageIDSize)
	if err != nil {
		id = utils.NewIdempotencyKey()
	}
	return domain.ChatMessage{ID: id, Role: role, Content: content, Timestamp: s.now()}
}

func (sess *session) setInput(input string, cursor int) {
	runes := len([]rune(input))
	if cursor < 0 || cursor > runes {
		cursor = runes
	}
	sess.input = input
	sess.cursor = cursor
	sess.mention = Mentions(input, cursor, sess.customers)
}

func (sess *session) view() *View {
	messages := make([]domain.ChatMessage, len(sess.messages))
	copy(messages, sess.messages)

	var mention *Mention
	if sess.mention != nil {
		m := *sess.mention
		mention = &m
	}

	return &View{
		ID:       sess.id,
		Messages: messages,
		Loading:  sess.loading,
		Input:    sess.input,
		Cursor:   sess.cursor,
		Mention:  mention,
	}
}
