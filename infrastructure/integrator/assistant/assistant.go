package assistant

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"

	"github.com/vfg2006/customer360-api/internal/config"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/pkg/log"
)

const (
	defaultModel         = "gpt-4o-mini"
	defaultHistoryWindow = 6
	temperature          = 0.7
	maxTokens            = 500
	topN                 = 5
)

var ErrDisabled = errors.New("assistant: no OpenAI API key configured")

// Completer is the part of the OpenAI client the assistant needs.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Assistant answers portfolio questions directly against OpenAI, using a
// summary of the customer list as the system prompt.
type Assistant struct {
	completer     Completer
	model         string
	historyWindow int
}

// New returns an assistant backed by the OpenAI API. It is disabled when no
// API key is configured.
func New(cfg *config.Config) *Assistant {
	var completer Completer
	if cfg.Chat.OpenAIAPIKey != "" {
		completer = openai.NewClient(cfg.Chat.OpenAIAPIKey)
	}
	return NewWithCompleter(cfg, completer)
}

func NewWithCompleter(cfg *config.Config, completer Completer) *Assistant {
	model := cfg.Chat.OpenAIModel
	if model == "" {
		model = defaultModel
	}
	window := cfg.Chat.HistoryWindow
	if window <= 0 {
		window = defaultHistoryWindow
	}

	return &Assistant{
		completer:     completer,
		model:         model,
		historyWindow: window,
	}
}

func (a *Assistant) Enabled() bool {
	return a != nil && a.completer != nil
}

// Answer asks the model about customers. Only the last historyWindow turns
// of history are sent.
func (a *Assistant) Answer(ctx context.Context, question string, history []domain.ChatTurn, customers []domain.Customer) (string, error) {
	if !a.Enabled() {
		return "", ErrDisabled
	}

	messages := make([]openai.ChatCompletionMessage, 0, a.historyWindow+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: BuildPrompt(Summarize(customers)),
	})

	if len(history) > a.historyWindow {
		history = history[len(history)-a.historyWindow:]
	}
	for _, turn := range history {
		if turn.Content == "" {
			continue
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    roleFor(turn.Role),
			Content: turn.Content,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: question,
	})

	resp, err := a.completer.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", errors.Wrap(err, "assistant: chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("assistant: empty completion")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"model":  a.model,
		"tokens": resp.Usage.TotalTokens,
	}).Debug("assistant: answered")

	return resp.Choices[0].Message.Content, nil
}

func roleFor(role domain.ChatRole) string {
	if role == domain.ChatRoleAssistant {
		return openai.ChatMessageRoleAssistant
	}
	return openai.ChatMessageRoleUser
}

// Stats is the portfolio summary the prompt is built from.
type Stats struct {
	TotalCustomers     int
	TotalRevenue       float64
	AvgHealthScore     float64
	HealthDistribution map[string]int
	RegionDistribution map[string]int
	AvgChurnRisk       float64
	HighRiskCustomers  int
	AvgNPS             float64
	AvgCSAT            float64
	AvgCES             float64
	AvgCLV             float64
	TotalCLV           float64
	TopRevenue         []domain.Customer
	TopAtRisk          []domain.Customer
}

func Summarize(customers []domain.Customer) Stats {
	s := Stats{
		TotalCustomers:     len(customers),
		HealthDistribution: map[string]int{},
		RegionDistribution: map[string]int{},
	}

	var health, churn, nps, csat, ces float64
	atRisk := make([]domain.Customer, 0)

	for _, c := range customers {
		s.TotalRevenue += c.AnnualRevenue
		s.TotalCLV += c.CustomerLifetimeValue
		health += c.HealthScore
		churn += c.ChurnRiskScore
		nps += c.NPSScore
		csat += c.CSATScore
		ces += c.CESScore

		s.HealthDistribution[string(c.HealthStatus)]++
		s.RegionDistribution[c.Region]++

		if c.ChurnRiskLevel == domain.ChurnHigh {
			s.HighRiskCustomers++
		}
		if c.HealthStatus.IsAtRisk() {
			atRisk = append(atRisk, c)
		}
	}

	if n := float64(len(customers)); n > 0 {
		s.AvgHealthScore = health / n
		s.AvgChurnRisk = churn / n
		s.AvgNPS = nps / n
		s.AvgCSAT = csat / n
		s.AvgCES = ces / n
		s.AvgCLV = s.TotalCLV / n
	}

	byRevenue := append([]domain.Customer(nil), customers...)
	sort.SliceStable(byRevenue, func(i, j int) bool {
		return byRevenue[i].AnnualRevenue > byRevenue[j].AnnualRevenue
	})
	s.TopRevenue = head(byRevenue, topN)

	sort.SliceStable(atRisk, func(i, j int) bool {
		return atRisk[i].ChurnRiskScore > atRisk[j].ChurnRiskScore
	})
	s.TopAtRisk = head(atRisk, topN)

	return s
}

func head(customers []domain.Customer, n int) []domain.Customer {
	if len(customers) > n {
		return customers[:n]
	}
	return customers
}

// BuildPrompt renders the system prompt for s.
func BuildPrompt(s Stats) string {
	var b strings.Builder

	b.WriteString("You are a helpful AI assistant for a Customer 360° analytics platform for Cassava Technologies.\n")
	b.WriteString("You have access to customer data and can answer questions about customer health, revenue, regions, satisfaction metrics, and recommendations.\n\n")

	b.WriteString("Current Data Summary:\n")
	fmt.Fprintf(&b, "- Total Customers: %d\n", s.TotalCustomers)
	fmt.Fprintf(&b, "- Total Annual Revenue: %s\n", dollars(s.TotalRevenue))
	fmt.Fprintf(&b, "- Average Health Score: %.1f/100\n", s.AvgHealthScore)
	fmt.Fprintf(&b, "- Health Distribution: %s\n", distribution(s.HealthDistribution))
	fmt.Fprintf(&b, "- Region Distribution: %s\n", distribution(s.RegionDistribution))
	fmt.Fprintf(&b, "- High Risk Customers: %d\n", s.HighRiskCustomers)
	fmt.Fprintf(&b, "- Average Churn Risk: %.1f%%\n\n", s.AvgChurnRisk)

	b.WriteString("Customer Satisfaction Metrics:\n")
	fmt.Fprintf(&b, "- Average NPS (Net Promoter Score): %.1f\n", s.AvgNPS)
	fmt.Fprintf(&b, "- Average CSAT (Customer Satisfaction): %.1f/100\n", s.AvgCSAT)
	fmt.Fprintf(&b, "- Average CES (Customer Effort Score): %.1f/10 (measures ease of doing business)\n", s.AvgCES)
	fmt.Fprintf(&b, "- Average CLV (Customer Lifetime Value): %s\n", dollars(s.AvgCLV))
	fmt.Fprintf(&b, "- Total CLV: %s\n\n", dollars(s.TotalCLV))

	b.WriteString("Top 5 Customers by Revenue:\n")
	for _, c := range s.TopRevenue {
		fmt.Fprintf(&b, "- %s: %s (%s, %s)\n", c.AccountName, dollars(c.AnnualRevenue), c.HealthStatus, c.Region)
	}

	b.WriteString("\nTop 5 At-Risk Customers:\n")
	for _, c := range s.TopAtRisk {
		fmt.Fprintf(&b, "- %s: %s (Health: %.1f, Churn Risk: %.1f%%, %s)\n",
			c.AccountName, c.HealthStatus, c.HealthScore, c.ChurnRiskScore, c.Region)
	}

	b.WriteString("\nAnswer the user's question based on this data. Be concise, specific, and actionable.\n")
	b.WriteString("Use **bold** for emphasis on key metrics and customer names.\n")
	b.WriteString("If asked for recommendations, provide 2-3 specific, data-driven suggestions.\n")
	b.WriteString("If the question cannot be answered with the available data, politely explain what information is available.")

	return b.String()
}

func dollars(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// distribution renders counts largest first, ties by name.
func distribution(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %d", k, counts[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
