package chatting

import (
	"strings"

	"github.com/vfg2006/customer360-api/internal/domain"
)

// Mention is an open @-mention: the rune offset of the @ and the customers
// whose name starts with what follows it.
type Mention struct {
	Start       int                      `json:"start"`
	Suggestions []domain.CustomerSummary `json:"suggestions"`
	Highlight   int                      `json:"highlight"`
}

// Mentions looks for an @ before cursor that is not yet followed by a space
// or newline. It returns nil when there is nothing to suggest.
func Mentions(input string, cursor int, customers []domain.Customer) *Mention {
	runes := []rune(input)
	if cursor < 0 || cursor > len(runes) {
		cursor = len(runes)
	}
	before := string(runes[:cursor])

	at := strings.LastIndex(before, "@")
	if at < 0 {
		return nil
	}

	typed := before[at+1:]
	if strings.ContainsAny(typed, " \n") {
		return nil
	}
	typed = strings.ToLower(typed)

	suggestions := make([]domain.CustomerSummary, 0)
	for i := range customers {
		if strings.HasPrefix(strings.ToLower(customers[i].AccountName), typed) {
			suggestions = append(suggestions, customers[i].Summary())
		}
	}
	if len(suggestions) == 0 {
		return nil
	}

	return &Mention{
		Start:       len([]rune(before[:at])),
		Suggestions: suggestions,
	}
}

// complete replaces the mention between start and cursor with "@name ".
func complete(input string, start, cursor int, name string) (string, int) {
	runes := []rune(input)
	if cursor < start || cursor > len(runes) {
		cursor = len(runes)
	}

	replacement := []rune("@" + name + " ")
	out := make([]rune, 0, len(runes)+len(replacement))
	out = append(out, runes[:start]...)
	out = append(out, replacement...)
	out = append(out, runes[cursor:]...)

	return string(out), start + len(replacement)
}
