package chatting

import (
	"context"
)

const (
	KeyArrowDown = "ArrowDown"
	KeyArrowUp   = "ArrowUp"
	KeyEnter     = "Enter"
	KeyEscape    = "Escape"
)

// Key is a key press in the chat text box.
type Key struct {
	Key   string `json:"key"`
	Shift bool   `json:"shift"`
}

type KeyAction string

const (
	KeyIgnored  KeyAction = "ignored"
	KeyMoved    KeyAction = "moved"
	KeySelected KeyAction = "selected"
	KeyClosed   KeyAction = "closed"
	KeySent     KeyAction = "sent"
	KeyNewline  KeyAction = "newline"
)

type KeyResult struct {
	Action  KeyAction `json:"action"`
	Session *View     `json:"session"`
}

// KeyDown applies a key press. With suggestions open the arrows move the
// highlight, Enter picks it and Escape closes the list. Otherwise Enter
// sends the input and Shift+Enter inserts a newline.
func (s *Service) KeyDown(ctx context.Context, id string, key Key) (*KeyResult, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()

	if m := sess.mention; m != nil {
		action := KeyIgnored
		switch {
		case key.Key == KeyArrowDown:
			if m.Highlight < len(m.Suggestions)-1 {
				m.Highlight++
			}
			action = KeyMoved
		case key.Key == KeyArrowUp:
			if m.Highlight > 0 {
				m.Highlight--
			}
			action = KeyMoved
		case key.Key == KeyEnter && !key.Shift:
			picked := m.Suggestions[m.Highlight]
			sess.input, sess.cursor = complete(sess.input, m.Start, sess.cursor, picked.AccountName)
			sess.mention = nil
			action = KeySelected
		case key.Key == KeyEscape:
			sess.mention = nil
			action = KeyClosed
		}
		if action != KeyIgnored {
			defer sess.mu.Unlock()
			return &KeyResult{Action: action, Session: sess.view()}, nil
		}
	}

	if key.Key != KeyEnter {
		defer sess.mu.Unlock()
		return &KeyResult{Action: KeyIgnored, Session: sess.view()}, nil
	}

	if key.Shift {
		defer sess.mu.Unlock()
		runes := []rune(sess.input)
		input := string(runes[:sess.cursor]) + "\n" + string(runes[sess.cursor:])
		sess.setInput(input, sess.cursor+1)
		return &KeyResult{Action: KeyNewline, Session: sess.view()}, nil
	}

	input := sess.input
	sess.mu.Unlock()

	view, err := s.Send(ctx, id, input)
	if err != nil {
		return nil, err
	}
	return &KeyResult{Action: KeySent, Session: view}, nil
}
