package acting

import (
	"errors"
	"sync"
	"time"

	"github.com/vfg2006/customer360-api/internal/domain"
)

const (
	SuccessBanner = "✓ Action executed successfully! Task has been created and assigned."
	ErrorBanner   = "✗ Failed to execute action. Please try again."

	defaultBannerDuration = 5 * time.Second
)

var (
	ErrActionInFlight = errors.New("action already in progress")
	ErrBannerShowing  = errors.New("action result is still shown")
)

type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

type Banner struct {
	Kind      BannerKind `json:"kind"`
	Text      string     `json:"text"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// State is what the action button shows. The button is disabled while the
// request runs and while a banner is visible.
type State struct {
	ActionID       string  `json:"action_id"`
	InFlight       bool    `json:"in_flight"`
	ButtonDisabled bool    `json:"button_disabled"`
	Banner         *Banner `json:"banner,omitempty"`
}

type entry struct {
	inFlight bool
	banner   *Banner
}

// Tracker keeps the transient button state per action id. Expired banners
// are dropped when the state is read and on every Start and Finish.
type Tracker struct {
	mu       sync.Mutex
	entries  map[string]*entry
	duration time.Duration
	now      func() time.Time
}

func NewTracker(bannerDuration time.Duration) *Tracker {
	if bannerDuration <= 0 {
		bannerDuration = defaultBannerDuration
	}
	return &Tracker{
		entries:  map[string]*entry{},
		duration: bannerDuration,
		now:      time.Now,
	}
}

// Start marks actionID as running. It fails while the button is disabled:
// a previous run is in flight or its banner is still visible.
func (t *Tracker) Start(actionID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pruneLocked()

	if e, ok := t.entries[actionID]; ok {
		if e.inFlight {
			return ErrActionInFlight
		}
		return ErrBannerShowing
	}
	t.entries[actionID] = &entry{inFlight: true}
	return nil
}

// Finish ends the run and shows the banner for result.
func (t *Tracker) Finish(actionID string, result domain.ActionResult) State {
	t.mu.Lock()
	defer t.mu.Unlock()

	banner := &Banner{Kind: BannerError, Text: ErrorBanner, ExpiresAt: t.now().Add(t.duration)}
	if result.Succeeded() {
		banner.Kind = BannerSuccess
		banner.Text = SuccessBanner
	}

	t.pruneLocked()
	t.entries[actionID] = &entry{banner: banner}
	return t.stateLocked(actionID)
}

// Len is the number of actions with a running request or a visible banner.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pruneLocked()
	return len(t.entries)
}

func (t *Tracker) pruneLocked() {
	now := t.now()
	for id, e := range t.entries {
		if e.banner != nil && !now.Before(e.banner.ExpiresAt) {
			delete(t.entries, id)
		}
	}
}

func (t *Tracker) State(actionID string) State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.stateLocked(actionID)
}

func (t *Tracker) stateLocked(actionID string) State {
	s := State{ActionID: actionID}

	e, ok := t.entries[actionID]
	if !ok {
		return s
	}

	if e.banner != nil && !t.now().Before(e.banner.ExpiresAt) {
		delete(t.entries, actionID)
		return s
	}

	s.InFlight = e.inFlight
	s.Banner = e.banner
	s.ButtonDisabled = e.inFlight || e.banner != nil
	return s
}
