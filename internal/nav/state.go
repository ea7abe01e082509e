package nav

import (
	"sync"
	"time"

	"github.com/ababenko/portfolio/internal/playback"
)

// Transition describes what a top-level section change requires of the page.
type Transition struct {
	From             string `json:"from"`
	To               string `json:"to"`
	RestartHomeVideo bool   `json:"restartHomeVideo"`
	ResetGifs        bool   `json:"resetGifs"`

	// Attention is the pulse for the active about tab, claimed on entering
	// the about section.
	Attention *AttentionPlan `json:"-"`
}

// UIState is one visitor's page state: active tabs, current gallery category,
// one-shot animation flags and GIF playback. Safe for concurrent use.
type UIState struct {
	mu        sync.Mutex
	sections  *TabGroup
	about     *TabGroup
	portfolio *TabGroup
	category  string
	attention *Attention
	gifs      *playback.GifGrid
}

// NewUIState starts every group on its first tab.
func NewUIState(categoryIDs []string, gifs *playback.GifGrid, attentionDelay time.Duration) *UIState {
	s := &UIState{
		sections:  NewTabGroup("sections", Sections...),
		about:     NewTabGroup("about", AboutTabs...),
		portfolio: NewTabGroup("portfolio", categoryIDs...),
		attention: NewAttention(attentionDelay),
		gifs:      gifs,
	}
	s.category = s.portfolio.Active()
	return s
}

// ShowSection switches the top-level section. Going to home always restarts
// the hero video; leaving the portfolio while a GIF plays resets the GIFs.
// Entering about shows its active tab, so that tab's pulse is claimed.
func (s *UIState) ShowSection(id string) (Transition, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	from := s.sections.Active()
	if !s.sections.Select(id) {
		return Transition{}, false
	}
	t := Transition{From: from, To: id, RestartHomeVideo: id == "home"}
	if id != "portfolio" && s.gifs != nil && s.gifs.Playing() {
		s.gifs.Reset()
		t.ResetGifs = true
	}
	if id == "about" {
		if plan, ok := s.attention.Claim(s.about.Active()); ok {
			t.Attention = &plan
		}
	}
	return t, true
}

// SelectAboutTab switches the about sub-tab and claims its one-shot pulse.
func (s *UIState) SelectAboutTab(id string) (*AttentionPlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.about.Select(id) {
		return nil, false
	}
	if plan, ok := s.attention.Claim(id); ok {
		return &plan, true
	}
	return nil, true
}

// SetCategory records the current gallery category. Unknown ids are recorded
// too; only declared ids move the active tab.
func (s *UIState) SetCategory(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = id
	s.portfolio.Select(id)
}

// VisibilityChanged handles page focus. Regaining focus resets the GIFs.
func (s *UIState) VisibilityChanged(visible bool) bool {
	if !visible || s.gifs == nil {
		return false
	}
	s.gifs.Reset()
	return true
}

func (s *UIState) CurrentCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}

func (s *UIState) Section() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sections.Active()
}

func (s *UIState) AboutTab() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.about.Active()
}

func (s *UIState) AttentionShown(tab string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attention.Shown(tab)
}

// Gifs is the visitor's GIF grid; it has its own lock.
func (s *UIState) Gifs() *playback.GifGrid { return s.gifs }
