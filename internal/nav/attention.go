package nav

import (
	"encoding/json"
	"time"
)

// PulseStep sets the target's scale at At after the plan's delay elapses.
type PulseStep struct {
	At    time.Duration
	Scale float64
}

// AttentionPlan is the one-shot pulse played on the first collapsible toggle
// of a tab. Target is a selector re-queried when the plan fires.
type AttentionPlan struct {
	Tab    string
	Target string
	Delay  time.Duration
	Steps  []PulseStep
}

// MarshalJSON encodes durations as milliseconds for the browser.
func (p AttentionPlan) MarshalJSON() ([]byte, error) {
	type step struct {
		AtMs  int64   `json:"atMs"`
		Scale float64 `json:"scale"`
	}
	steps := make([]step, 0, len(p.Steps))
	for _, s := range p.Steps {
		steps = append(steps, step{AtMs: s.At.Milliseconds(), Scale: s.Scale})
	}
	return json.Marshal(struct {
		Tab     string `json:"tab"`
		Target  string `json:"target"`
		DelayMs int64  `json:"delayMs"`
		Steps   []step `json:"steps"`
	}{p.Tab, p.Target, p.Delay.Milliseconds(), steps})
}

var attentionTargets = map[string]string{
	"work":      "#work-tab .experience-toggle",
	"education": "#education-tab .education-toggle",
}

var pulseSteps = []PulseStep{
	{At: 100 * time.Millisecond, Scale: 1.05},
	{At: 300 * time.Millisecond, Scale: 1.0},
	{At: 500 * time.Millisecond, Scale: 1.05},
	{At: 700 * time.Millisecond, Scale: 1.0},
}

// Attention remembers which tabs already pulsed this session.
type Attention struct {
	delay time.Duration
	shown map[string]bool
}

func NewAttention(delay time.Duration) *Attention {
	return &Attention{delay: delay, shown: map[string]bool{}}
}

// Claim returns the pulse plan for tab the first time it is asked for and
// marks it shown. Tabs without a pulse, and repeat visits, get nothing.
func (a *Attention) Claim(tab string) (AttentionPlan, bool) {
	target, ok := attentionTargets[tab]
	if !ok || a.shown[tab] {
		return AttentionPlan{}, false
	}
	a.shown[tab] = true
	return AttentionPlan{
		Tab:    tab,
		Target: target,
		Delay:  a.delay,
		Steps:  append([]PulseStep(nil), pulseSteps...),
	}, true
}

// Shown reports whether tab already pulsed.
func (a *Attention) Shown(tab string) bool { return a.shown[tab] }
