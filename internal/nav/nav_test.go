package nav

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ababenko/portfolio/internal/playback"
)

func TestTabGroupFirstDeclaredIsActive(t *testing.T) {
	g := NewTabGroup("about", AboutTabs...)
	assert.Equal(t, "work", g.Active())

	assert.True(t, g.Select("skills"))
	assert.True(t, g.IsActive("skills"))
	assert.False(t, g.IsActive("work"))

	assert.False(t, g.Select("hobbies"))
	assert.Equal(t, "skills", g.Active())
}

func TestHoverGroupRestoresLastClicked(t *testing.T) {
	g := NewHoverGroup("skills", "A", "B", "C")

	g.Enter("B")
	assert.Equal(t, "B", g.Active())
	assert.Equal(t, "A", g.LeaveGroup(), "nothing clicked yet: first category")

	g.Click("C")
	g.Enter("B")
	assert.Equal(t, "B", g.Active())
	assert.Equal(t, "C", g.LeaveGroup())
	assert.Equal(t, "C", g.Pinned())

	assert.False(t, g.Click("Z"))
	assert.Equal(t, "C", g.Pinned())
}

func TestAttentionIsOneShot(t *testing.T) {
	a := NewAttention(2500 * time.Millisecond)

	plan, ok := a.Claim("education")
	require.True(t, ok)
	assert.Equal(t, "#education-tab .education-toggle", plan.Target)
	assert.Equal(t, 2500*time.Millisecond, plan.Delay)
	require.Len(t, plan.Steps, 4)
	assert.Equal(t, 1.05, plan.Steps[0].Scale)
	assert.Equal(t, 1.0, plan.Steps[3].Scale)

	_, ok = a.Claim("education")
	assert.False(t, ok)

	_, ok = a.Claim("languages")
	assert.False(t, ok, "only work and education pulse")
	assert.False(t, a.Shown("work"))
}

func newState() *UIState {
	gifs := playback.NewGifGrid(&playback.SequenceTokens{}, []string{"g1"}, []string{"g1.gif"})
	return NewUIState([]string{"static", "video", "gif"}, gifs, time.Second)
}

func TestShowSectionTransitions(t *testing.T) {
	s := newState()
	assert.Equal(t, "home", s.Section())

	tr, ok := s.ShowSection("portfolio")
	require.True(t, ok)
	assert.False(t, tr.RestartHomeVideo)
	assert.False(t, tr.ResetGifs)

	s.Gifs().Play("g1")
	tr, _ = s.ShowSection("home")
	assert.Equal(t, "portfolio", tr.From)
	assert.True(t, tr.RestartHomeVideo)
	assert.True(t, tr.ResetGifs)
	assert.False(t, s.Gifs().Playing())

	tr, _ = s.ShowSection("home")
	assert.True(t, tr.RestartHomeVideo, "home restarts the video even when already there")

	_, ok = s.ShowSection("blog")
	assert.False(t, ok)
}

func TestSelectAboutTabClaimsAttentionOnce(t *testing.T) {
	s := newState()

	plan, ok := s.SelectAboutTab("work")
	require.True(t, ok)
	require.NotNil(t, plan)
	assert.True(t, s.AttentionShown("work"))

	s.SelectAboutTab("skills")
	plan, ok = s.SelectAboutTab("work")
	require.True(t, ok)
	assert.Nil(t, plan)
	assert.Equal(t, "work", s.AboutTab())
}

func TestEnteringAboutClaimsActiveTabPulse(t *testing.T) {
	s := newState()

	tr, ok := s.ShowSection("about")
	require.True(t, ok)
	require.NotNil(t, tr.Attention)
	assert.Equal(t, "work", tr.Attention.Tab)
	assert.True(t, s.AttentionShown("work"))

	s.ShowSection("home")
	tr, _ = s.ShowSection("about")
	assert.Nil(t, tr.Attention)

	plan, _ := s.SelectAboutTab("work")
	assert.Nil(t, plan, "already pulsed on entering about")

	s.SelectAboutTab("languages")
	s.ShowSection("contact")
	tr, _ = s.ShowSection("about")
	assert.Nil(t, tr.Attention, "languages has no pulse")
}

func TestCategoryAndVisibility(t *testing.T) {
	s := newState()
	assert.Equal(t, "static", s.CurrentCategory())

	s.SetCategory("unknown")
	assert.Equal(t, "unknown", s.CurrentCategory())

	s.Gifs().Play("g1")
	assert.False(t, s.VisibilityChanged(false))
	assert.True(t, s.Gifs().Playing())
	assert.True(t, s.VisibilityChanged(true))
	assert.False(t, s.Gifs().Playing())
}

func TestAttentionPlanJSON(t *testing.T) {
	plan, _ := NewAttention(2500 * time.Millisecond).Claim("work")
	raw, err := json.Marshal(plan)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tab":"work","target":"#work-tab .experience-toggle","delayMs":2500,
		"steps":[{"atMs":100,"scale":1.05},{"atMs":300,"scale":1},{"atMs":500,"scale":1.05},{"atMs":700,"scale":1}]}`, string(raw))
}
