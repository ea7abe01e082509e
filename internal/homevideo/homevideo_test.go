package homevideo

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ababenko/portfolio/internal/logging"
	"github.com/ababenko/portfolio/internal/schedule"
)

type recorder struct {
	calls   []string
	playErr error
}

func (r *recorder) Play() error            { r.calls = append(r.calls, "play"); return r.playErr }
func (r *recorder) Pause()                 { r.calls = append(r.calls, "pause") }
func (r *recorder) Seek(pos time.Duration) { r.calls = append(r.calls, "seek:"+pos.String()) }

func TestStartPlaysAfterDelay(t *testing.T) {
	clock := &schedule.FakeClock{}
	player := &recorder{}
	c := New(player, schedule.NewWithClock(clock.AfterFunc), 3*time.Second, logging.Discard())

	c.Start()
	assert.Equal(t, []string{"seek:0s", "pause"}, player.calls)

	clock.Advance(2999 * time.Millisecond)
	assert.Equal(t, []string{"seek:0s", "pause"}, player.calls)

	clock.Advance(time.Millisecond)
	assert.Equal(t, []string{"seek:0s", "pause", "play"}, player.calls)
}

func TestRestartCancelsPendingPlay(t *testing.T) {
	clock := &schedule.FakeClock{}
	player := &recorder{}
	sched := schedule.NewWithClock(clock.AfterFunc)
	c := New(player, sched, 3*time.Second, logging.Discard())

	c.Start()
	clock.Advance(2 * time.Second)
	c.Restart()
	clock.Advance(2 * time.Second)
	assert.NotContains(t, player.calls, "play", "the first delayed play was superseded")

	clock.Advance(time.Second)
	assert.Equal(t, []string{"seek:0s", "pause", "seek:0s", "pause", "play"}, player.calls)
	assert.False(t, sched.Pending(AutoplayKey))
}

func TestRejectedPlayIsTolerated(t *testing.T) {
	clock := &schedule.FakeClock{}
	player := &recorder{playErr: errors.New("NotAllowedError")}
	c := New(player, schedule.NewWithClock(clock.AfterFunc), time.Second, logging.Discard())
	c.Restart()
	clock.Advance(time.Second)
	assert.Contains(t, player.calls, "play")
}

func TestPlanFor(t *testing.T) {
	assert.Equal(t, Plan{SeekTo: 0, Pause: true, DelayMs: 3000}, PlanFor(3*time.Second))
}
