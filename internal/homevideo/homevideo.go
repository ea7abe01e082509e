package homevideo

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ababenko/portfolio/internal/playback"
	"github.com/ababenko/portfolio/internal/schedule"
)

// AutoplayKey is the scheduler key of the pending delayed play.
const AutoplayKey = "home-video-autoplay"

// Controller drives the hero video: rewind, pause, then play after a delay.
type Controller struct {
	player    playback.Media
	scheduler *schedule.Scheduler
	delay     time.Duration
	log       *logrus.Entry
}

func New(player playback.Media, scheduler *schedule.Scheduler, delay time.Duration, log *logrus.Entry) *Controller {
	return &Controller{player: player, scheduler: scheduler, delay: delay, log: log}
}

// Start runs the initial sequence when the page loads.
func (c *Controller) Start() { c.Restart() }

// Restart replays the sequence regardless of the current position. A delayed
// play still pending from an earlier call is cancelled.
func (c *Controller) Restart() {
	c.scheduler.Cancel(AutoplayKey)
	c.player.Seek(0)
	c.player.Pause()
	c.scheduler.After(AutoplayKey, c.delay, func() {
		if err := c.player.Play(); err != nil && c.log != nil {
			c.log.WithError(err).Info("video play prevented")
		}
	})
}

// Plan is the same sequence expressed for the browser.
type Plan struct {
	SeekTo  int64 `json:"seekTo"`
	Pause   bool  `json:"pause"`
	DelayMs int64 `json:"delayMs"`
}

func PlanFor(delay time.Duration) Plan {
	return Plan{SeekTo: 0, Pause: true, DelayMs: delay.Milliseconds()}
}
