package playback

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Media is a playable element.
type Media interface {
	Play() error
	Pause()
	Seek(pos time.Duration)
}

// VideoCard is a poster that swaps to a muted looping preview while hovered.
type VideoCard struct {
	Preview        Media
	Log            *logrus.Entry
	PreviewVisible bool
}

// Enter shows and starts the preview. A rejected play is logged; the card
// still shows the preview layer.
func (v *VideoCard) Enter() {
	v.PreviewVisible = true
	if err := v.Preview.Play(); err != nil && v.Log != nil {
		v.Log.WithError(err).Info("auto-play prevented")
	}
}

// Leave reverts to the poster and rewinds the preview.
func (v *VideoCard) Leave() {
	v.PreviewVisible = false
	v.Preview.Pause()
	v.Preview.Seek(0)
}

// Banner is an archived animation card: the first hover swaps its poster for
// the video, later hovers only resume, and leaving only pauses.
type Banner struct {
	Video   Media
	Log     *logrus.Entry
	Swapped bool
	Playing bool
}

func (b *Banner) Enter() {
	b.Swapped = true
	if err := b.Video.Play(); err != nil {
		if b.Log != nil {
			b.Log.WithError(err).Info("banner play prevented")
		}
		return
	}
	b.Playing = true
}

func (b *Banner) Leave() {
	if !b.Swapped {
		return
	}
	b.Video.Pause()
	b.Playing = false
}
