package gallery

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/ababenko/portfolio/internal/catalog"
	"github.com/ababenko/portfolio/internal/playback"
)

// CloseReason says which path closed a modal.
type CloseReason string

const (
	CloseButton  CloseReason = "button"
	CloseOverlay CloseReason = "overlay"
	CloseEscape  CloseReason = "escape"
)

// ModalMarkup renders the full-screen player for a video project.
func (r *Renderer) ModalMarkup(projectID int) (string, error) {
	p, ok := catalog.FindVideo(projectID)
	if !ok {
		return "", fmt.Errorf("gallery: unknown video %d", projectID)
	}
	cat := r.categoryOfKind(catalog.KindVideo)
	markup, err := modalMarkup(cat.Asset(p.Full))
	return string(markup), err
}

func modalMarkup(src string) (string, error) {
	markup, err := execute("video-modal", struct{ Src string }{src})
	return string(markup), err
}

// Modal is an open video modal attached to a document.
type Modal struct {
	overlay *goquery.Selection
	player  playback.Media
	closed  bool
	reason  CloseReason
}

// OpenModal appends one modal overlay to the document body. player is the
// modal's video element and may be nil.
func OpenModal(doc *goquery.Document, src string, player playback.Media) (*Modal, error) {
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil, fmt.Errorf("gallery: document has no body")
	}
	markup, err := modalMarkup(src)
	if err != nil {
		return nil, err
	}
	body.AppendHtml(markup)
	return &Modal{overlay: body.ChildrenFiltered(".video-modal-overlay").Last(), player: player}, nil
}

// Click handles a click whose target is sel. Clicks on the close button or
// on the overlay background close the modal; clicks on the player do not.
func (m *Modal) Click(target *goquery.Selection) bool {
	switch {
	case target.Is(".video-modal-close") && m.contains(target):
		return m.Close(CloseButton)
	case target.IsSelection(m.overlay):
		return m.Close(CloseOverlay)
	}
	return false
}

// Key handles a keydown anywhere in the document.
func (m *Modal) Key(key string) bool {
	if key != "Escape" {
		return false
	}
	return m.Close(CloseEscape)
}

// Close pauses the player and removes the overlay. Only the first call acts.
func (m *Modal) Close(reason CloseReason) bool {
	if m.closed {
		return false
	}
	if m.player != nil {
		m.player.Pause()
	}
	m.overlay.Remove()
	m.closed = true
	m.reason = reason
	return true
}

func (m *Modal) Closed() bool        { return m.closed }
func (m *Modal) Reason() CloseReason { return m.reason }

// Overlay is the modal's root element.
func (m *Modal) Overlay() *goquery.Selection { return m.overlay }

func (m *Modal) contains(sel *goquery.Selection) bool {
	return m.overlay.Find(".video-modal-close").IsSelection(sel)
}
