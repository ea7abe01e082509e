package playback

import "sync"

// GifCard is the playback state of one animation card.
type GifCard struct {
	ID      string
	Src     string
	Token   string
	Playing bool
}

// AnimationURL is the cache-busted animation source for the card.
func (c GifCard) AnimationURL() string { return BustURL(c.Src, c.Token) }

// PosterVisible is true whenever the card is not playing.
func (c GifCard) PosterVisible() bool { return !c.Playing }

// GifGrid tracks every card of the GIF gallery. Cards start in the poster
// state; each play gets a fresh token so the animation restarts at frame one.
type GifGrid struct {
	tokens TokenSource

	mu    sync.Mutex
	cards []GifCard
	index map[string]int
}

// NewGifGrid builds a grid from (id, animation src) pairs in display order.
func NewGifGrid(tokens TokenSource, ids, srcs []string) *GifGrid {
	g := &GifGrid{tokens: tokens, index: make(map[string]int, len(ids))}
	for i, id := range ids {
		g.index[id] = i
		g.cards = append(g.cards, GifCard{ID: id, Src: srcs[i], Token: tokens.Next()})
	}
	return g
}

// Play switches the card to its animation with a fresh token.
func (g *GifGrid) Play(id string) (GifCard, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, ok := g.index[id]
	if !ok {
		return GifCard{}, false
	}
	g.cards[i].Token = g.tokens.Next()
	g.cards[i].Playing = true
	return g.cards[i], true
}

// Reset returns every card to the poster state and rewrites every token.
func (g *GifGrid) Reset() []GifCard {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.cards {
		g.cards[i].Playing = false
		g.cards[i].Token = g.tokens.Next()
	}
	return append([]GifCard(nil), g.cards...)
}

// Playing reports whether any card is mid-play.
func (g *GifGrid) Playing() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, c := range g.cards {
		if c.Playing {
			return true
		}
	}
	return false
}

// Card returns a snapshot of one card.
func (g *GifGrid) Card(id string) (GifCard, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, ok := g.index[id]
	if !ok {
		return GifCard{}, false
	}
	return g.cards[i], true
}

// Cards returns a snapshot of all cards in order.
func (g *GifGrid) Cards() []GifCard {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]GifCard(nil), g.cards...)
}
