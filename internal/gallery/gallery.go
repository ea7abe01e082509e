package gallery

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/ababenko/portfolio/internal/catalog"
	"github.com/ababenko/portfolio/internal/i18n"
	"github.com/ababenko/portfolio/internal/nav"
	"github.com/ababenko/portfolio/internal/playback"
)

const (
	// ContainerSelector is the gallery container replaced on every switch.
	ContainerSelector = "#projects-list"
	// MenuSelector is the category tab bar.
	MenuSelector = ".portfolio-tabs-nav"

	baseClass = "portfolio-grid"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(template.New("gallery").ParseFS(templatesFS, "templates/*.tmpl"))

// DictionarySource yields the current dictionary, possibly nil.
type DictionarySource interface {
	Current() *i18n.Dictionary
}

// Options tune the renderer.
type Options struct {
	StaticLayout   string // "grid" or "collage"
	ModelViewerURL string
	Tokens         playback.TokenSource
}

type routine struct {
	modifier string
	render   func(r *Renderer, c catalog.Category, dict *i18n.Dictionary, gifs *playback.GifGrid) (template.HTML, bool)
}

// Renderer builds and applies gallery content per category.
type Renderer struct {
	registry *catalog.Registry
	dicts    DictionarySource
	opts     Options
	log      *logrus.Entry
	routines map[catalog.Kind]routine

	mu   sync.RWMutex
	tabs []TabButton
}

// New builds the dispatch table and checks that every registered category
// has a render routine.
func New(registry *catalog.Registry, dicts DictionarySource, opts Options, log *logrus.Entry) (*Renderer, error) {
	if opts.Tokens == nil {
		opts.Tokens = &playback.ClockTokens{}
	}
	r := &Renderer{
		registry: registry,
		dicts:    dicts,
		opts:     opts,
		log:      log,
	}
	staticRoutine := routine{render: (*Renderer).renderStaticGrid}
	if opts.StaticLayout == "collage" {
		staticRoutine = routine{modifier: "collage-layout", render: (*Renderer).renderCollage}
	}
	r.routines = map[catalog.Kind]routine{
		catalog.KindStatic:  staticRoutine,
		catalog.KindVideo:   {modifier: "video-grid", render: (*Renderer).renderVideo},
		catalog.KindGif:     {modifier: "gif-grid", render: (*Renderer).renderGif},
		catalog.KindArchive: {modifier: "flash-layout", render: (*Renderer).renderArchive},
		catalog.KindModel3D: {modifier: "model-layout", render: (*Renderer).renderModel},
		catalog.KindPrint:   {modifier: "flexo-two-column", render: (*Renderer).renderPrint},
	}
	if err := r.checkRoutines(); err != nil {
		return nil, err
	}
	r.OnDictionary("", dicts.Current())
	return r, nil
}

func (r *Renderer) checkRoutines() error {
	for _, c := range r.registry.All() {
		if _, ok := r.routines[c.Kind]; !ok {
			return fmt.Errorf("gallery: no render routine for category %q (kind %q)", c.ID, c.Kind)
		}
	}
	return nil
}

// OnDictionary rebuilds the cached tab labels. Register it with
// i18n.Store.Subscribe.
func (r *Renderer) OnDictionary(_ string, dict *i18n.Dictionary) {
	tabs := lo.Map(r.registry.All(), func(c catalog.Category, _ int) TabButton {
		return TabButton{
			ID:   c.ID,
			Icon: dict.StringOr("portfolio.tabs."+c.ID+".icon", c.Icon),
			Text: dict.StringOr(c.DisplayTextKey, catalog.FallbackLabel(c.ID)),
		}
	})
	r.mu.Lock()
	r.tabs = tabs
	r.mu.Unlock()
}

// Tabs returns the menu with active marked.
func (r *Renderer) Tabs(active string) []TabButton {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Map(r.tabs, func(t TabButton, _ int) TabButton {
		t.Active = t.ID == active
		return t
	})
}

// NewGifGrid creates a visitor's GIF playback state for the gif category.
func (r *Renderer) NewGifGrid() *playback.GifGrid {
	var cat catalog.Category
	for _, c := range r.registry.All() {
		if c.Kind == catalog.KindGif {
			cat = c
			break
		}
	}
	ids := lo.Map(catalog.GifItems, func(g catalog.GifItem, _ int) string { return g.ID })
	srcs := lo.Map(catalog.GifItems, func(g catalog.GifItem, _ int) string { return cat.Asset(g.Animation) })
	return playback.NewGifGrid(r.opts.Tokens, ids, srcs)
}

// Build computes the content for a category without touching any document.
// Unknown ids and categories whose content is absent yield the placeholder.
func (r *Renderer) Build(id string, gifs *playback.GifGrid) View {
	dict := r.dicts.Current()
	cat, ok := r.registry.Lookup(id)
	if !ok {
		return r.placeholder(id, dict)
	}
	rt := r.routines[cat.Kind]
	if cat.Kind == catalog.KindGif && gifs == nil {
		gifs = r.NewGifGrid()
	}
	markup, ok := rt.render(r, cat, dict, gifs)
	if !ok {
		return r.placeholder(id, dict)
	}
	class := baseClass
	if rt.modifier != "" {
		class += " " + rt.modifier
	}
	return View{CategoryID: id, LayoutClass: class, Markup: markup}
}

// SelectCategory replaces the gallery container with the category's content,
// marks the active tab and records the category in state. state may be nil.
// A document without the container is left alone.
func (r *Renderer) SelectCategory(doc *goquery.Document, id string, state *nav.UIState) (View, bool) {
	gifs := r.enter(id, state)
	container := doc.Find(ContainerSelector).First()
	if container.Length() == 0 {
		return View{}, false
	}
	view := r.Build(id, gifs)
	container.Empty()
	container.SetAttr("class", view.LayoutClass)
	container.SetAttr("data-category", view.CategoryID)
	container.SetHtml(string(view.Markup))

	doc.Find(".portfolio-tab-btn").Each(func(_ int, btn *goquery.Selection) {
		if cid, _ := btn.Attr("data-category"); cid == id {
			btn.AddClass("active")
		} else {
			btn.RemoveClass("active")
		}
	})
	return view, true
}

// Select records id in state and builds its view, for fragment responses.
func (r *Renderer) Select(id string, state *nav.UIState) View {
	return r.Build(id, r.enter(id, state))
}

// enter records the category and restarts the GIF grid when the gif tab is
// entered. It returns the visitor's grid, possibly nil.
func (r *Renderer) enter(id string, state *nav.UIState) *playback.GifGrid {
	if state == nil {
		return nil
	}
	state.SetCategory(id)
	gifs := state.Gifs()
	if gifs != nil {
		if cat, ok := r.registry.Lookup(id); ok && cat.Kind == catalog.KindGif {
			gifs.Reset()
		}
	}
	return gifs
}

// RenderMenu writes the category buttons into the tab bar.
func (r *Renderer) RenderMenu(doc *goquery.Document, active string) bool {
	menu := doc.Find(MenuSelector).First()
	if menu.Length() == 0 {
		return false
	}
	markup, err := execute("tabs", r.Tabs(active))
	if err != nil {
		r.log.WithError(err).Warn("render category menu")
		return false
	}
	menu.SetHtml(string(markup))
	return true
}

// Fragment renders the container element itself plus an out-of-band menu
// update, for htmx outerHTML swaps.
func (r *Renderer) Fragment(view View) (string, error) {
	container, err := execute("container", view)
	if err != nil {
		return "", err
	}
	menu, err := execute("tabs", r.Tabs(view.CategoryID))
	if err != nil {
		return "", err
	}
	return string(container) + `<nav id="portfolio-tabs" class="portfolio-tabs-nav" hx-swap-oob="true">` + string(menu) + `</nav>`, nil
}

// GifCard renders one GIF card fragment.
func (r *Renderer) GifCard(card playback.GifCard) (string, error) {
	item, ok := catalog.FindGif(card.ID)
	if !ok {
		return "", fmt.Errorf("gallery: unknown gif %q", card.ID)
	}
	cat := r.categoryOfKind(catalog.KindGif)
	markup, err := execute("gif-card", gifView(cat, item, card))
	return string(markup), err
}

func (r *Renderer) categoryOfKind(k catalog.Kind) catalog.Category {
	c, _ := lo.Find(r.registry.All(), func(c catalog.Category) bool { return c.Kind == k })
	return c
}

func (r *Renderer) placeholder(id string, dict *i18n.Dictionary) View {
	markup, err := execute("placeholder", placeholderView{
		Title: dict.StringOr("portfolio.comingSoon.title", "Content Coming Soon"),
		Text:  dict.StringOr("portfolio.comingSoon.text", "This section is under development"),
	})
	if err != nil {
		r.log.WithError(err).Warn("render placeholder")
	}
	return View{CategoryID: id, LayoutClass: baseClass, Markup: markup, Placeholder: true}
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(strings.TrimSpace(buf.String())), nil
}
