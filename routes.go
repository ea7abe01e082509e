package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/ababenko/portfolio/internal/catalog"
	"github.com/ababenko/portfolio/internal/homevideo"
	"github.com/ababenko/portfolio/internal/i18n"
	"github.com/ababenko/portfolio/internal/nav"
	"github.com/ababenko/portfolio/internal/playback"
	"github.com/ababenko/portfolio/internal/session"
)

const htmlContentType = "text/html; charset=utf-8"

// HX-Trigger event names the browser glue listens for.
const (
	eventHomeVideo = "home-video:restart"
	eventGifReset  = "gif:reset"
	eventAttention = "attention:pulse"
	eventSection   = "section:changed"
)

func (s *server) routes(r *gin.Engine) {
	app := r.Group("/", session.Middleware(s.sessions))

	// Full page
	app.GET("/", s.handleIndex)

	// HTMX gallery fragments
	app.GET("/portfolio/:category", s.handleCategory)
	app.GET("/video/:id/modal", s.handleVideoModal)
	app.POST("/gif/:id/play", s.handleGifPlay)
	app.POST("/gif/reset", s.handleGifReset)
	app.POST("/visibility", s.handleVisibility)

	// Tabs and sections
	app.GET("/about/:tab", s.handleAboutTab)
	app.POST("/nav/:section", s.handleSection)
	app.POST("/lang/:code", s.handleLanguage)
}

func visitorSession(c *gin.Context) *session.Session {
	sess, ok := session.FromContext(c)
	if !ok {
		panic("visitor session middleware not installed")
	}
	return sess
}

type pageLink struct {
	ID     string
	Text   string
	Active bool
}

type langLink struct {
	Code   string
	Active bool
}

type pageText struct {
	Name, Title, Subtitle, CTA string
	AboutTitle, AboutIntro     string
	PortfolioTitle             string
	ContactTitle, ContactText  string
	Email, Location            string
	Footer, Privacy            string
}

type pageData struct {
	Title         string
	Section       string
	AboutTab      string
	Sections      []pageLink
	AboutTabs     []pageLink
	LangSwitcher  bool
	Languages     []langLink
	HomeVideoPlan string
	GifRefocusMs  int64
	Text          pageText
}

func links(ids []string, labels map[string]string, active string) []pageLink {
	return lo.Map(ids, func(id string, _ int) pageLink {
		return pageLink{ID: id, Text: labels[id], Active: id == active}
	})
}

func (s *server) pageData(state *nav.UIState) pageData {
	plan, _ := json.Marshal(homevideo.PlanFor(s.cfg.HomeVideoDelay))
	current := s.store.Language()
	return pageData{
		Title:        SiteTitle,
		Section:      state.Section(),
		AboutTab:     state.AboutTab(),
		Sections:     links(nav.Sections, sectionLabels, state.Section()),
		AboutTabs:    links(nav.AboutTabs, aboutTabLabels, state.AboutTab()),
		LangSwitcher: s.cfg.LangSwitcherEnabled,
		Languages: lo.Map(s.store.Supported(), func(code string, _ int) langLink {
			return langLink{Code: code, Active: code == current}
		}),
		HomeVideoPlan: string(plan),
		GifRefocusMs:  s.cfg.GifRefocusDelay.Milliseconds(),
		Text: pageText{
			Name:           HeroName,
			Title:          HeroTitle,
			Subtitle:       HeroSubtitle,
			CTA:            HeroCTA,
			AboutTitle:     AboutTitle,
			AboutIntro:     AboutIntro,
			PortfolioTitle: PortfolioTitle,
			ContactTitle:   ContactTitle,
			ContactText:    ContactText,
			Email:          ContactEmail,
			Location:       ContactLocation,
			Footer:         FooterText,
			Privacy:        FooterPrivacy,
		},
	}
}

// renderPage builds the page document for one visitor: skeleton with built-in
// copy, dictionary content bound over it, then the current gallery category.
func (s *server) renderPage(state *nav.UIState) (*goquery.Document, error) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, "index.html", s.pageData(state)); err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return nil, err
	}

	res := s.binder.Bind(doc, s.store.Current())
	s.log.WithField("keys", res.Keys).WithField("sections", res.Sections).Debug("content bound")

	category := state.CurrentCategory()
	s.gallery.RenderMenu(doc, category)
	s.gallery.SelectCategory(doc, category, state)
	return doc, nil
}

func (s *server) handleIndex(c *gin.Context) {
	doc, err := s.renderPage(visitorSession(c).State)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	html, err := doc.Html()
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, htmlContentType, []byte(html))
}

// Unknown categories still answer 200 with the placeholder.
func (s *server) handleCategory(c *gin.Context) {
	id := c.Param("category")
	view := s.gallery.Select(id, visitorSession(c).State)
	frag, err := s.gallery.Fragment(view)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	if !view.Placeholder {
		s.recordCategoryView(c, id)
	}
	c.Data(http.StatusOK, htmlContentType, []byte(frag))
}

func (s *server) recordCategoryView(c *gin.Context, id string) {
	if s.tracker == nil || c.GetHeader("DNT") == "1" {
		return
	}
	ip := c.ClientIP()
	go func() {
		if err := s.tracker.RecordCategoryView(context.Background(), ip, id); err != nil {
			s.log.WithError(err).Warn("record category view")
		}
	}()
}

func (s *server) handleVideoModal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	markup, err := s.gallery.ModalMarkup(id)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.Data(http.StatusOK, htmlContentType, []byte(markup))
}

func (s *server) handleGifPlay(c *gin.Context) {
	card, ok := visitorSession(c).State.Gifs().Play(c.Param("id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	markup, err := s.gallery.GifCard(card)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, htmlContentType, []byte(markup))
}

// handleGifReset returns the whole grid back in poster state.
func (s *server) handleGifReset(c *gin.Context) {
	gifs := visitorSession(c).State.Gifs()
	gifs.Reset()
	cat, ok := lo.Find(s.registry.All(), func(k catalog.Category) bool { return k.Kind == catalog.KindGif })
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	frag, err := s.gallery.Fragment(s.gallery.Build(cat.ID, gifs))
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, htmlContentType, []byte(frag))
}

func (s *server) handleVisibility(c *gin.Context) {
	state := visitorSession(c).State
	if state.VisibilityChanged(c.PostForm("visible") == "true") {
		triggers{eventGifReset: gifResetEvent(state.Gifs(), s.cfg.GifRefocusDelay)}.write(c)
	}
	c.Status(http.StatusNoContent)
}

func (s *server) handleAboutTab(c *gin.Context) {
	plan, ok := visitorSession(c).State.SelectAboutTab(c.Param("tab"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	if plan != nil {
		triggers{eventAttention: plan}.write(c)
	}
	c.Status(http.StatusNoContent)
}

func (s *server) handleSection(c *gin.Context) {
	state := visitorSession(c).State
	t, ok := state.ShowSection(c.Param("section"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	events := triggers{eventSection: t}
	if t.RestartHomeVideo {
		events[eventHomeVideo] = homevideo.PlanFor(s.cfg.HomeVideoDelay)
	}
	if t.ResetGifs {
		events[eventGifReset] = gifResetEvent(state.Gifs(), 0)
	}
	if t.Attention != nil {
		events[eventAttention] = t.Attention
	}
	events.write(c)
	c.Status(http.StatusNoContent)
}

// handleLanguage swaps the site dictionary. A failed load keeps the current
// one, so the page stays as it was.
func (s *server) handleLanguage(c *gin.Context) {
	if !s.cfg.LangSwitcherEnabled {
		c.Status(http.StatusNotFound)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()
	if _, err := s.store.Load(ctx, c.Param("code")); err != nil {
		switch {
		case errors.Is(err, i18n.ErrUnsupported):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusBadGateway)
		}
		return
	}
	c.Header("HX-Refresh", "true")
	c.Status(http.StatusNoContent)
}

type gifCardState struct {
	ID  string `json:"id"`
	Src string `json:"src"`
}

type gifReset struct {
	DelayMs int64          `json:"delayMs"`
	Cards   []gifCardState `json:"cards"`
}

func gifResetEvent(gifs *playback.GifGrid, delay time.Duration) gifReset {
	return gifReset{
		DelayMs: delay.Milliseconds(),
		Cards: lo.Map(gifs.Cards(), func(c playback.GifCard, _ int) gifCardState {
			return gifCardState{ID: c.ID, Src: c.AnimationURL()}
		}),
	}
}

// triggers is an HX-Trigger header payload: event name to detail.
type triggers map[string]any

func (t triggers) write(c *gin.Context) {
	if len(t) == 0 {
		return
	}
	raw, err := json.Marshal(t)
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("HX-Trigger", string(raw))
}
