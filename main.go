package main

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/ababenko/portfolio/internal/analytics"
	"github.com/ababenko/portfolio/internal/catalog"
	"github.com/ababenko/portfolio/internal/config"
	"github.com/ababenko/portfolio/internal/content"
	"github.com/ababenko/portfolio/internal/gallery"
	"github.com/ababenko/portfolio/internal/i18n"
	"github.com/ababenko/portfolio/internal/logging"
	"github.com/ababenko/portfolio/internal/nav"
	"github.com/ababenko/portfolio/internal/schedule"
	"github.com/ababenko/portfolio/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	assetRoot  = "assets/portfolio"
	cleanupKey = "analytics-cleanup"
)

type server struct {
	cfg       *config.Config
	log       *logrus.Entry
	pages     *template.Template
	store     *i18n.Store
	binder    *content.Binder
	registry  *catalog.Registry
	gallery   *gallery.Renderer
	scheduler *schedule.Scheduler
	sessions  *session.Registry
	tracker   *analytics.Tracker // nil disables visit statistics
	admin     *adminAuth
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	gin.SetMode(cfg.GinMode)

	tracker, err := analytics.Open(cfg.DBPath, log.WithField("component", "analytics"))
	if err != nil {
		log.WithError(err).Fatal("failed to open analytics database")
	}
	log.Info("privacy: visitor tracking enabled with hashed IP addresses")

	srv, err := newServer(cfg, log, tracker)
	if err != nil {
		log.WithError(err).Fatal("failed to start")
	}
	defer srv.close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	srv.store.Load(ctx, cfg.DefaultLanguage)
	cancel()

	srv.scheduleCleanup()

	log.WithField("port", cfg.Port).Info("listening")
	if err := srv.engine().Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// newServer wires the components. The default dictionary is not loaded yet;
// until it is, pages show the built-in copy.
func newServer(cfg *config.Config, log *logrus.Entry, tracker *analytics.Tracker) (*server, error) {
	pages, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	registry, err := catalog.NewRegistry(catalog.Categories(assetRoot)...)
	if err != nil {
		return nil, err
	}

	store := i18n.NewStore(i18n.NewLoader(cfg.ContentPath), cfg.Languages, log.WithField("component", "i18n"))
	renderer, err := gallery.New(registry, store, gallery.Options{
		StaticLayout:   cfg.StaticLayout,
		ModelViewerURL: cfg.ModelViewerURL,
	}, log.WithField("component", "gallery"))
	if err != nil {
		return nil, err
	}
	store.Subscribe(renderer.OnDictionary)

	categoryIDs := lo.Map(registry.All(), func(c catalog.Category, _ int) string { return c.ID })
	scheduler := schedule.New()
	sessions := session.NewRegistry(func() *nav.UIState {
		return nav.NewUIState(categoryIDs, renderer.NewGifGrid(), cfg.AttentionDelay)
	}, scheduler, cfg.SessionIdle, log.WithField("component", "session"))

	return &server{
		cfg:       cfg,
		log:       log,
		pages:     pages,
		store:     store,
		binder:    content.NewBinder(log.WithField("component", "content")),
		registry:  registry,
		gallery:   renderer,
		scheduler: scheduler,
		sessions:  sessions,
		tracker:   tracker,
		admin:     newAdminAuth(cfg, log.WithField("component", "admin")),
	}, nil
}

func (s *server) engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(s.log))
	if s.tracker != nil {
		r.Use(analytics.Middleware(s.tracker))
	}
	r.SetHTMLTemplate(s.pages)

	r.Static("/static", "./static")
	r.Static("/assets", "./assets")

	s.routes(r)
	setupAdminRoutes(r, s)
	return r
}

// scheduleCleanup removes expired analytics rows now and again every day.
func (s *server) scheduleCleanup() {
	if s.tracker == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if _, err := s.tracker.Cleanup(ctx); err != nil {
		s.log.WithError(err).Warn("error cleaning up old visitor data")
	}
	s.scheduler.After(cleanupKey, 24*time.Hour, s.scheduleCleanup)
}

func (s *server) close() {
	s.scheduler.Stop()
	if s.tracker != nil {
		s.tracker.Close()
	}
}
