// admin.go - privacy-conscious admin endpoints over the visit statistics
package main

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ababenko/portfolio/internal/config"
)

const (
	adminCookie     = "admin_token"
	retentionMonths = 12
)

// adminAuth holds the per-process admin token and the configured credentials.
type adminAuth struct {
	token    string
	username string
	password string
	log      *logrus.Entry
}

func newAdminAuth(cfg *config.Config, log *logrus.Entry) *adminAuth {
	a := &adminAuth{
		token:    generateAdminToken(),
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
		log:      log,
	}
	log.Info("admin access available at /admin/login")
	if cfg.DevAdminCredentials {
		log.Warn("using default admin credentials, set ADMIN_USERNAME and ADMIN_PASSWORD")
	}
	return a
}

func generateAdminToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic(fmt.Sprintf("failed to generate admin token: %v", err))
	}
	return hex.EncodeToString(bytes)
}

func (a *adminAuth) validCredentials(username, password string) bool {
	u := subtle.ConstantTimeCompare([]byte(username), []byte(a.username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(a.password))
	return u&p == 1
}

// middleware checks the admin cookie. API calls get 401, pages a redirect.
func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			if strings.HasPrefix(c.Request.URL.Path, "/admin/api/") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// visitorHash identifies a client in logs without recording its address.
func (s *server) visitorHash(c *gin.Context) string {
	if s.tracker == nil {
		return "-"
	}
	return s.tracker.HashIP(c.ClientIP())
}

func (s *server) requireTracker(c *gin.Context) bool {
	if s.tracker == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analytics disabled"})
		return false
	}
	return true
}

// Setup all admin routes
func setupAdminRoutes(r *gin.Engine, s *server) {
	a := s.admin

	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":           "Privacy Policy",
			"retentionMonths": retentionMonths,
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if !a.validCredentials(c.PostForm("username"), c.PostForm("password")) {
			a.log.WithField("visitor", s.visitorHash(c)).Warn("failed admin login attempt")
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}
		// 24 hours
		c.SetCookie(adminCookie, a.token, 3600*24, "/admin", "", false, true)
		a.log.WithField("visitor", s.visitorHash(c)).Info("admin login successful")
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		a.log.WithField("visitor", s.visitorHash(c)).Info("admin logout")
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(a.middleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		if !s.requireTracker(c) {
			return
		}
		stats, err := s.tracker.Stats(c.Request.Context())
		if err != nil {
			a.log.WithError(err).Error("error loading admin stats")
			c.String(http.StatusInternalServerError, "Error loading statistics")
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"title":           "Portfolio Statistics",
			"stats":           stats,
			"retentionMonths": retentionMonths,
		})
	})

	adminGroup.GET("/visitors", func(c *gin.Context) {
		if !s.requireTracker(c) {
			return
		}
		stats, err := s.tracker.Stats(c.Request.Context())
		if err != nil {
			a.log.WithError(err).Error("error loading visitors")
			c.String(http.StatusInternalServerError, "Error loading visitors")
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"title":    "Recent Visitors",
			"visitors": stats.RecentVisitors,
		})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		if !s.requireTracker(c) {
			return
		}
		stats, err := s.tracker.Stats(c.Request.Context())
		if err != nil {
			a.log.WithError(err).Error("error loading admin stats")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.GET("/export/stats", func(c *gin.Context) {
		if !s.requireTracker(c) {
			return
		}
		stats, err := s.tracker.Stats(c.Request.Context())
		if err != nil {
			a.log.WithError(err).Error("error exporting stats")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export statistics"})
			return
		}
		filename := fmt.Sprintf("portfolio-stats-%s.json", time.Now().UTC().Format("2006-01-02"))
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.JSON(http.StatusOK, gin.H{
			"exported_at": time.Now().UTC(),
			"stats":       stats,
		})
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		if !s.requireTracker(c) {
			return
		}
		n, err := s.tracker.Cleanup(c.Request.Context())
		if err != nil {
			a.log.WithError(err).Error("error cleaning up visitor data")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		a.log.WithField("deleted", n).Info("visitor data cleaned up")
		if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML {
			c.Redirect(http.StatusSeeOther, "/admin/dashboard")
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": n})
	})
}
