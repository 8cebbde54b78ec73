// Package site serves the portfolio pages and the Datastar endpoints that
// drive their widgets. Pages are rendered with html/template; every widget
// interaction answers with an SSE stream of element and signal patches.
package site

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/folio-dev/folio/internal/anim"
	"github.com/folio-dev/folio/internal/blog"
	"github.com/folio-dev/folio/internal/catalog"
	"github.com/folio-dev/folio/internal/contact"
)

// Options configures a Site.
type Options struct {
	Sessions  sessions.Store
	Clock     anim.Clock
	Logger    *slog.Logger
	Blogs     *blog.Index
	Contact   contact.Submitter
	StaticDir string
}

// Site holds the page templates and per-visitor widget state.
type Site struct {
	sessions  sessions.Store
	clock     anim.Clock
	logger    *slog.Logger
	blogs     *blog.Index
	contact   contact.Submitter
	staticDir string
	projects  []catalog.Project
	pages     map[string]*template.Template

	hovers  *registry[*hoverEntry]
	dialogs *registry[*emailEntry]
}

// New parses the templates and returns a ready Site.
func New(opts Options) (*Site, error) {
	if opts.Sessions == nil {
		return nil, fmt.Errorf("site: session store is required")
	}
	if opts.Clock == nil {
		opts.Clock = anim.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	pages, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Site{
		sessions:  opts.Sessions,
		clock:     opts.Clock,
		logger:    opts.Logger,
		blogs:     opts.Blogs,
		contact:   opts.Contact,
		staticDir: opts.StaticDir,
		projects:  catalog.Projects(),
		pages:     pages,
		hovers:    newRegistry[*hoverEntry](),
		dialogs:   newRegistry[*emailEntry](),
	}, nil
}

// RegisterRoutes mounts pages, downloads, static files and widget endpoints.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get("/", s.handleHome)
	r.Get("/projects", s.handleProjects)
	r.Get("/resume", s.handleResume)
	r.Get("/certificates", s.handleCertificates)
	r.Get("/blogs", s.handleBlogs)
	r.Get("/blogs/{filename}", s.handleBlogPost)
	r.Get("/contact", s.handleContact)
	r.Post("/contact", s.handleContactForm)
	r.Get("/demo/{name}", s.handleDemo)

	r.Get("/download/resume/{kind}", s.handleResumeDownload)
	r.Get("/download/certificate/{id}", s.handleCertificateDownload)

	if s.staticDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir)))
		r.Handle("/static/*", fs)
	}

	r.Route("/ui", func(r chi.Router) {
		r.Get("/gallery/page/{n}", s.handleGalleryPage)
		r.Post("/gallery/next", s.handleGalleryStep(1))
		r.Post("/gallery/prev", s.handleGalleryStep(-1))
		r.Get("/projects/{index}", s.handleProjectModal)

		r.Post("/overlays/dismiss", s.handleOverlayDismiss)
		r.Post("/overlays/{kind}/open", s.handleOverlayOpen)
		r.Post("/overlays/{kind}/close", s.handleOverlayClose)

		r.Get("/tags/{name}", s.handleTagTooltip)
		r.Get("/skills/{name}", s.handleSkill)
		r.Get("/highlights/{key}", s.handleHighlight)
		r.Post("/highlights/info", s.handleInfoToggle)
		r.Post("/highlights/info/dismiss", s.handleInfoDismiss)

		r.Post("/theme/init", s.handleThemeInit)
		r.Post("/theme/toggle", s.handleThemeToggle)
		r.Post("/email/submit", s.handleEmailSubmit)

		r.Post("/ripple", s.handleRipple)
		r.Post("/reveal", s.handleReveal)
		r.Get("/model", s.handleModel)
		r.Get("/headline", s.handleHeadline)
		r.Get("/profile/enter", s.handleProfileEnter)
		r.Post("/profile/leave", s.handleProfileLeave)
	})

	r.NotFound(s.NotFound)
}

// NotFound renders the 404 page.
func (s *Site) NotFound(w http.ResponseWriter, r *http.Request) {
	s.renderStatus(w, r, http.StatusNotFound, "404", pageData{Title: "Page Not Found"})
}

func (s *Site) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	s.renderStatus(w, r, http.StatusInternalServerError, "500", pageData{Title: "Server Error"})
}
