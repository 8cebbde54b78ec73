package site

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/folio-dev/folio/internal/anim"
	"github.com/folio-dev/folio/internal/blog"
	"github.com/folio-dev/folio/internal/catalog"
	"github.com/folio-dev/folio/internal/contact"
	"github.com/folio-dev/folio/internal/gallery"
)

// HeroModels is the data-models attribute of the hero model viewer.
const HeroModels = "/static/models/laptop.glb|/static/models/robot.glb|/static/models/rocket.glb"

type certificate struct {
	ID    int
	Title string
}

var certificates = []certificate{
	{ID: 1, Title: "Full-Stack Web Development"},
	{ID: 2, Title: "Machine Learning Specialization"},
}

type demoPage struct {
	Name        string
	Title       string
	Description string
}

var demoPages = map[string]demoPage{
	"leetcode":       {Title: "LeetCode Tracker", Description: "Tracks solved problems and streaks across difficulty levels."},
	"resume-maker":   {Title: "Resume Maker", Description: "Builds a printable resume from a structured form."},
	"erp":            {Title: "ERP Dashboard", Description: "Inventory, orders and billing for a small business."},
	"mood-detector":  {Title: "Mood Detector", Description: "Classifies the mood of a short text from its wording."},
	"chat-app":       {Title: "Chat App", Description: "Rooms, presence and message history for small teams."},
	"pass-predictor": {Title: "Pass Predictor", Description: "Estimates whether a student will pass from their study habits."},
}

func (s *Site) handleHome(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:    "Home",
		Nav:      "home",
		Headline: anim.NewCrossFade().Initial(),
		Models:   HeroModels,
		Skills:   catalog.SkillNames(),
	}
	if sources := anim.ParseSources(HeroModels); len(sources) > 0 {
		data.ModelSrc = sources[0]
	}
	if c, ok := anim.NewCarousel(HeroModels); ok {
		data.Preloads = c.Preloads()
	}
	for _, key := range catalog.HighlightKeys() {
		info, err := catalog.Highlight(key)
		if err != nil {
			continue
		}
		data.Highlights = append(data.Highlights, highlightView{Key: key, Info: info, Overall: info.Overall()})
	}
	s.renderPage(w, r, "home", data)
}

func (s *Site) handleProjects(w http.ResponseWriter, r *http.Request) {
	p := gallery.New(len(s.projects), gallery.PerPage)
	data := pageData{Title: "Projects", Nav: "projects", Gallery: gallery.Render(s.projects, p)}
	data.initial.Page = p.Current()
	s.renderPage(w, r, "projects", data)
}

func (s *Site) handleResume(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "resume", pageData{Title: "Resume", Nav: "resume", Skills: catalog.SkillNames()})
}

func (s *Site) handleCertificates(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "certificates", pageData{Title: "Certificates", Nav: "certificates", Certificates: certificates})
}

func (s *Site) handleBlogs(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: "Blog", Nav: "blogs"}
	if s.blogs != nil {
		posts, err := s.blogs.List()
		if err != nil {
			s.serverError(w, r, err)
			return
		}
		data.Posts = posts
	}
	s.renderPage(w, r, "blogs", data)
}

func (s *Site) handleBlogPost(w http.ResponseWriter, r *http.Request) {
	if s.blogs == nil {
		s.NotFound(w, r)
		return
	}
	name, err := url.PathUnescape(chi.URLParam(r, "filename"))
	if err != nil {
		s.NotFound(w, r)
		return
	}
	post, err := s.blogs.Render(name)
	switch {
	case errors.Is(err, blog.ErrNotFound), errors.Is(err, blog.ErrInvalidPath):
		s.NotFound(w, r)
		return
	case err != nil:
		s.serverError(w, r, err)
		return
	}
	s.renderPage(w, r, "blog-post", pageData{Title: post.Title, Nav: "blogs", PostHTML: template.HTML(post.HTML)})
}

func (s *Site) handleContact(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "contact", pageData{Title: "Contact", Nav: "contact"})
}

// handleContactForm is the no-script fallback of the email dialog. The
// outcome is flashed and the visitor redirected back to the form.
func (s *Site) handleContactForm(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r)
	form := contact.Form{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Subject: strings.TrimSpace(r.PostFormValue("subject")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}

	switch {
	case !form.Complete():
		addFlash(sess, contact.StyleError, contact.MsgMissingFields)
	case s.contact == nil:
		addFlash(sess, contact.StyleError, contact.MsgSaveFailed)
	default:
		res, err := s.contact.Submit(r.Context(), form)
		switch {
		case err != nil:
			s.logger.Error("contact form submit failed", "error", err)
			addFlash(sess, contact.StyleError, contact.MsgSaveFailed)
		case res.Success:
			addFlash(sess, contact.StyleSuccess, res.Message)
		default:
			addFlash(sess, contact.StyleError, res.Message)
		}
	}

	if err := sess.Save(r, w); err != nil {
		s.logger.Warn("saving session", "error", err)
	}
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}

func (s *Site) handleDemo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	demo, ok := demoPages[name]
	if !ok {
		s.NotFound(w, r)
		return
	}
	demo.Name = name
	s.renderPage(w, r, "demo", pageData{Title: demo.Title, Demo: &demo})
}
