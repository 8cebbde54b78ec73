package site

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/folio-dev/folio/internal/contact"
)

type download struct {
	path string // relative to the static dir
	name string // attachment file name
}

var resumes = map[string]download{
	"web-developer":      {path: "resumes/web_developer_resume.pdf", name: "Web_Developer_Resume.pdf"},
	"software-developer": {path: "resumes/software_developer_resume.pdf", name: "Software_Developer_Resume.pdf"},
}

func certificateDownload(id int) (download, bool) {
	for _, c := range certificates {
		if c.ID == id {
			return download{
				path: fmt.Sprintf("certificates/certificate_%d.pdf", id),
				name: fmt.Sprintf("Certificate_%d.pdf", id),
			}, true
		}
	}
	return download{}, false
}

func (s *Site) handleResumeDownload(w http.ResponseWriter, r *http.Request) {
	d, ok := resumes[chi.URLParam(r, "kind")]
	if !ok {
		s.NotFound(w, r)
		return
	}
	s.serveDownload(w, r, d, "Resume file not found", "/resume")
}

func (s *Site) handleCertificateDownload(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.NotFound(w, r)
		return
	}
	d, ok := certificateDownload(id)
	if !ok {
		s.redirectWithFlash(w, r, "Certificate not found", "/certificates")
		return
	}
	s.serveDownload(w, r, d, "Certificate not found", "/certificates")
}

// serveDownload sends the file as an attachment, or flashes missing and
// redirects back when it is absent.
func (s *Site) serveDownload(w http.ResponseWriter, r *http.Request, d download, missing, back string) {
	path := filepath.Join(s.staticDir, filepath.FromSlash(d.path))
	f, err := os.Open(path)
	if err != nil {
		s.logger.Warn("download unavailable", "path", path, "error", err)
		s.redirectWithFlash(w, r, missing, back)
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		s.redirectWithFlash(w, r, missing, back)
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", d.name))
	http.ServeContent(w, r, d.name, info.ModTime(), f)
}

func (s *Site) redirectWithFlash(w http.ResponseWriter, r *http.Request, msg, to string) {
	sess := s.session(r)
	addFlash(sess, contact.StyleError, msg)
	if err := sess.Save(r, w); err != nil {
		s.logger.Warn("saving session", "error", err)
	}
	http.Redirect(w, r, to, http.StatusFound)
}
