package site

import (
	"fmt"
	"html/template"
	"net/url"
	"time"

	"github.com/folio-dev/folio/internal/analysis"
)

var funcs = template.FuncMap{
	"css":        func(s string) template.CSS { return template.CSS(s) },
	"pathEscape": url.PathEscape,
	"ms":         func(d time.Duration) int64 { return d.Milliseconds() },
	"pct":        analysis.Label,
}

// parseTemplates returns one template set per page. Every set shares the
// layout and the fragments, so fragments can be executed from any of them.
func parseTemplates() (map[string]*template.Template, error) {
	base, err := template.New("layout").Funcs(funcs).Parse(layoutTemplate)
	if err != nil {
		return nil, err
	}
	if _, err := base.Parse(fragmentTemplates); err != nil {
		return nil, fmt.Errorf("fragments: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageTemplates)+1)
	pages[""] = base
	for name, body := range pageTemplates {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.Parse(body); err != nil {
			return nil, fmt.Errorf("page %s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

// layoutTemplate wraps every page. The body carries the client signals
// that widget requests send back.
const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | Portfolio</title>
  {{template "theme-link" .Theme.Link}}
  <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css">
  {{range .Preloads}}<link rel="preload" as="fetch" crossorigin href="{{.}}">
  {{end}}
  <script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"></script>
  <script type="module" src="https://ajax.googleapis.com/ajax/libs/model-viewer/3.4.0/model-viewer.min.js"></script>
</head>
<body data-signals="{{.Signals}}"
      data-class:modal-open="$scrollLocked"
      data-init="$viewportWidth = window.innerWidth; $viewportHeight = window.innerHeight; @post('/ui/theme/init')"
      data-on:keydown__window="evt.key === 'Escape' &amp;&amp; @post('/ui/overlays/dismiss')">
  <nav class="navbar">
    <a href="/" class="nav-logo">Portfolio</a>
    <ul class="nav-links">
      <li><a href="/"{{if eq .Nav "home"}} class="active"{{end}}>Home</a></li>
      <li><a href="/projects"{{if eq .Nav "projects"}} class="active"{{end}}>Projects</a></li>
      <li><a href="/resume"{{if eq .Nav "resume"}} class="active"{{end}}>Resume</a></li>
      <li><a href="/certificates"{{if eq .Nav "certificates"}} class="active"{{end}}>Certificates</a></li>
      <li><a href="/blogs"{{if eq .Nav "blogs"}} class="active"{{end}}>Blog</a></li>
      <li><a href="/contact"{{if eq .Nav "contact"}} class="active"{{end}}>Contact</a></li>
    </ul>
    {{template "theme-toggle" .Theme}}
  </nav>

  {{range .Flashes}}<div class="flash flash-{{.Style}}">{{.Text}}</div>
  {{end}}

  <main>
    {{template "content" .}}
  </main>

  {{template "overlays" .}}

  <footer class="footer">
    <button class="contact-btn" data-on:click="@post('/ui/overlays/contact/open')"><i class="fas fa-address-card"></i> Contact</button>
    <button class="email-btn" data-on:click="@post('/ui/overlays/email/open')"><i class="fas fa-envelope"></i> Email me</button>
  </footer>
</body>
</html>
{{define "content"}}{{end}}`

// fragmentTemplates are the pieces patched into the page by SSE handlers.
// Each fragment's root element has the id it is morphed into.
const fragmentTemplates = `
{{define "theme-link"}}<link id="{{.ID}}" rel="stylesheet" href="{{.Href}}">{{end}}

{{define "theme-toggle"}}<button id="theme-toggle" class="theme-toggle theme-{{.Theme}}"{{if .Mobile}} disabled{{end}} aria-label="Switch theme" data-on:click="@post('/ui/theme/toggle')"><i class="fas fa-palette"></i></button>{{end}}

{{define "overlays"}}
  <div id="project-overlay" class="modal-overlay" data-show="$overlay == 'project'" data-on:click="evt.target === el &amp;&amp; @post('/ui/overlays/project/close')">
    <div class="modal"><button class="close-modal" data-on:click="@post('/ui/overlays/project/close')">&times;</button><div id="project-modal-content"></div></div>
  </div>
  <div id="tag-overlay" class="modal-overlay" data-show="$overlay == 'tag'" data-on:click="evt.target === el &amp;&amp; @post('/ui/overlays/tag/close')">
    <div class="tag-tooltip"><button class="close-modal" data-on:click="@post('/ui/overlays/tag/close')">&times;</button><div id="tag-tooltip-content"></div></div>
  </div>
  <div id="skill-overlay" class="modal-overlay" data-show="$overlay == 'skill'" data-on:click="evt.target === el &amp;&amp; @post('/ui/overlays/skill/close')">
    <div class="skill-analysis"><button class="close-modal" data-on:click="@post('/ui/overlays/skill/close')">&times;</button><div id="skill-modal-content"></div></div>
  </div>
  <div id="highlight-overlay" class="modal-overlay" data-show="$overlay == 'highlight'" data-on:click="evt.target === el &amp;&amp; @post('/ui/overlays/highlight/close')">
    <div class="highlight-modal"><button class="close-modal" data-on:click="@post('/ui/overlays/highlight/close')">&times;</button><div id="highlight-modal-content"></div></div>
  </div>
  <div id="contact-overlay" class="modal-overlay" data-show="$overlay == 'contact'" data-on:click="evt.target === el &amp;&amp; @post('/ui/overlays/contact/close')">
    <div class="modal contact-modal">
      <button class="close-modal" data-on:click="@post('/ui/overlays/contact/close')">&times;</button>
      <h3>Get in touch</h3>
      <p><i class="fas fa-envelope"></i> Use the email form or the contact page.</p>
      <p><i class="fab fa-github"></i> <a href="https://github.com" target="_blank" rel="noopener">GitHub</a></p>
      <p><i class="fab fa-linkedin"></i> <a href="https://linkedin.com" target="_blank" rel="noopener">LinkedIn</a></p>
    </div>
  </div>
  <div id="email-overlay" class="modal-overlay" data-show="$overlay == 'email'" data-on:click="evt.target === el &amp;&amp; @post('/ui/overlays/email/close')">
    <div class="modal email-dialog">
      <button class="close-modal" data-on:click="@post('/ui/overlays/email/close')">&times;</button>
      <h3>Send me an email</h3>
      <form data-on:submit__prevent="@post('/ui/email/submit')">
        <input type="text" placeholder="Your name" data-bind:name>
        <input type="email" placeholder="Your email" data-bind:email>
        <input type="text" placeholder="Subject" data-bind:subject>
        <textarea rows="5" placeholder="Message" data-bind:message></textarea>
        {{template "email-controls" .Email}}
      </form>
    </div>
  </div>
{{end}}

{{define "email-controls"}}<div id="email-controls">
<button id="email-send" type="submit" class="btn btn-primary"{{if .Disabled}} disabled{{end}}>{{if .Sending}}<i class="fas fa-spinner fa-spin"></i> {{end}}{{.Label}}</button>
{{with .Notice}}<div id="email-notice" class="email-notice {{.Style}}">{{.Text}}</div>{{else}}<div id="email-notice" class="email-notice"></div>{{end}}
</div>{{end}}

{{define "gallery"}}<div id="gallery">
<div id="projects-grid" class="projects-grid"
     data-init="$viewportHeight = window.innerHeight; $cardTops = [...el.querySelectorAll('.project-card')].map(c =&gt; c.getBoundingClientRect().top); @post('/ui/reveal')"
     data-on:scroll__window__throttle.100ms="$viewportHeight = window.innerHeight; $cardTops = [...el.querySelectorAll('.project-card')].map(c =&gt; c.getBoundingClientRect().top); @post('/ui/reveal')">
{{range $i, $c := .Cards}}<div class="project-card animate-in" style="animation-delay: {{ms $c.RevealDelay}}ms" data-class:visible="$revealed.includes({{$i}})">
<div class="project-icon"><i class="{{$c.Icon}}"></i></div>
<h3 class="project-title">{{$c.Title}}</h3>
<p class="project-summary">{{$c.Summary}}</p>
<div class="project-tags">{{range $c.Tags}}<span class="tag" data-on:click__stop="@get('/ui/tags/{{pathEscape .}}')">{{.}}</span>{{end}}</div>
<div class="project-footer">
<span class="project-year">{{$c.Year}}</span>
{{with $c.Demo}}<a id="card-{{$c.Index}}-demo" class="btn btn-demo" href="{{.Href}}" target="_blank" rel="noopener" data-on:click="$ripple = {target: el.id, click: {x: evt.clientX, y: evt.clientY}, rect: el.getBoundingClientRect().toJSON(), cta: false}; @post('/ui/ripple')"><i class="{{.Icon}}"></i> {{.Label}}<span id="card-{{$c.Index}}-demo-ripple" class="ripple-layer"></span></a>{{end}}
{{with $c.Repo}}<a id="card-{{$c.Index}}-repo" class="btn btn-repo" href="{{.Href}}" target="_blank" rel="noopener" data-on:click="$ripple = {target: el.id, click: {x: evt.clientX, y: evt.clientY}, rect: el.getBoundingClientRect().toJSON(), cta: false}; @post('/ui/ripple')"><i class="{{.Icon}}"></i> {{.Label}}<span id="card-{{$c.Index}}-repo-ripple" class="ripple-layer"></span></a>{{end}}
<button id="card-{{$c.Index}}-details" class="btn btn-details" data-on:click="$ripple = {target: el.id, click: {x: evt.clientX, y: evt.clientY}, rect: el.getBoundingClientRect().toJSON(), cta: false}; @post('/ui/ripple'); @get('/ui/projects/{{$c.Index}}')">Details<span id="card-{{$c.Index}}-details-ripple" class="ripple-layer"></span></button>
</div>
</div>
{{end}}</div>
{{template "pagination" .Controls}}
</div>{{end}}

{{define "pagination"}}<div id="pagination" class="pagination">
<button id="prev-page" class="page-btn"{{if .PrevDisabled}} disabled{{end}} data-on:click="@post('/ui/gallery/prev')"><i class="fas fa-chevron-left"></i></button>
<span class="page-info">Page {{.Current}} of {{.TotalPages}}</span>
<button id="next-page" class="page-btn"{{if .NextDisabled}} disabled{{end}} data-on:click="@post('/ui/gallery/next')"><i class="fas fa-chevron-right"></i></button>
</div>{{end}}

{{define "project-modal"}}<div id="project-modal-content">
<h2 class="modal-title">{{.Title}}</h2>
<div class="modal-tags">{{range .Tags}}<span class="tag" data-on:click__stop="@get('/ui/tags/{{pathEscape .}}')">{{.}}</span>{{end}}</div>
<div class="modal-description">{{range .Description}}<p>{{.}}</p>{{end}}</div>
<h4>Technologies</h4>
<ul class="modal-tech">{{range .Tech}}<li>{{.}}</li>{{end}}</ul>
<h4>Features</h4>
<ul class="modal-features">{{range .Features}}<li>{{.}}</li>{{end}}</ul>
</div>{{end}}

{{define "tag-tooltip"}}<div id="tag-tooltip-content">
<div class="tooltip-header"><i class="{{.Info.Icon}}"></i> <span class="tooltip-name">{{.Name}}</span></div>
<p class="tooltip-description">{{.Info.Description}}</p>
<div class="skill-level">{{range .Info.Segments}}<span class="skill-segment{{if .}} active{{end}}"></span>{{end}}</div>
<p class="tooltip-usage">{{.Info.Usage}}</p>
</div>{{end}}

{{define "skill-modal"}}<div id="skill-modal-content">
<div class="skill-header"><i class="{{.Info.Icon}}"></i> <h3>{{.Name}}</h3></div>
<p class="skill-description">{{.Info.Description}}</p>
<div class="skill-tier"><i class="{{.Tier.Icon}}"></i> <strong>{{.Tier.Title}}</strong> <span>{{.Tier.Description}}</span></div>
<div class="skill-metrics">
<div class="metric"><span class="metric-label">Experience</span><span class="metric-value">{{.Info.Experience}}</span></div>
<div class="metric"><span class="metric-label">Success rate</span><span class="metric-value">{{.Info.SuccessRate}}</span></div>
<div class="metric"><span class="metric-label">Projects</span><span class="metric-value">{{.Info.ProjectsUsed}}</span></div>
</div>
{{template "skill-circles" .Circles}}
</div>{{end}}

{{define "skill-circles"}}<div id="skill-circles" class="skill-circles">
{{range .}}<div class="circle-item"><div class="progress-circle" style="{{css .Style}}"><span class="circle-value">{{pct .Value}}</span></div><span class="circle-label">{{.Label}}</span></div>
{{end}}</div>{{end}}

{{define "highlight-modal"}}<div id="highlight-modal-content">
<h3 class="highlight-heading">{{.Info.Heading}}</h3>
<p class="highlight-details">{{.Info.Details}}</p>
<ul class="highlight-criteria">{{range .Info.Criteria}}<li><span>{{.Label}}</span><span class="criterion-value">{{pct .Value}}</span></li>{{end}}</ul>
<div class="highlight-overall">Overall <strong>{{pct .Overall}}</strong></div>
</div>{{end}}

{{define "ripple"}}<span id="{{.ID}}" class="ripple-layer">{{if .Style}}<span class="ripple" style="{{css .Style}}"></span>{{end}}</span>{{end}}
`

var pageTemplates = map[string]string{
	"home":         homeTemplate,
	"projects":     projectsTemplate,
	"resume":       resumeTemplate,
	"certificates": certificatesTemplate,
	"blogs":        blogsTemplate,
	"blog-post":    blogPostTemplate,
	"contact":      contactTemplate,
	"demo":         demoTemplate,
	"404":          notFoundTemplate,
	"500":          serverErrorTemplate,
}

const homeTemplate = `{{define "content"}}
<section class="hero">
  <div class="hero-text">
    <h1>I build <span id="rotating-text" class="rotating-text {{.Headline.Phase}}" data-text="$headlineWord" data-attr:class="'rotating-text ' + $headlinePhase" data-init="@get('/ui/headline')">{{.Headline.Word}}</span></h1>
    <p>Full-stack developer working across web, data and machine learning.</p>
    <a href="/projects" id="cta-projects" class="btn btn-primary cta-button" data-on:click="$ripple = {target: el.id, click: {x: evt.clientX, y: evt.clientY}, rect: el.getBoundingClientRect().toJSON(), cta: true}; @post('/ui/ripple')"><i class="fas fa-rocket" data-class:icon-bounce="$bounce == 'cta-projects'"></i> View projects<span id="cta-projects-ripple" class="ripple-layer"></span></a>
    <a href="/resume" id="cta-resume" class="btn btn-secondary" data-on:click="$ripple = {target: el.id, click: {x: evt.clientX, y: evt.clientY}, rect: el.getBoundingClientRect().toJSON(), cta: false}; @post('/ui/ripple')">Resume<span id="cta-resume-ripple" class="ripple-layer"></span></a>
  </div>
  <div class="hero-media">
    <model-viewer id="hero-model" src="{{.ModelSrc}}" data-models="{{.Models}}" data-attr:src="$modelSrc" data-init="@get('/ui/model')" auto-rotate camera-controls></model-viewer>
    <div class="profile-media" data-on:mouseenter="@get('/ui/profile/enter')" data-on:mouseleave="@post('/ui/profile/leave')">
      <video id="profile-video" src="/static/video/profile.mp4" muted playsinline preload="auto"></video>
    </div>
  </div>
</section>

<section class="highlights">
  <h2>Expertise <button class="info-icon" data-class:active="$infoActive" data-on:click__stop="@post('/ui/highlights/info')"><i class="fas fa-info-circle"></i></button></h2>
  <p class="info-hint" data-show="$infoActive">Click a category to see how it breaks down.</p>
  <div class="highlight-grid">
  {{range .Highlights}}<div class="highlight-card" data-on:click="@get('/ui/highlights/{{.Key}}')"><h3>{{.Info.Heading}}</h3><span class="highlight-score">{{pct .Overall}}</span></div>
  {{end}}</div>
</section>

<section class="skills">
  <h2>Skills</h2>
  <div class="skills-list">
  {{range .Skills}}<button class="skill-pill" data-on:click="@get('/ui/skills/{{pathEscape .}}')">{{.}}</button>
  {{end}}</div>
</section>
{{end}}`

const projectsTemplate = `{{define "content"}}
<section class="projects">
  <h1>Projects</h1>
  {{template "gallery" .Gallery}}
</section>
{{end}}`

const resumeTemplate = `{{define "content"}}
<section class="resume">
  <h1>Resume</h1>
  <div class="resume-downloads">
    <a id="resume-web-developer" class="btn btn-primary" href="/download/resume/web-developer" data-on:click="$ripple = {target: el.id, click: {x: evt.clientX, y: evt.clientY}, rect: el.getBoundingClientRect().toJSON(), cta: false}; @post('/ui/ripple')"><i class="fas fa-download"></i> Web Developer<span id="resume-web-developer-ripple" class="ripple-layer"></span></a>
    <a id="resume-software-developer" class="btn btn-primary" href="/download/resume/software-developer" data-on:click="$ripple = {target: el.id, click: {x: evt.clientX, y: evt.clientY}, rect: el.getBoundingClientRect().toJSON(), cta: false}; @post('/ui/ripple')"><i class="fas fa-download"></i> Software Developer<span id="resume-software-developer-ripple" class="ripple-layer"></span></a>
  </div>
  <h2>Skills</h2>
  <div class="skills-list">
  {{range .Skills}}<button class="skill-pill" data-on:click="@get('/ui/skills/{{pathEscape .}}')">{{.}}</button>
  {{end}}</div>
</section>
{{end}}`

const certificatesTemplate = `{{define "content"}}
<section class="certificates">
  <h1>Certificates</h1>
  <ul class="certificate-list">
  {{range .Certificates}}<li><span>{{.Title}}</span> <a id="certificate-{{.ID}}" class="btn" href="/download/certificate/{{.ID}}" data-on:click="$ripple = {target: el.id, click: {x: evt.clientX, y: evt.clientY}, rect: el.getBoundingClientRect().toJSON(), cta: false}; @post('/ui/ripple')"><i class="fas fa-download"></i> Download<span id="certificate-{{.ID}}-ripple" class="ripple-layer"></span></a></li>
  {{end}}</ul>
</section>
{{end}}`

const blogsTemplate = `{{define "content"}}
<section class="blog">
  <h1>Blog</h1>
  {{if .Posts}}<ul class="post-list">
  {{range .Posts}}<li><a href="/blogs/{{pathEscape .Filename}}">{{.Title}}</a></li>
  {{end}}</ul>{{else}}<p class="empty">No posts yet.</p>{{end}}
</section>
{{end}}`

const blogPostTemplate = `{{define "content"}}
<article class="blog-post">
  <a href="/blogs" class="back-link"><i class="fas fa-arrow-left"></i> All posts</a>
  {{.PostHTML}}
</article>
{{end}}`

const contactTemplate = `{{define "content"}}
<section class="contact">
  <h1>Contact</h1>
  <form method="post" action="/contact" class="contact-form">
    <input type="text" name="name" placeholder="Your name">
    <input type="email" name="email" placeholder="Your email">
    <input type="text" name="subject" placeholder="Subject">
    <textarea name="message" rows="6" placeholder="Message"></textarea>
    <button type="submit" class="btn btn-primary">Send</button>
  </form>
</section>
{{end}}`

const demoTemplate = `{{define "content"}}
<section class="demo">
  <h1>{{.Demo.Title}}</h1>
  <p>{{.Demo.Description}}</p>
  {{if eq .Demo.Name "mood-detector"}}
  <div class="demo-form" data-signals="{text: '', mood: '', analysis: '', confidence: 0}">
    <textarea rows="5" placeholder="How are you feeling?" data-bind:text></textarea>
    <button class="btn btn-primary" data-on:click="@post('/api/mood-analysis')">Analyze</button>
    <div class="demo-result" data-show="$mood != ''"><strong data-text="$mood"></strong> <span data-text="$analysis"></span></div>
  </div>
  {{else if eq .Demo.Name "pass-predictor"}}
  <div class="demo-form" data-signals="{study_hours: 0, sleep_hours: 0, attendance: 0, class_avg_score: 0, student_test_score: 0, student_assignment_score: 0, num_failed_before: 0, participation_score: 0, label: ''}">
    <label>Study hours <input type="number" data-bind="study_hours"></label>
    <label>Sleep hours <input type="number" data-bind="sleep_hours"></label>
    <label>Attendance % <input type="number" data-bind="attendance"></label>
    <label>Class average <input type="number" data-bind="class_avg_score"></label>
    <label>Test score <input type="number" data-bind="student_test_score"></label>
    <label>Assignment score <input type="number" data-bind="student_assignment_score"></label>
    <label>Failed before <input type="number" data-bind="num_failed_before"></label>
    <label>Participation <input type="number" data-bind="participation_score"></label>
    <button class="btn btn-primary" data-on:click="@post('/api/pass-predict')">Predict</button>
    <div class="demo-result" data-show="$label != ''"><strong data-text="$label"></strong></div>
  </div>
  {{end}}
</section>
{{end}}`

const notFoundTemplate = `{{define "content"}}
<section class="error-page">
  <h1>404</h1>
  <p>The page you are looking for does not exist.</p>
  <a href="/" class="btn btn-primary">Back home</a>
</section>
{{end}}`

const serverErrorTemplate = `{{define "content"}}
<section class="error-page">
  <h1>500</h1>
  <p>Something went wrong on our side. Please try again.</p>
  <a href="/" class="btn btn-primary">Back home</a>
</section>
{{end}}`
