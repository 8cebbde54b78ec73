// Package gallery paginates the project list and builds the card view
// models for the current page.
package gallery

import (
	"time"

	"github.com/folio-dev/folio/internal/catalog"
)

const (
	// PerPage is the number of cards on a page.
	PerPage = 6
	// MaxCardTags caps the tag pills shown on a card.
	MaxCardTags = 3
	// RevealStep separates the entrance of consecutive cards.
	RevealStep = 150 * time.Millisecond
	// RevealTransition is the opacity/transform transition of a card.
	RevealTransition = 500 * time.Millisecond
)

// Paginator tracks the current page over a fixed number of items.
type Paginator struct {
	PerPage int
	Total   int
	current int
}

// New returns a paginator positioned on page 1.
func New(total, perPage int) *Paginator {
	if perPage <= 0 {
		perPage = PerPage
	}
	return &Paginator{PerPage: perPage, Total: total, current: 1}
}

// Current is the 1-based current page.
func (p *Paginator) Current() int { return p.current }

// TotalPages is ceil(Total/PerPage).
func (p *Paginator) TotalPages() int {
	return (p.Total + p.PerPage - 1) / p.PerPage
}

// ChangePage moves to page n. It reports false and leaves the state
// untouched when n is out of range.
func (p *Paginator) ChangePage(n int) bool {
	if n < 1 || n > p.TotalPages() {
		return false
	}
	p.current = n
	return true
}

// Next moves forward one page.
func (p *Paginator) Next() bool { return p.ChangePage(p.current + 1) }

// Prev moves back one page.
func (p *Paginator) Prev() bool { return p.ChangePage(p.current - 1) }

// Bounds returns the half-open range of global indexes on the current page.
func (p *Paginator) Bounds() (start, end int) {
	start = (p.current - 1) * p.PerPage
	end = min(start+p.PerPage, p.Total)
	return start, end
}

// Action is a link button on a card.
type Action struct {
	Label string
	Href  string
	Icon  string
}

// Card is the view model of one project card.
type Card struct {
	Index       int // global index, carried by the Details button
	Title       string
	Icon        string
	Summary     string
	Tags        []string
	Year        string
	Demo        *Action
	Repo        *Action
	RevealDelay time.Duration
}

// Controls is the state of the pagination buttons.
type Controls struct {
	Current      int
	TotalPages   int
	PrevDisabled bool
	NextDisabled bool
}

// Page is everything needed to render the gallery grid.
type Page struct {
	Cards    []Card
	Controls Controls
}

// Render builds the cards for the paginator's current page.
func Render(projects []catalog.Project, p *Paginator) Page {
	start, end := p.Bounds()
	var cards []Card
	for i := start; i < end && i < len(projects); i++ {
		proj := projects[i]
		tags := proj.Tags
		if len(tags) > MaxCardTags {
			tags = tags[:MaxCardTags]
		}
		card := Card{
			Index:       i,
			Title:       proj.Title,
			Icon:        catalog.ProjectIcon(i),
			Summary:     proj.Summary(),
			Tags:        tags,
			Year:        catalog.ProjectYear,
			RevealDelay: time.Duration(i-start) * RevealStep,
		}
		if proj.Demo != "" {
			card.Demo = &Action{Label: proj.ActionLabel(), Href: proj.Demo, Icon: "fas fa-external-link-alt"}
		}
		if proj.Repo != "" {
			card.Repo = &Action{Label: "Code", Href: proj.Repo, Icon: "fab fa-github"}
		}
		cards = append(cards, card)
	}
	return Page{
		Cards: cards,
		Controls: Controls{
			Current:      p.current,
			TotalPages:   p.TotalPages(),
			PrevDisabled: p.current <= 1,
			NextDisabled: p.current >= p.TotalPages(),
		},
	}
}
