package gallery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-dev/folio/internal/catalog"
)

func TestPaginatorEightProjects(t *testing.T) {
	p := New(8, 6)
	assert.Equal(t, 2, p.TotalPages())

	start, end := p.Bounds()
	assert.Equal(t, 0, start)
	assert.Equal(t, 6, end)

	require.True(t, p.Next())
	start, end = p.Bounds()
	assert.Equal(t, 6, start)
	assert.Equal(t, 8, end)
}

func TestChangePageOutOfRange(t *testing.T) {
	p := New(8, 6)
	for _, n := range []int{0, -1, 3, 100} {
		assert.False(t, p.ChangePage(n), "page %d", n)
		assert.Equal(t, 1, p.Current())
	}
	assert.False(t, p.Prev())
	require.True(t, p.ChangePage(2))
	assert.False(t, p.Next())
	assert.Equal(t, 2, p.Current())
}

func TestRender(t *testing.T) {
	projects := catalog.Projects()
	p := New(len(projects), PerPage)

	page := Render(projects, p)
	require.Len(t, page.Cards, 6)
	assert.True(t, page.Controls.PrevDisabled)
	assert.False(t, page.Controls.NextDisabled)
	for i, c := range page.Cards {
		assert.Equal(t, i, c.Index)
		assert.LessOrEqual(t, len(c.Tags), MaxCardTags)
		assert.Equal(t, time.Duration(i)*RevealStep, c.RevealDelay)
		assert.Equal(t, catalog.ProjectIcon(i), c.Icon)
	}

	require.True(t, p.ChangePage(2))
	page = Render(projects, p)
	require.Len(t, page.Cards, 2)
	assert.Equal(t, 6, page.Cards[0].Index)
	assert.Zero(t, page.Cards[0].RevealDelay)
	assert.False(t, page.Controls.PrevDisabled)
	assert.True(t, page.Controls.NextDisabled)
}

func TestRenderActions(t *testing.T) {
	projects := []catalog.Project{
		{Title: "A", Description: []string{"One. Two."}, Demo: "https://a.example", Repo: "https://github.com/x/a"},
		{Title: "B", Description: []string{"Solo"}},
	}
	page := Render(projects, New(2, 6))
	require.Len(t, page.Cards, 2)
	require.NotNil(t, page.Cards[0].Demo)
	assert.Equal(t, "Live", page.Cards[0].Demo.Label)
	require.NotNil(t, page.Cards[0].Repo)
	assert.Equal(t, "One.", page.Cards[0].Summary)
	assert.Nil(t, page.Cards[1].Demo)
	assert.Nil(t, page.Cards[1].Repo)
}
