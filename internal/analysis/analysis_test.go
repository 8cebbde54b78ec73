package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-dev/folio/internal/catalog"
)

func TestLevelData(t *testing.T) {
	tier := LevelData(catalog.LevelMaster, 97)
	assert.Equal(t, "Expert Level", tier.Title)
	assert.Equal(t, "fas fa-crown", tier.Icon)
	assert.Equal(t, "Exceptional expertise with 97% success rate. I can handle complex projects independently and mentor others.", tier.Description)

	assert.Equal(t, "Novice", LevelData(catalog.LevelBelowAverage, 10).Title)
	fallback := LevelData("legendary", 50)
	assert.Equal(t, "Intermediate", fallback.Title)
	assert.Contains(t, fallback.Description, "50% success rate")
}

func TestCircle(t *testing.T) {
	arc := Circle(75)
	assert.Equal(t, 270.0, arc.Degrees)
	assert.Equal(t,
		"background: conic-gradient(var(--primary) 0deg, var(--primary) 270deg, rgba(59, 130, 246, 0.1) 270deg)",
		arc.Style())
	assert.Equal(t, 0.0, EmptyArc.Degrees)
}

func TestCounter(t *testing.T) {
	frames := Counter(92)
	require.NotEmpty(t, frames)
	assert.InDelta(t, CounterSteps, len(frames), 1)
	assert.Equal(t, 92, frames[len(frames)-1])
	assert.Equal(t, "92%", Label(frames[len(frames)-1]))
	for i := 1; i < len(frames); i++ {
		assert.GreaterOrEqual(t, frames[i], frames[i-1])
	}
	assert.Equal(t, []int{0}, Counter(0))
}

func TestCirclesFrames(t *testing.T) {
	skill, err := catalog.Skill("Python")
	require.NoError(t, err)
	c := CirclesFor(skill)
	frames := c.Frames()
	last := frames[len(frames)-1]
	assert.Equal(t, [3]int{skill.Practical, skill.Theoretical, skill.ProblemSolving}, last)
}
