// Package analysis computes the presentation of the skill-analysis popup:
// the tier block for a skill level, the progress circle geometry and the
// frames of the percentage counter.
package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/folio-dev/folio/internal/catalog"
)

const (
	// CounterDelay is the pause between opening the popup and starting the
	// circle animation.
	CounterDelay = 300 * time.Millisecond
	// CounterStep is the interval between counter frames.
	CounterStep = 50 * time.Millisecond
	// CounterSteps is the number of increments used to reach the target.
	CounterSteps = 30
	// ResetDelay is how long after closing the circles return to zero.
	ResetDelay = 300 * time.Millisecond
)

// Tier is the level block shown under the skill header.
type Tier struct {
	Icon        string
	Title       string
	Description string
}

type tierText struct {
	icon, title, format string
}

var tiers = map[catalog.Level]tierText{
	catalog.LevelMaster: {
		"fas fa-crown", "Expert Level",
		"Exceptional expertise with %d%% success rate. I can handle complex projects independently and mentor others.",
	},
	catalog.LevelVeryGood: {
		"fas fa-star", "Advanced",
		"Strong proficiency with %d%% success rate. I can tackle most challenges effectively.",
	},
	catalog.LevelGood: {
		"fas fa-thumbs-up", "Proficient",
		"Solid understanding with %d%% success rate. I can handle standard projects well.",
	},
	catalog.LevelIntermediate: {
		"fas fa-balance-scale", "Intermediate",
		"Moderate proficiency with %d%% success rate. I can work on projects with some guidance.",
	},
	catalog.LevelOkay: {
		"fas fa-hand-paper", "Familiar",
		"Basic understanding with %d%% success rate. I can handle simple tasks independently.",
	},
	catalog.LevelBelowAverage: {
		"fas fa-exclamation-triangle", "Novice",
		"Limited proficiency with %d%% success rate. I need more practice and learning.",
	},
}

// LevelData maps a skill level to its tier block. Unknown levels fall
// back to the intermediate tier.
func LevelData(level catalog.Level, successRate int) Tier {
	t, ok := tiers[level]
	if !ok {
		t = tiers[catalog.LevelIntermediate]
	}
	return Tier{Icon: t.icon, Title: t.title, Description: fmt.Sprintf(t.format, successRate)}
}

// Arc is the filled part of a progress circle.
type Arc struct {
	Percent int
	Degrees float64
}

// Circle returns the arc for a 0-100 score.
func Circle(percent int) Arc {
	return Arc{Percent: percent, Degrees: float64(percent) / 100 * 360}
}

// Style is the conic-gradient background for the arc.
func (a Arc) Style() string {
	return fmt.Sprintf(
		"background: conic-gradient(var(--primary) 0deg, var(--primary) %gdeg, rgba(59, 130, 246, 0.1) %gdeg)",
		a.Degrees, a.Degrees)
}

// EmptyArc is the reset state of every circle.
var EmptyArc = Circle(0)

// Counter returns the labels shown by the percentage counter, one per
// CounterStep. Values rise by target/CounterSteps, are rounded for
// display and the last frame is clamped to exactly target.
func Counter(target int) []int {
	if target <= 0 {
		return []int{0}
	}
	inc := float64(target) / CounterSteps
	var frames []int
	current := 0.0
	for {
		current += inc
		if current >= float64(target) {
			return append(frames, target)
		}
		frames = append(frames, int(math.Round(current)))
	}
}

// Label formats a counter value.
func Label(v int) string { return fmt.Sprintf("%d%%", v) }

// Circles are the three scores animated in the popup, in display order.
type Circles struct {
	Practical      Arc
	Theoretical    Arc
	ProblemSolving Arc
}

// CirclesFor builds the circles for a skill.
func CirclesFor(s catalog.SkillInfo) Circles {
	return Circles{
		Practical:      Circle(s.Practical),
		Theoretical:    Circle(s.Theoretical),
		ProblemSolving: Circle(s.ProblemSolving),
	}
}

// Frames merges the three counters into per-tick label triples. Shorter
// counters hold their final value.
func (c Circles) Frames() [][3]int {
	sets := [3][]int{Counter(c.Practical.Percent), Counter(c.Theoretical.Percent), Counter(c.ProblemSolving.Percent)}
	n := 0
	for _, s := range sets {
		n = max(n, len(s))
	}
	out := make([][3]int, n)
	for i := range out {
		for j, s := range sets {
			out[i][j] = s[min(i, len(s)-1)]
		}
	}
	return out
}
