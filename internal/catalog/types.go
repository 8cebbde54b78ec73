// Package catalog holds the static portfolio tables: projects, tag
// metadata, skill metadata and highlight breakdowns. All tables are
// compiled in and read-only.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// ErrUnknownKey is returned by every lookup when the key is not in its table.
var ErrUnknownKey = errors.New("unknown catalog key")

// ProjectYear is the year label shown on every project card.
const ProjectYear = "2025"

// MaxSkillLevel is the number of segments in a tag's skill indicator.
const MaxSkillLevel = 5

// Project is a portfolio project record.
type Project struct {
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	Description []string `json:"description"`
	Tech        []string `json:"tech"`
	Features    []string `json:"features"`
	Repo        string   `json:"repo,omitempty"`
	Demo        string   `json:"demo,omitempty"`
}

// Summary returns the first sentence of the first description paragraph.
func (p Project) Summary() string {
	if len(p.Description) == 0 {
		return ""
	}
	first, _, _ := strings.Cut(p.Description[0], ".")
	return first + "."
}

// ActionLabel is the label of the demo button: "Live" for deployed
// external sites, "Demo" for demos hosted by this server.
func (p Project) ActionLabel() string {
	if strings.HasPrefix(p.Demo, "http://") || strings.HasPrefix(p.Demo, "https://") {
		return "Live"
	}
	return "Demo"
}

// TagInfo describes a technology tag shown as a pill on project cards.
type TagInfo struct {
	Icon        string `json:"icon"`
	Description string `json:"description"`
	SkillLevel  int    `json:"skill_level"` // 0-5
	Usage       string `json:"usage"`
}

// Segments returns the MaxSkillLevel indicator segments; the first
// SkillLevel of them are active.
func (t TagInfo) Segments() []bool {
	segs := make([]bool, MaxSkillLevel)
	for i := range segs {
		segs[i] = i < t.SkillLevel
	}
	return segs
}

// Level is the qualitative tier of a skill.
type Level string

const (
	LevelMaster       Level = "master"
	LevelVeryGood     Level = "very-good"
	LevelGood         Level = "good"
	LevelIntermediate Level = "intermediate"
	LevelOkay         Level = "okay"
	LevelBelowAverage Level = "below-average"
)

// SkillInfo is the record behind the skill-analysis popup.
type SkillInfo struct {
	Icon              string `json:"icon"`
	Description       string `json:"description"`
	Level             Level  `json:"level"`
	LevelText         string `json:"level_text"`
	Experience        string `json:"experience"`
	SuccessRate       string `json:"success_rate"`
	ProjectsUsed      string `json:"projects_used"`
	SuccessPercentage int    `json:"success_percentage"`
	Practical         int    `json:"practical"`
	Theoretical       int    `json:"theoretical"`
	ProblemSolving    int    `json:"problem_solving"`
}

// Criterion is one labelled 0-100 score of a highlight.
type Criterion struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// HighlightInfo is the breakdown shown for an expertise category.
type HighlightInfo struct {
	Heading  string       `json:"heading"`
	Details  string       `json:"details"`
	Criteria [4]Criterion `json:"criteria"`
}

// Overall is the rounded arithmetic mean of the criteria values.
func (h HighlightInfo) Overall() int {
	sum := 0
	for _, c := range h.Criteria {
		sum += c.Value
	}
	return int(math.Round(float64(sum) / float64(len(h.Criteria))))
}

// Projects returns a copy of the full ordered project list.
func Projects() []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = p.clone()
	}
	return out
}

// ProjectAt returns a copy of the project at a global index.
func ProjectAt(index int) (Project, error) {
	if index < 0 || index >= len(projects) {
		return Project{}, fmt.Errorf("project %d: %w", index, ErrUnknownKey)
	}
	return projects[index].clone(), nil
}

func (p Project) clone() Project {
	p.Tags = slices.Clone(p.Tags)
	p.Description = slices.Clone(p.Description)
	p.Tech = slices.Clone(p.Tech)
	p.Features = slices.Clone(p.Features)
	return p
}

// ProjectIcon returns the icon class for the project at a global index.
func ProjectIcon(index int) string {
	if index < 0 || index >= len(projectIcons) {
		return "fas fa-code"
	}
	return projectIcons[index]
}

// Tag looks up tag metadata by its exact display text.
func Tag(name string) (TagInfo, error) {
	info, ok := tags[name]
	if !ok {
		return TagInfo{}, fmt.Errorf("tag %q: %w", name, ErrUnknownKey)
	}
	return info, nil
}

// Skill looks up skill metadata by its exact display name.
func Skill(name string) (SkillInfo, error) {
	info, ok := skills[name]
	if !ok {
		return SkillInfo{}, fmt.Errorf("skill %q: %w", name, ErrUnknownKey)
	}
	return info, nil
}

// SkillNames returns the skill labels in display order.
func SkillNames() []string {
	return skillOrder
}

// Highlight looks up a highlight breakdown by category key.
func Highlight(key string) (HighlightInfo, error) {
	info, ok := highlights[key]
	if !ok {
		return HighlightInfo{}, fmt.Errorf("highlight %q: %w", key, ErrUnknownKey)
	}
	return info, nil
}

// HighlightKeys returns the highlight categories in display order.
func HighlightKeys() []string {
	return highlightOrder
}
