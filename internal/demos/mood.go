// Package demos implements the small interactive demos linked from the
// project cards: a word-list mood detector and a pass predictor.
package demos

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var (
	positiveWords = []string{
		"love", "great", "good", "excellent", "amazing", "wonderful", "fantastic", "awesome",
		"perfect", "beautiful", "happy", "joy", "pleased", "satisfied", "delighted", "thrilled",
		"outstanding", "brilliant", "superb", "marvelous", "incredible", "fabulous", "terrific",
		"best", "favorite", "enjoy", "like", "adore", "cherish", "appreciate", "grateful",
		"blessed", "lucky", "fortunate", "successful", "achieved", "accomplished", "proud",
		"excited", "enthusiastic", "optimistic", "hopeful", "inspired", "motivated", "energetic",
		"peaceful", "calm", "relaxed", "content", "fulfilled", "gratified", "elated", "ecstatic",
	}
	negativeWords = []string{
		"hate", "terrible", "awful", "horrible", "disgusting", "worst", "bad", "sad",
		"angry", "upset", "disappointed", "frustrated", "annoyed", "irritated", "mad",
		"dislike", "loathe", "despise", "abhor", "detest", "miserable", "depressed",
		"suffering", "pain", "hurt", "broken", "damaged", "ruined", "destroyed",
		"failure", "failed", "lose", "lost", "defeat", "defeated", "hopeless", "useless",
		"worried", "anxious", "stressed", "tired", "exhausted", "bored", "lonely", "afraid",
		"scared", "fearful", "nervous", "tense", "confused", "conflicted", "torn", "divided",
	}
	neutralWords = []string{
		"okay", "fine", "alright", "maybe", "perhaps", "possibly", "might", "could",
		"average", "normal", "regular", "standard", "usual", "typical", "ordinary",
		"neutral", "indifferent", "unconcerned", "uninterested", "bored", "tired",
		"moderate", "balanced", "stable", "steady", "consistent", "predictable", "routine",
	}
)

var wordRe = regexp.MustCompile(`\b\w+\b`)

// MoodDetails are the per-list counts and densities.
type MoodDetails struct {
	TotalWords    int     `json:"total_words"`
	PositiveCount int     `json:"positive_count"`
	NegativeCount int     `json:"negative_count"`
	NeutralCount  int     `json:"neutral_count"`
	PositiveScore float64 `json:"positive_score"`
	NegativeScore float64 `json:"negative_score"`
	NeutralScore  float64 `json:"neutral_score"`
}

// MoodMetrics are the extra figures shown by the demo page.
type MoodMetrics struct {
	TextLength         int     `json:"text_length"`
	CleanedLength      int     `json:"cleaned_length"`
	PositiveDensity    float64 `json:"positive_density"`
	NegativeDensity    float64 `json:"negative_density"`
	NeutralDensity     float64 `json:"neutral_density"`
	EmotionalIntensity float64 `json:"emotional_intensity"`
	ProcessingMethod   string  `json:"processing_method"`
}

// Mood is the result of AnalyzeMood.
type Mood struct {
	Success    bool        `json:"success"`
	Mood       string      `json:"mood"`
	Confidence float64     `json:"confidence"`
	Analysis   string      `json:"analysis"`
	Details    MoodDetails `json:"details"`
	Metrics    MoodMetrics `json:"ml_metrics"`
}

// AnalyzeMood classifies text by counting which list words occur in it.
// Each list word counts once regardless of repetitions.
func AnalyzeMood(text string) Mood {
	words := wordRe.FindAllString(strings.ToLower(text), -1)
	total := len(words)
	present := make(map[string]bool, total)
	for _, w := range words {
		present[w] = true
	}
	count := func(list []string) int {
		n := 0
		for _, w := range list {
			if present[w] {
				n++
			}
		}
		return n
	}

	var d MoodDetails
	d.TotalWords = total
	mood, confidence := "Neutral", 50.0
	if total > 0 {
		d.PositiveCount = count(positiveWords)
		d.NegativeCount = count(negativeWords)
		d.NeutralCount = count(neutralWords)
		d.PositiveScore = float64(d.PositiveCount) / float64(total) * 100
		d.NegativeScore = float64(d.NegativeCount) / float64(total) * 100
		d.NeutralScore = float64(d.NeutralCount) / float64(total) * 100

		score := d.NeutralScore
		switch {
		case d.PositiveScore > d.NegativeScore && d.PositiveScore > d.NeutralScore:
			mood, score = "Positive", d.PositiveScore
		case d.NegativeScore > d.PositiveScore && d.NegativeScore > d.NeutralScore:
			mood, score = "Negative", d.NegativeScore
		}
		confidence = math.Min(95, 60+score*0.8)
	}

	var found []string
	if d.PositiveCount > 0 {
		found = append(found, fmt.Sprintf("Found %d positive indicators", d.PositiveCount))
	}
	if d.NegativeCount > 0 {
		found = append(found, fmt.Sprintf("Found %d negative indicators", d.NegativeCount))
	}
	if d.NeutralCount > 0 {
		found = append(found, fmt.Sprintf("Found %d neutral indicators", d.NeutralCount))
	}

	intensity := 0.0
	if total > 0 {
		intensity = round(float64(d.PositiveCount+d.NegativeCount)/float64(total), 3)
	}
	m := Mood{
		Success:    true,
		Mood:       mood,
		Confidence: round(confidence, 1),
		Analysis: fmt.Sprintf("Analyzed %d words. %s. Detected %s sentiment with %.1f%% confidence.",
			total, strings.Join(found, " "), strings.ToLower(mood), confidence),
		Metrics: MoodMetrics{
			TextLength:         len(text),
			CleanedLength:      total,
			PositiveDensity:    d.PositiveScore,
			NegativeDensity:    d.NegativeScore,
			NeutralDensity:     d.NeutralScore,
			EmotionalIntensity: intensity,
			ProcessingMethod:   "word-list classification",
		},
	}
	d.PositiveScore = round(d.PositiveScore, 1)
	d.NegativeScore = round(d.NegativeScore, 1)
	d.NeutralScore = round(d.NeutralScore, 1)
	m.Details = d
	return m
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
