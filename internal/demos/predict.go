package demos

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
)

const (
	passThreshold = 180
	noiseSigma    = 10
	modelAccuracy = 85
)

// Student is the input of the pass predictor. Pointer fields distinguish
// a missing value from zero.
type Student struct {
	StudyHours      *float64 `json:"study_hours"`
	SleepHours      *float64 `json:"sleep_hours"`
	Attendance      *float64 `json:"attendance"`
	ClassAvgScore   *float64 `json:"class_avg_score"`
	TestScore       *float64 `json:"student_test_score"`
	AssignmentScore *float64 `json:"student_assignment_score"`
	FailedBefore    *float64 `json:"num_failed_before"`
	Participation   *float64 `json:"participation_score"`
}

func (s Student) fields() []*float64 {
	return []*float64{
		s.StudyHours, s.SleepHours, s.Attendance, s.ClassAvgScore,
		s.TestScore, s.AssignmentScore, s.FailedBefore, s.Participation,
	}
}

// Complete reports whether every field was supplied.
func (s Student) Complete() bool {
	for _, f := range s.fields() {
		if f == nil {
			return false
		}
	}
	return true
}

// Key identifies the input for caching.
func (s Student) Key() string {
	return fmt.Sprintf("%g-%g-%g-%g-%g-%g-%g-%g",
		*s.StudyHours, *s.SleepHours, *s.Attendance, *s.ClassAvgScore,
		*s.TestScore, *s.AssignmentScore, *s.FailedBefore, *s.Participation)
}

// Prediction is the result of Predict.
type Prediction struct {
	Success       bool     `json:"success"`
	Prediction    int      `json:"prediction"`
	Label         string   `json:"label"`
	Confidence    float64  `json:"confidence"`
	ProbPass      float64  `json:"prob_pass"`
	ProbFail      float64  `json:"prob_fail"`
	Factors       []string `json:"factors"`
	ModelAccuracy float64  `json:"model_accuracy"`
}

// Score is the weighted sum of the inputs before noise.
func Score(s Student) float64 {
	return *s.StudyHours*4 +
		*s.SleepHours*1.5 +
		*s.Attendance*0.5 +
		*s.ClassAvgScore*0.3 +
		*s.TestScore*1.2 +
		*s.AssignmentScore*1.0 +
		*s.Participation*2 -
		*s.FailedBefore*8
}

// Predictor scores students with Gaussian noise added. It is safe for
// concurrent use.
type Predictor struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPredictor seeds the noise source. Equal seeds give equal predictions.
func NewPredictor(seed uint64) *Predictor {
	return &Predictor{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Predict classifies s. The caller must check Complete first.
func (p *Predictor) Predict(s Student) Prediction {
	p.mu.Lock()
	noise := p.rng.NormFloat64()
	p.mu.Unlock()
	score := Score(s) + noise*noiseSigma
	pass := 0
	if score > passThreshold {
		pass = 1
	}
	probPass := math.Min(0.95, math.Max(0.05, score/(passThreshold*1.5)))
	probs := [2]float64{1 - probPass, probPass}

	label := "Fail"
	if pass == 1 {
		label = "Pass"
	}
	return Prediction{
		Success:       true,
		Prediction:    pass,
		Label:         label,
		Confidence:    round(probs[pass]*100, 2),
		ProbPass:      round(probs[1]*100, 2),
		ProbFail:      round(probs[0]*100, 2),
		Factors:       Factors(s),
		ModelAccuracy: modelAccuracy,
	}
}

// Factors lists the notable inputs in a fixed order.
func Factors(s Student) []string {
	factors := []string{}
	if *s.StudyHours >= 6 {
		factors = append(factors, "Good study hours")
	}
	if *s.Attendance >= 75 {
		factors = append(factors, "High attendance")
	}
	if *s.TestScore >= 70 {
		factors = append(factors, "Good test score")
	}
	if *s.AssignmentScore >= 70 {
		factors = append(factors, "Strong assignment score")
	}
	if *s.Participation >= 6 {
		factors = append(factors, "Active participation")
	}
	if *s.FailedBefore > 0 {
		factors = append(factors, "Past failures may affect result")
	}
	return factors
}
