package demos

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-dev/folio/internal/cache"
)

func f(v float64) *float64 { return &v }

func strongStudent() Student {
	return Student{
		StudyHours: f(8), SleepHours: f(7), Attendance: f(95), ClassAvgScore: f(70),
		TestScore: f(85), AssignmentScore: f(90), FailedBefore: f(0), Participation: f(8),
	}
}

func TestAnalyzeMood(t *testing.T) {
	m := AnalyzeMood("I love this, it is great and amazing!")
	assert.Equal(t, "Positive", m.Mood)
	assert.Equal(t, 3, m.Details.PositiveCount)
	assert.Equal(t, 8, m.Details.TotalWords)
	assert.LessOrEqual(t, m.Confidence, 95.0)

	neg := AnalyzeMood("terrible awful day")
	assert.Equal(t, "Negative", neg.Mood)

	// Repeated words count once.
	rep := AnalyzeMood("sad sad sad happy")
	assert.Equal(t, 1, rep.Details.NegativeCount)
	assert.Equal(t, 1, rep.Details.PositiveCount)
	assert.Equal(t, "Neutral", rep.Mood)

	empty := AnalyzeMood("!!!")
	assert.Equal(t, "Neutral", empty.Mood)
	assert.Equal(t, 50.0, empty.Confidence)
}

func TestScoreAndFactors(t *testing.T) {
	s := strongStudent()
	assert.InDelta(t, 8*4+7*1.5+95*0.5+70*0.3+85*1.2+90+8*2, Score(s), 1e-9)
	assert.Equal(t, []string{
		"Good study hours", "High attendance", "Good test score",
		"Strong assignment score", "Active participation",
	}, Factors(s))

	s.FailedBefore = f(2)
	assert.Contains(t, Factors(s), "Past failures may affect result")
}

func TestPredict(t *testing.T) {
	p := NewPredictor(1).Predict(strongStudent())
	assert.Equal(t, "Pass", p.Label)
	assert.Equal(t, 1, p.Prediction)
	assert.Equal(t, 95.0, p.ProbPass)
	assert.InDelta(t, 100, p.ProbPass+p.ProbFail, 1e-9)
	assert.Equal(t, 85.0, p.ModelAccuracy)

	weak := Student{
		StudyHours: f(0), SleepHours: f(4), Attendance: f(20), ClassAvgScore: f(40),
		TestScore: f(10), AssignmentScore: f(10), FailedBefore: f(10), Participation: f(0),
	}
	wp := NewPredictor(1).Predict(weak)
	assert.Equal(t, "Fail", wp.Label)
	assert.Equal(t, 5.0, wp.ProbPass)
	assert.Equal(t, 95.0, wp.Confidence)
}

func TestPredictConcurrent(t *testing.T) {
	mid := Student{
		StudyHours: f(5), SleepHours: f(7), Attendance: f(80), ClassAvgScore: f(70),
		TestScore: f(50), AssignmentScore: f(40), FailedBefore: f(0), Participation: f(5),
	}
	const n = 64

	seq := NewPredictor(3)
	want := make([]float64, n)
	for i := range want {
		want[i] = seq.Predict(mid).ProbPass
	}

	shared := NewPredictor(3)
	got := make([]float64, n)
	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = shared.Predict(mid).ProbPass
		}()
	}
	wg.Wait()

	// Each draw is taken exactly once, in some order.
	slices.Sort(want)
	slices.Sort(got)
	assert.Equal(t, want, got)
}

func newRouter() chi.Router {
	r := chi.NewRouter()
	RegisterRoutes(r, NewService(NewPredictor(7), cache.New[Mood](nil), cache.New[Prediction](nil)))
	return r
}

func TestMoodRoute(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/mood-analysis", strings.NewReader(`{"text":""}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please provide text for analysis")

	for _, body := range []string{`{"text":"so happy"`, `{"text":42}`, `not json`} {
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/api/mood-analysis", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "Please provide text for analysis", body)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/mood-analysis", strings.NewReader(`{"text":"so happy"}`)))
	require.Equal(t, http.StatusOK, w.Code)
	var m Mood
	require.NoError(t, json.NewDecoder(w.Body).Decode(&m))
	assert.True(t, m.Success)
	assert.Equal(t, "Positive", m.Mood)
}

func TestPredictRouteCaches(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/pass-predict", strings.NewReader(`{"study_hours":5}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing fields.")

	body, _ := json.Marshal(strongStudent())
	var first, second string
	for _, out := range []*string{&first, &second} {
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/api/pass-predict", strings.NewReader(string(body))))
		require.Equal(t, http.StatusOK, w.Code)
		*out = w.Body.String()
	}
	assert.Equal(t, first, second)
}
