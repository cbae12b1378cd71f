package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/aruneshvv/review-intel/internal/model"
	"github.com/aruneshvv/review-intel/pkg/llm"
)

type fakeSession struct {
	state   model.AnalysisState
	started []string
}

func (f *fakeSession) State() model.AnalysisState {
	return f.state
}

func (f *fakeSession) Start(product string) {
	f.started = append(f.started, product)
}

type fakeAnalysisStore struct {
	records []model.AnalysisRecord
	total   int
	latest  *model.AnalysisRecord
	err     error
}

func (f *fakeAnalysisStore) GetAnalyses(limit, offset int) ([]model.AnalysisRecord, error) {
	return f.records, f.err
}

func (f *fakeAnalysisStore) GetAnalysisTotal() (int, error) {
	return f.total, f.err
}

func (f *fakeAnalysisStore) GetLatestByProduct(product string) (*model.AnalysisRecord, error) {
	return f.latest, f.err
}

func newTestSessionRouter(sess AnalysisSession, store AnalysisStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSessionHandler(sess, store)
	r.GET("/state", h.GetState)
	r.POST("/analyze", h.StartAnalysis)
	r.GET("/analyses", h.GetAnalyses)
	r.GET("/analyses/latest", h.GetLatestAnalysis)
	return r
}

func TestGetState(t *testing.T) {
	sess := &fakeSession{
		state: model.AnalysisState{
			Status:  model.StatusSuccess,
			Product: "Framework Laptop",
			Result: &llm.SentimentResult{
				Score:      0.8,
				Sentiment:  llm.SentimentPositive,
				SampleSize: 2,
			},
		},
	}

	r := newTestSessionRouter(sess, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/state", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res model.AnalysisState
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, model.StatusSuccess, res.Status)
	assert.Equal(t, "Framework Laptop", res.Product)
	assert.Equal(t, 0.8, res.Result.Score)
}

func TestStartAnalysis_AcknowledgesImmediately(t *testing.T) {
	sess := &fakeSession{}
	r := newTestSessionRouter(sess, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/analyze", strings.NewReader(`{"text": "Framework Laptop"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, []string{"Framework Laptop"}, sess.started)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "started", res["status"])
}

func TestStartAnalysis_BlankTextStillAcknowledged(t *testing.T) {
	// Validation of the subject happens inside the session, which
	// turns blanks into an error state.
	sess := &fakeSession{}
	r := newTestSessionRouter(sess, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/analyze", strings.NewReader(`{"text": "  "}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, 1, len(sess.started))
}

func TestStartAnalysis_MalformedBody(t *testing.T) {
	sess := &fakeSession{}
	r := newTestSessionRouter(sess, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/analyze", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, len(sess.started))
}

func TestGetAnalyses_ReturnsHistory(t *testing.T) {
	store := &fakeAnalysisStore{
		records: []model.AnalysisRecord{
			{
				ID:         1,
				Product:    "Framework Laptop",
				Score:      0.8,
				Sentiment:  llm.SentimentPositive,
				Summary:    "People like it.",
				Positives:  []string{"x"},
				Negatives:  []string{"y"},
				SampleSize: 2,
				CreatedAt:  time.Now(),
			},
		},
		total: 1,
	}

	r := newTestSessionRouter(&fakeSession{}, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/analyses?limit=10&offset=0", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res AnalysesResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 1, len(res.Analyses))
	assert.Equal(t, "Framework Laptop", res.Analyses[0].Product)
	assert.Equal(t, 2, res.Analyses[0].SampleSize)
}

func TestGetAnalyses_DBError(t *testing.T) {
	store := &fakeAnalysisStore{err: errors.New("DB down")}
	r := newTestSessionRouter(&fakeSession{}, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/analyses", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetAnalyses_HistoryDisabled(t *testing.T) {
	r := newTestSessionRouter(&fakeSession{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/analyses", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLatestAnalysis_Found(t *testing.T) {
	store := &fakeAnalysisStore{
		latest: &model.AnalysisRecord{
			ID:        7,
			Product:   "Framework Laptop",
			Sentiment: llm.SentimentMixed,
			CreatedAt: time.Now(),
		},
	}

	r := newTestSessionRouter(&fakeSession{}, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/analyses/latest?product=Framework+Laptop", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res AnalysisResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, int64(7), res.ID)
	assert.Equal(t, llm.SentimentMixed, res.Sentiment)
}

func TestGetLatestAnalysis_NotFound(t *testing.T) {
	r := newTestSessionRouter(&fakeSession{}, &fakeAnalysisStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/analyses/latest?product=unknown", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLatestAnalysis_MissingProduct(t *testing.T) {
	r := newTestSessionRouter(&fakeSession{}, &fakeAnalysisStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/analyses/latest", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
