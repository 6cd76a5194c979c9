package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MikeSquared-Agency/Atlas/internal/dataset"
	"github.com/MikeSquared-Agency/Atlas/internal/geocode"
	"github.com/MikeSquared-Agency/Atlas/internal/hermes"
	"github.com/MikeSquared-Agency/Atlas/internal/scoring"
)

func postScores(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/scores", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeScores(t *testing.T, rr *httptest.ResponseRecorder) ComputeScoresResponse {
	t.Helper()
	var resp ComputeScoresResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	return resp
}

func TestComputeScoresDefaults(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	rr := postScores(t, router, `{}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	resp := decodeScores(t, rr)
	assert.False(t, resp.ZipMatched)
	assert.Equal(t, scoring.DefaultWeights(), resp.Weights)
	assert.Len(t, resp.Regions, 10)

	for _, sr := range resp.Regions {
		assert.Equal(t, sr.BaseScore, sr.FinalScore, sr.Code)
		assert.Nil(t, sr.ProximityMultiplier, sr.Code)
	}
}

func TestComputeScoresConfiguredDefaults(t *testing.T) {
	// An operator-configured weight set, not the neutral 0.2s, must drive
	// requests that omit weights.
	configured := scoring.WeightSet{Income: 1}
	scorer := scoring.NewScorer(0, testLogger())
	resolver := geocode.NewStatic(geocode.DefaultTable())
	router := NewRouter(dataset.Default(), scorer, resolver, deadBoundaryClient(t), &mockHermes{}, configured, "", testLogger())

	rr := postScores(t, router, `{}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	resp := decodeScores(t, rr)
	assert.Equal(t, configured, resp.Weights)
	// Income-only weighting puts New York (income 9) on top
	assert.Equal(t, "NY", resp.Regions[0].Code)
	assert.Equal(t, 9.0, resp.Regions[0].FinalScore)

	// Explicit weights in the request still win over the configured default
	rr = postScores(t, router, `{"weights":{"income":0.2,"cost_of_living":0.2,"crime_rate":0.2,"job_opportunities":0.2,"climate":0.2}}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, scoring.DefaultWeights(), decodeScores(t, rr).Weights)
}

func TestComputeScoresRankedDescending(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	rr := postScores(t, router, `{"weights":{"income":1,"cost_of_living":0,"crime_rate":0,"job_opportunities":0,"climate":0}}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	resp := decodeScores(t, rr)
	// Income weight 1: New York (income 9) ranks first
	assert.Equal(t, "NY", resp.Regions[0].Code)
	assert.Equal(t, 9.0, resp.Regions[0].FinalScore)
	for i := 1; i < len(resp.Regions); i++ {
		assert.LessOrEqual(t, resp.Regions[i].FinalScore, resp.Regions[i-1].FinalScore)
	}
}

func TestComputeScoresWithZip(t *testing.T) {
	router, h := setupTestRouter(t, "")

	rr := postScores(t, router, `{"zip":"90001"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	resp := decodeScores(t, rr)
	assert.True(t, resp.ZipMatched)

	// Proximity to Los Angeles puts California on top
	assert.Equal(t, "CA", resp.Regions[0].Code)
	assert.InDelta(t, 10.93, resp.Regions[0].FinalScore, 0.05)

	for _, sr := range resp.Regions {
		if assert.NotNil(t, sr.ProximityMultiplier, sr.Code) {
			assert.Greater(t, *sr.ProximityMultiplier, 0.0, sr.Code)
			assert.LessOrEqual(t, *sr.ProximityMultiplier, 1.0, sr.Code)
		}
		assert.GreaterOrEqual(t, sr.FinalScore, sr.BaseScore, sr.Code)
	}

	// One score.computed event per computation
	events := h.events()
	if assert.Len(t, events, 1) {
		assert.Equal(t, hermes.SubjectScoreComputed, events[0].subject)
		ev, ok := events[0].data.(hermes.ScoreComputedEvent)
		if assert.True(t, ok) {
			assert.Equal(t, "CA", ev.TopRegion)
			assert.True(t, ev.ZipMatched)
			assert.Equal(t, 10, ev.RegionCount)
			assert.NotEmpty(t, ev.EventID)
		}
	}
}

func TestComputeScoresUnknownZip(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	rr := postScores(t, router, `{"zip":"99999"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	// Behaves exactly like the no-zip case
	resp := decodeScores(t, rr)
	assert.False(t, resp.ZipMatched)
	for _, sr := range resp.Regions {
		assert.Equal(t, sr.BaseScore, sr.FinalScore, sr.Code)
		assert.Nil(t, sr.ProximityMultiplier, sr.Code)
	}
}

func TestComputeScoresInvalidBody(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	for _, body := range []string{``, `not json`, `{"weights":{"income":1e999}}`} {
		rr := postScores(t, router, body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
}

func TestComputeScoresCaliforniaBase(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	rr := postScores(t, router, `{"weights":{"income":0.2,"cost_of_living":0.2,"crime_rate":0.2,"job_opportunities":0.2,"climate":0.2}}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	resp := decodeScores(t, rr)
	for _, sr := range resp.Regions {
		if sr.Code == "CA" {
			assert.InDelta(t, 7.2, sr.FinalScore, 1e-9)
			return
		}
	}
	t.Fatal("California missing from response")
}
