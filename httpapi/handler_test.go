package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	bandalloc "github.com/Anoushka222/DAA-Project"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := bandalloc.TestConfig()
	engine, err := bandalloc.New(&cfg, bandalloc.WithRandomSeed(1))
	require.NoError(t, err)

	return NewHandler(engine, nil)
}

func TestHandler_SingleStrategy(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet,
		"/v1/allocate?capacity=100&demands=50,40,30,60,20&strategy=greedy", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp bandalloc.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, bandalloc.StrategyGreedy, resp.Strategy)
	require.NotNil(t, resp.Allocation)
	require.Equal(t, []int64{60, 40}, resp.Allocation.Grants)
	require.Equal(t, int64(100), resp.Allocation.Total)
	require.Nil(t, resp.Report)
}

func TestHandler_Auto(t *testing.T) {
	handler := newTestHandler(t)

	form := url.Values{
		"capacity": {"100"},
		"demands":  {"50,40,30,60,20"},
		"strategy": {"auto"},
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/allocate",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp bandalloc.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Nil(t, resp.Allocation)
	require.NotNil(t, resp.Report)
	require.Equal(t, int64(100), resp.Report.BestTotal)
	require.Len(t, resp.Report.Totals, 4)
}

func TestHandler_DefaultsToAuto(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/allocate?capacity=50&demands=10,20", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp bandalloc.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Report)
}

func TestHandler_Errors(t *testing.T) {
	handler := newTestHandler(t)

	t.Run("unknown strategy", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/v1/allocate?capacity=10&demands=5&strategy=quantum", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative capacity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/v1/allocate?capacity=-1&demands=5&strategy=greedy", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("resource limit exceeded", func(t *testing.T) {
		// TestConfig bounds DP at capacity 1000.
		req := httptest.NewRequest(http.MethodGet,
			"/v1/allocate?capacity=2000&demands=5&strategy=dp", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/v1/allocate", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestParseDemands(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []int64
	}{
		{"plain list", "50,40,30,60,20", []int64{50, 40, 30, 60, 20}},
		{"whitespace tolerated", " 50 , 40 ,30", []int64{50, 40, 30}},
		{"non-numeric tokens dropped", "50,forty,30", []int64{50, 30}},
		{"empty tokens dropped", "50,,30,", []int64{50, 30}},
		{"non-positive values dropped", "0,-5,30", []int64{30}},
		{"fractional values dropped", "12.5,30", []int64{30}},
		{"empty input", "", []int64{}},
		{"all garbage", "a, b, ?", []int64{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ParseDemands(tc.input))
		})
	}
}
