package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/nexscore-api/internal/config"
	"github.com/vfg2006/nexscore-api/internal/domain"
	regionmocks "github.com/vfg2006/nexscore-api/internal/usecases/marketregion/mocks"
	scoringmocks "github.com/vfg2006/nexscore-api/internal/usecases/scoring/mocks"
	"github.com/vfg2006/nexscore-api/pkg/log"
	"go.uber.org/mock/gomock"
)

type staticStatus map[string]any

func (s staticStatus) GetStatus() map[string]any { return s }

func newTestServer(t *testing.T) (*Server, *scoringmocks.MockScorer) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	scorer := scoringmocks.NewMockScorer(ctrl)
	dropdown := regionmocks.NewMockMarketRegionService(ctrl)

	cfg := &config.Config{
		Server: config.Server{Host: "127.0.0.1", Port: "0"},
		Cors:   config.Cors{AllowedOrigins: []string{"*"}},
	}

	srv, err := New(cfg, scorer, dropdown, staticStatus{})
	require.NoError(t, err)

	return srv, scorer
}

func TestServer_Handler(t *testing.T) {
	srv, scorer := newTestServer(t)
	scorer.EXPECT().
		GetLatestScores(gomock.Any(), "", "").
		Return(&domain.LatestScoreResponse{Data: []domain.RegionNode{}, Type: "influencer"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/nex-score", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	assert.JSONEq(t, `{"data":[],"type":"influencer"}`, rec.Body.String())
}

func TestServer_UnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "DATA_003")
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run não retornou após o cancelamento")
	}
}
