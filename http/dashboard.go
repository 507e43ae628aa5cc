package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"

	"github.com/fury1991/my-sport-challenge/challenge"
	"github.com/fury1991/my-sport-challenge/httpjson"
)

func (s *HttpServer) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())
	challengeKey := chi.URLParam(r, "challengeKey")

	snap, err := s.challengeSrvc.Snapshot(r.Context(), challengeKey)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapLeaderboardResponse(snap.Standings.Leaderboard()))
}

func (s *HttpServer) getActivityFeed(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())
	challengeKey := chi.URLParam(r, "challengeKey")
	athleteID := chi.URLParam(r, "athleteID")

	snap, err := s.challengeSrvc.Snapshot(r.Context(), challengeKey)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	feed, ok := snap.Standings.ActivityFeed(athleteID)
	if !ok {
		httpjson.HandleError(logger, w, challenge.ErrAthleteNotFound())
		return
	}

	httpjson.WriteSuccessJson(w, mapFeedResponse(feed))
}

func (s *HttpServer) getChartSeries(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())
	challengeKey := chi.URLParam(r, "challengeKey")

	snap, err := s.challengeSrvc.Snapshot(r.Context(), challengeKey)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapChartResponse(snap.Standings.ChartSeries()))
}
