package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"

	"github.com/fury1991/my-sport-challenge/httpjson"
)

func (s *HttpServer) listChallenges(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	infos, err := s.challengeSrvc.Challenges(r.Context())
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapChallengeInfosResponse(infos))
}

func (s *HttpServer) getCurrentChallenge(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	key, err := s.challengeSrvc.CurrentChallenge(r.Context())
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, map[string]string{"key": key})
}

func (s *HttpServer) getChallenge(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())
	challengeKey := chi.URLParam(r, "challengeKey")

	snap, err := s.challengeSrvc.Snapshot(r.Context(), challengeKey)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapChallengeResponse(snap.Challenge, snap.Metadata))
}
