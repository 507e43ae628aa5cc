package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"

	"github.com/fury1991/my-sport-challenge/challenge"
)

type HttpServer struct {
	challengeSrvc *challenge.Service
	router        *chi.Mux
}

func NewHttpServer(challengeSrvc *challenge.Service, allowedOrigins []string) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("sport-challenge", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"service": "leaderboard",
		},
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           3000,
	}))

	server := &HttpServer{
		challengeSrvc: challengeSrvc,
		router:        router,
	}

	server.routes()

	return server
}

func (s *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, s.router)
}

func (s *HttpServer) Handler() http.Handler {
	return s.router
}

func (s *HttpServer) routes() {
	r := s.router
	r.Get("/challenges", s.listChallenges)
	r.Get("/challenges/current", s.getCurrentChallenge)
	r.Get("/challenges/{challengeKey}", s.getChallenge)
	r.Get("/challenges/{challengeKey}/leaderboard", s.getLeaderboard)
	r.Get("/challenges/{challengeKey}/athletes/{athleteID}/activities", s.getActivityFeed)
	r.Get("/challenges/{challengeKey}/chart", s.getChartSeries)
}
