package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Shamsear/kickoff/docs"
	"github.com/Shamsear/kickoff/handlers"
	"github.com/Shamsear/kickoff/logging"
	"github.com/Shamsear/kickoff/middleware"
)

type Handlers struct {
	Tournaments  *handlers.TournamentHandler
	Registration *handlers.RegistrationHandler
	Fixtures     *handlers.FixtureHandler
	Matches      *handlers.MatchHandler
	Standings    *handlers.StandingsHandler
	WebSocket    *handlers.WebSocketHandler
}

type Options struct {
	JWTSecret      []byte
	AllowedOrigins []string
	// Metrics serves /metrics when set.
	Metrics http.Handler
	// Exports serves /exports/{key} when standings snapshots stay in process.
	Exports http.Handler
	Logger  *logging.Logger
}

const requestTimeout = 30 * time.Second

func NewRouter(h Handlers, opts Options) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	router := chi.NewRouter()
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.RequestLogger(&chiMiddleware.DefaultLogFormatter{Logger: logger.StdLog(), NoColor: true}))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Location"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/health", handlers.Health)
	if opts.Metrics != nil {
		router.Handle("/metrics", opts.Metrics)
	}
	if opts.Exports != nil {
		router.Handle("/exports/*", http.StripPrefix("/exports/", opts.Exports))
	}
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Websocket connections outlive the request timeout.
	router.Get("/ws/tournaments/{tournamentID}", h.WebSocket.ServeWs)

	authenticate := middleware.Authenticate(opts.JWTSecret)

	router.Group(func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(requestTimeout))

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", h.Tournaments.ListHandler)
			r.With(authenticate).Post("/", h.Tournaments.CreateHandler)

			r.Route("/{tournamentID}", func(r chi.Router) {
				r.Get("/", h.Tournaments.GetByIDHandler)
				r.Get("/participants", h.Registration.ListParticipants)
				r.Get("/teams", h.Registration.ListTeams)
				r.Get("/matches", h.Matches.List)
				r.Get("/matches/{matchID}", h.Matches.Get)
				r.Get("/standings", h.Standings.Get)

				r.Group(func(r chi.Router) {
					r.Use(authenticate)

					r.Patch("/status", h.Tournaments.UpdateStatusHandler)
					r.Delete("/", h.Tournaments.DeleteHandler)

					r.Post("/participants", h.Registration.AddParticipant)
					r.Post("/participants/{participantID}/approve", h.Registration.ApproveParticipant)
					r.Post("/teams", h.Registration.AddTeam)
					r.Post("/teams/{teamID}/approve", h.Registration.ApproveTeam)
					r.Post("/teams/{teamID}/players", h.Registration.AddPlayer)

					r.Post("/fixtures", h.Fixtures.Generate)
					r.Post("/fixtures/advance", h.Fixtures.Advance)

					r.Post("/matches/{matchID}/result", h.Matches.SaveResult)
					r.Post("/matches/{matchID}/start", h.Matches.Start)
					r.Post("/matches/{matchID}/reset", h.Matches.Reset)
					r.Delete("/matches/{matchID}", h.Matches.Delete)

					r.Post("/standings/export", h.Standings.Export)
				})
			})
		})
	})

	return router
}
