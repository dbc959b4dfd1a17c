package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AdamBeresnev/bg-tourney-app/internal/httputil"
	"github.com/AdamBeresnev/bg-tourney-app/internal/service"
	"github.com/AdamBeresnev/bg-tourney-app/internal/store"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
)

type createTournamentRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	TotalRounds   int    `json:"totalRounds"`
	ScoringSystem []int  `json:"scoringSystem"`
}

type registerPlayerRequest struct {
	Nickname string `json:"nickname"`
	GameID   string `json:"gameId"`
}

type recordScoreRequest struct {
	Round int `json:"round"`
	Rank  int `json:"rank"`
}

type startResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func newRouter(database *sqlx.DB) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	// The registration share link is opened from arbitrary origins.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	dataStore := store.NewDataStore(database)
	tournamentService := service.NewTournamentService(dataStore)
	registrationService := service.NewRegistrationService(dataStore)
	scoringService := service.NewScoringService(dataStore)

	// Serve static files
	fileServer := http.FileServer(http.Dir("./static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	r.Route("/api/tournaments", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			tournaments, err := tournamentService.ListTournaments(r.Context())
			if err != nil {
				httputil.InternalServerError(w, "Failed to list tournaments", err)
				return
			}
			httputil.JSON(w, http.StatusOK, tournaments)
		})

		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var req createTournamentRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httputil.BadRequest(w, "Invalid request body", err)
				return
			}

			t, err := tournamentService.CreateTournament(r.Context(), req.Name, req.Description, req.TotalRounds, req.ScoringSystem)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			httputil.JSON(w, http.StatusCreated, t)
		})

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				t, err := tournamentService.GetTournament(r.Context(), chi.URLParam(r, "id"))
				if err != nil {
					writeServiceError(w, err)
					return
				}
				httputil.JSON(w, http.StatusOK, t)
			})

			r.Post("/players", func(w http.ResponseWriter, r *http.Request) {
				var req registerPlayerRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					httputil.BadRequest(w, "Invalid request body", err)
					return
				}

				player, err := registrationService.RegisterPlayer(r.Context(), chi.URLParam(r, "id"), req.Nickname, req.GameID)
				if err != nil {
					writeServiceError(w, err)
					return
				}
				httputil.JSON(w, http.StatusCreated, player)
			})

			r.Post("/start", func(w http.ResponseWriter, r *http.Request) {
				err := tournamentService.StartTournament(r.Context(), chi.URLParam(r, "id"))
				if err != nil {
					// Precondition failures carry a count-specific
					// message the organizer sees inline.
					if errors.Is(err, service.ErrNotEnoughPlayers) || errors.Is(err, service.ErrUnevenGroups) {
						httputil.JSON(w, http.StatusConflict, startResponse{Success: false, Message: err.Error()})
						return
					}
					writeServiceError(w, err)
					return
				}
				httputil.JSON(w, http.StatusOK, startResponse{Success: true})
			})

			r.Post("/complete", func(w http.ResponseWriter, r *http.Request) {
				if err := tournamentService.CompleteTournament(r.Context(), chi.URLParam(r, "id")); err != nil {
					writeServiceError(w, err)
					return
				}
				w.WriteHeader(http.StatusNoContent)
			})

			r.Put("/players/{playerID}/score", func(w http.ResponseWriter, r *http.Request) {
				var req recordScoreRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					httputil.BadRequest(w, "Invalid request body", err)
					return
				}

				err := scoringService.RecordRank(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "playerID"), req.Round, req.Rank)
				if err != nil {
					writeServiceError(w, err)
					return
				}
				w.WriteHeader(http.StatusNoContent)
			})

			r.Get("/standings", func(w http.ResponseWriter, r *http.Request) {
				t, err := tournamentService.GetTournament(r.Context(), chi.URLParam(r, "id"))
				if err != nil {
					writeServiceError(w, err)
					return
				}
				httputil.JSON(w, http.StatusOK, service.ComputeStandings(t))
			})
		})
	})

	return r
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTournamentNotFound),
		errors.Is(err, service.ErrPlayerNotFound):
		httputil.NotFound(w, err.Error(), nil)
	case errors.Is(err, service.ErrDuplicatePlayer),
		errors.Is(err, service.ErrRegistrationClosed),
		errors.Is(err, service.ErrAlreadyStarted),
		errors.Is(err, service.ErrTournamentNotActive):
		httputil.Conflict(w, err.Error(), nil)
	case errors.Is(err, service.ErrNicknameRequired),
		errors.Is(err, service.ErrGameIDRequired),
		errors.Is(err, service.ErrInvalidRounds),
		errors.Is(err, service.ErrInvalidScoring),
		errors.Is(err, service.ErrInvalidRound),
		errors.Is(err, service.ErrInvalidRank):
		httputil.BadRequest(w, err.Error(), nil)
	default:
		httputil.InternalServerError(w, "Unexpected error", err)
	}
}
