package catalog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/daya-2619/fitnesstracking/internal/httperr"
	"github.com/daya-2619/fitnesstracking/internal/middleware"
	"github.com/daya-2619/fitnesstracking/internal/retry"
	"github.com/daya-2619/fitnesstracking/internal/telemetry/tracing"
	"github.com/daya-2619/fitnesstracking/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=catalog_test

type exercisesService interface {
	Create(ctx context.Context, exercise Exercise) (*Exercise, error)
	Get(ctx context.Context, id int) (*Exercise, error)
	AddReview(ctx context.Context, reviewerID string, id, rating int, comment string) (*Exercise, error)
	RemoveReview(ctx context.Context, reviewerID string, id int) (*Exercise, error)
	Popular(ctx context.Context, limit int) ([]Exercise, error)
	Search(ctx context.Context, params SearchParams) ([]Exercise, error)
	ByCategory(ctx context.Context, category Category, limit int) ([]Exercise, error)
	Categories(ctx context.Context) ([]Category, error)
	MuscleGroups(ctx context.Context) ([]string, error)
}

type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type Handler struct {
	service exercisesService
	retrier *retry.Retrier
}

func NewHandler(service exercisesService, retrier *retry.Retrier) *Handler {
	return &Handler{
		service: service,
		retrier: retrier,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises", h.HandleCreate).Methods("POST", "OPTIONS").Name("create-exercise")
	r.HandleFunc("/exercises", h.HandleSearch).Methods("GET", "OPTIONS").Name("search-exercises")
	r.HandleFunc("/exercises/popular", h.HandlePopular).Methods("GET", "OPTIONS").Name("popular-exercises")
	r.HandleFunc("/exercises/categories", h.HandleCategories).Methods("GET", "OPTIONS").Name("exercise-categories")
	r.HandleFunc("/exercises/muscle-groups", h.HandleMuscleGroups).Methods("GET", "OPTIONS").Name("exercise-muscle-groups")
	r.HandleFunc("/exercises/category/{category}", h.HandleByCategory).Methods("GET", "OPTIONS").Name("exercises-by-category")
	r.HandleFunc("/exercises/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercises/{id}/reviews", h.HandleAddReview).Methods("POST", "OPTIONS").Name("add-review")
	r.HandleFunc("/exercises/{id}/reviews", h.HandleRemoveReview).Methods("DELETE", "OPTIONS").Name("remove-review")
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.create")
	defer span.End()

	var exercise Exercise
	if err := pkg.DecodeJSONBody(r, &exercise); err != nil {
		log.Tracef("create exercise, decode body: %s", err)
		http.Error(w, "create exercise failed, invalid body", http.StatusBadRequest)
		return
	}

	added, err := h.service.Create(ctx, exercise)
	if err != nil {
		httperr.Write(w, err, "create exercise")
		return
	}

	log.Debugf("exercise %d [%s] created", added.ID, added.Name)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.get")
	defer span.End()

	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	h.mutateAndRespond(ctx, w, "get exercise", func(ctx context.Context) (*Exercise, error) {
		return h.service.Get(ctx, id)
	})
}

func (h *Handler) HandlePopular(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.popular")
	defer span.End()

	limit, err := queryLimit(r)
	if err != nil {
		http.Error(w, "error, limit NaN", http.StatusBadRequest)
		return
	}

	exercises, err := h.service.Popular(ctx, limit)
	if err != nil {
		httperr.Write(w, err, "get popular exercises")
		return
	}
	pkg.WriteJSON(w, exercises, http.StatusOK)
}

// HandleSearch filters the catalog by ?q=&category=&difficulty=&muscleGroup=&equipment=&minRating=&limit=.
// muscleGroup may be repeated and matches any of the given groups.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.search")
	defer span.End()

	query := r.URL.Query()
	params := SearchParams{
		Query:        query.Get("q"),
		Category:     Category(query.Get("category")),
		Difficulty:   Difficulty(query.Get("difficulty")),
		MuscleGroups: query["muscleGroup"],
		Equipment:    Equipment(query.Get("equipment")),
	}
	if minRatingParam := query.Get("minRating"); minRatingParam != "" {
		minRating, err := strconv.ParseFloat(minRatingParam, 64)
		if err != nil {
			http.Error(w, "error, minRating NaN", http.StatusBadRequest)
			return
		}
		params.MinRating = minRating
	}
	limit, err := queryLimit(r)
	if err != nil {
		http.Error(w, "error, limit NaN", http.StatusBadRequest)
		return
	}
	params.Limit = limit

	exercises, err := h.service.Search(ctx, params)
	if err != nil {
		httperr.Write(w, err, "search exercises")
		return
	}
	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (h *Handler) HandleByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.bycategory")
	defer span.End()

	category := Category(mux.Vars(r)["category"])
	limit, err := queryLimit(r)
	if err != nil {
		http.Error(w, "error, limit NaN", http.StatusBadRequest)
		return
	}

	exercises, err := h.service.ByCategory(ctx, category, limit)
	if err != nil {
		httperr.Write(w, err, "get exercises by category")
		return
	}
	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.categories")
	defer span.End()

	found, err := h.service.Categories(ctx)
	if err != nil {
		httperr.Write(w, err, "get categories")
		return
	}
	pkg.WriteJSON(w, found, http.StatusOK)
}

func (h *Handler) HandleMuscleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.musclegroups")
	defer span.End()

	found, err := h.service.MuscleGroups(ctx)
	if err != nil {
		httperr.Write(w, err, "get muscle groups")
		return
	}
	pkg.WriteJSON(w, found, http.StatusOK)
}

// queryLimit returns ?limit=, or 0 when it is not set.
func queryLimit(r *http.Request) (int, error) {
	limitParam := r.URL.Query().Get("limit")
	if limitParam == "" {
		return 0, nil
	}
	return strconv.Atoi(limitParam)
}

func (h *Handler) HandleAddReview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.addreview")
	defer span.End()

	reviewerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	var req ReviewRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		http.Error(w, "add review failed, invalid body", http.StatusBadRequest)
		return
	}

	h.mutateAndRespond(ctx, w, "add review", func(ctx context.Context) (*Exercise, error) {
		return h.service.AddReview(ctx, reviewerID, id, req.Rating, req.Comment)
	})
}

func (h *Handler) HandleRemoveReview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.removereview")
	defer span.End()

	reviewerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	h.mutateAndRespond(ctx, w, "remove review", func(ctx context.Context) (*Exercise, error) {
		return h.service.RemoveReview(ctx, reviewerID, id)
	})
}

func (h *Handler) mutateAndRespond(
	ctx context.Context,
	w http.ResponseWriter,
	action string,
	mutation func(ctx context.Context) (*Exercise, error),
) {
	var updated *Exercise
	err := h.retrier.Do(ctx, func(ctx context.Context) error {
		e, err := mutation(ctx)
		if err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		httperr.Write(w, err, action)
		return
	}
	pkg.WriteJSON(w, updated, http.StatusOK)
}
