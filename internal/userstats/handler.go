package userstats

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/daya-2619/fitnesstracking/internal/httperr"
	"github.com/daya-2619/fitnesstracking/internal/middleware"
	"github.com/daya-2619/fitnesstracking/internal/retry"
	"github.com/daya-2619/fitnesstracking/internal/telemetry/tracing"
	"github.com/daya-2619/fitnesstracking/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=userstats_test

type statsService interface {
	Get(ctx context.Context, ownerID string) (*Stats, error)
	RecordWorkout(ctx context.Context, ownerID string, w WorkoutCompletion) (*Stats, error)
	AwardAchievement(ctx context.Context, ownerID string, a Achievement) (*Stats, error)
	Friends(ctx context.Context, ownerID string) ([]string, error)
	AreFriends(ctx context.Context, ownerID, friendID string) (bool, error)
	AddFriend(ctx context.Context, ownerID, friendID string) ([]string, error)
	RemoveFriend(ctx context.Context, ownerID, friendID string) ([]string, error)
}

type FriendsResponse struct {
	Friends []string `json:"friends"`
}

type FriendshipResponse struct {
	FriendID string `json:"friendId"`
	Friends  bool   `json:"friends"`
}

type Handler struct {
	service statsService
	retrier *retry.Retrier
}

func NewHandler(service statsService, retrier *retry.Retrier) *Handler {
	return &Handler{
		service: service,
		retrier: retrier,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/stats", h.HandleGet).Methods("GET", "OPTIONS").Name("get-stats")
	r.HandleFunc("/stats/workouts", h.HandleRecordWorkout).Methods("POST", "OPTIONS").Name("record-workout")
	r.HandleFunc("/stats/achievements", h.HandleAwardAchievement).Methods("POST", "OPTIONS").Name("award-achievement")
	r.HandleFunc("/friends", h.HandleFriends).Methods("GET", "OPTIONS").Name("list-friends")
	r.HandleFunc("/friends/{friendId}", h.HandleIsFriend).Methods("GET", "OPTIONS").Name("is-friend")
	r.HandleFunc("/friends/{friendId}", h.HandleAddFriend).Methods("PUT", "OPTIONS").Name("add-friend")
	r.HandleFunc("/friends/{friendId}", h.HandleRemoveFriend).Methods("DELETE", "OPTIONS").Name("remove-friend")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.userstats.get")
	defer span.End()

	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}

	stats, err := h.service.Get(ctx, ownerID)
	if err != nil {
		httperr.Write(w, err, "get stats")
		return
	}
	pkg.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) HandleRecordWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.userstats.workout")
	defer span.End()

	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}
	var completion WorkoutCompletion
	if err := pkg.DecodeJSONBody(r, &completion); err != nil {
		log.Tracef("record workout, decode body: %s", err)
		http.Error(w, "record workout failed, invalid body", http.StatusBadRequest)
		return
	}

	h.mutateAndRespond(ctx, w, "record workout", func(ctx context.Context) (*Stats, error) {
		return h.service.RecordWorkout(ctx, ownerID, completion)
	})
}

func (h *Handler) HandleAwardAchievement(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.userstats.achievement")
	defer span.End()

	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}
	var achievement Achievement
	if err := pkg.DecodeJSONBody(r, &achievement); err != nil {
		http.Error(w, "award achievement failed, invalid body", http.StatusBadRequest)
		return
	}

	h.mutateAndRespond(ctx, w, "award achievement", func(ctx context.Context) (*Stats, error) {
		return h.service.AwardAchievement(ctx, ownerID, achievement)
	})
}

func (h *Handler) HandleFriends(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.userstats.friends")
	defer span.End()

	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}

	friends, err := h.service.Friends(ctx, ownerID)
	if err != nil {
		httperr.Write(w, err, "get friends")
		return
	}
	pkg.WriteJSON(w, FriendsResponse{Friends: friends}, http.StatusOK)
}

func (h *Handler) HandleIsFriend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.userstats.isfriend")
	defer span.End()

	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}

	friendID := mux.Vars(r)["friendId"]
	friends, err := h.service.AreFriends(ctx, ownerID, friendID)
	if err != nil {
		httperr.Write(w, err, "check friend")
		return
	}
	pkg.WriteJSON(w, FriendshipResponse{FriendID: friendID, Friends: friends}, http.StatusOK)
}

func (h *Handler) HandleAddFriend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.userstats.addfriend")
	defer span.End()

	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}

	friends, err := h.service.AddFriend(ctx, ownerID, mux.Vars(r)["friendId"])
	if err != nil {
		httperr.Write(w, err, "add friend")
		return
	}
	pkg.WriteJSON(w, FriendsResponse{Friends: friends}, http.StatusOK)
}

func (h *Handler) HandleRemoveFriend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.userstats.removefriend")
	defer span.End()

	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}

	friends, err := h.service.RemoveFriend(ctx, ownerID, mux.Vars(r)["friendId"])
	if err != nil {
		httperr.Write(w, err, "remove friend")
		return
	}
	pkg.WriteJSON(w, FriendsResponse{Friends: friends}, http.StatusOK)
}

func (h *Handler) mutateAndRespond(
	ctx context.Context,
	w http.ResponseWriter,
	action string,
	mutation func(ctx context.Context) (*Stats, error),
) {
	var updated *Stats
	err := h.retrier.Do(ctx, func(ctx context.Context) error {
		stats, err := mutation(ctx)
		if err != nil {
			return err
		}
		updated = stats
		return nil
	})
	if err != nil {
		httperr.Write(w, err, action)
		return
	}
	pkg.WriteJSON(w, updated, http.StatusOK)
}
