package sleep

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/daya-2619/fitnesstracking/internal/httperr"
	"github.com/daya-2619/fitnesstracking/internal/middleware"
	"github.com/daya-2619/fitnesstracking/internal/retry"
	"github.com/daya-2619/fitnesstracking/internal/telemetry/tracing"
	"github.com/daya-2619/fitnesstracking/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sleep_test

type sessionsService interface {
	Record(ctx context.Context, ownerID string, session Session) (*Session, error)
	Get(ctx context.Context, ownerID string, id int) (*Session, error)
	UpdateStages(ctx context.Context, ownerID string, id int, stages Stages) (*Session, error)
	AddDisturbance(ctx context.Context, ownerID string, id int, d Disturbance) (*Session, error)
	UpdateQuality(ctx context.Context, ownerID string, id, quality int, note string) (*Session, error)
	UpdateGoals(ctx context.Context, ownerID string, id int, goals Goals) (*Session, error)
	Reschedule(ctx context.Context, ownerID string, id int, start, end time.Time, supplied *float64) (*Session, error)
	Delete(ctx context.Context, ownerID string, id int) error
	ListRange(ctx context.Context, ownerID string, from, to time.Time) ([]Session, error)
}

type UpdateQualityRequest struct {
	Quality int    `json:"quality"`
	Note    string `json:"note,omitempty"`
}

type RescheduleRequest struct {
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	SuppliedDuration *float64  `json:"suppliedDuration,omitempty"`
}

type DeleteSessionResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	service sessionsService
	retrier *retry.Retrier
}

func NewHandler(service sessionsService, retrier *retry.Retrier) *Handler {
	return &Handler{
		service: service,
		retrier: retrier,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/sleep", h.HandleRecord).Methods("POST", "OPTIONS").Name("record-sleep")
	r.HandleFunc("/sleep", h.HandleList).Methods("GET", "OPTIONS").Name("list-sleep")
	r.HandleFunc("/sleep/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-sleep")
	r.HandleFunc("/sleep/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-sleep")
	r.HandleFunc("/sleep/{id}/stages", h.HandleUpdateStages).Methods("PUT", "OPTIONS").Name("update-sleep-stages")
	r.HandleFunc("/sleep/{id}/disturbances", h.HandleAddDisturbance).Methods("POST", "OPTIONS").Name("add-sleep-disturbance")
	r.HandleFunc("/sleep/{id}/quality", h.HandleUpdateQuality).Methods("PUT", "OPTIONS").Name("update-sleep-quality")
	r.HandleFunc("/sleep/{id}/goals", h.HandleUpdateGoals).Methods("PUT", "OPTIONS").Name("update-sleep-goals")
	r.HandleFunc("/sleep/{id}/schedule", h.HandleReschedule).Methods("PUT", "OPTIONS").Name("reschedule-sleep")
}

func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sleep.record")
	defer span.End()

	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}

	var session Session
	if err := pkg.DecodeJSONBody(r, &session); err != nil {
		log.Tracef("record sleep, decode body: %s", err)
		http.Error(w, "record sleep failed, invalid body", http.StatusBadRequest)
		return
	}

	added, err := h.service.Record(ctx, ownerID, session)
	if err != nil {
		httperr.Write(w, err, "record sleep")
		return
	}

	log.Debugf("sleep session %d recorded for owner [%s], score %d", added.ID, ownerID, added.Score)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

// HandleList lists the sessions that started within ?from= and ?to=, both
// inclusive. A plain date in to covers that whole UTC day.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sleep.list")
	defer span.End()

	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}

	from, err := pkg.ParseTime(r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "error, invalid from", http.StatusBadRequest)
		return
	}
	to, err := pkg.ParseRangeEnd(r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "error, invalid to", http.StatusBadRequest)
		return
	}

	sessions, err := h.service.ListRange(ctx, ownerID, from, to)
	if err != nil {
		httperr.Write(w, err, "list sleep sessions")
		return
	}
	if sessions == nil {
		sessions = []Session{}
	}
	pkg.WriteJSON(w, sessions, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sleep.get")
	defer span.End()

	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.service.Get(ctx, ownerID, id)
	if err != nil {
		httperr.Write(w, err, "get sleep session")
		return
	}
	pkg.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) HandleUpdateStages(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sleep.updatestages")
	defer span.End()

	ownerID, id, ok := ownerAndID(w, r)
	if !ok {
		return
	}
	var stages Stages
	if err := pkg.DecodeJSONBody(r, &stages); err != nil {
		http.Error(w, "update stages failed, invalid body", http.StatusBadRequest)
		return
	}

	h.mutateAndRespond(ctx, w, "update sleep stages", func(ctx context.Context) (*Session, error) {
		return h.service.UpdateStages(ctx, ownerID, id, stages)
	})
}

func (h *Handler) HandleAddDisturbance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sleep.adddisturbance")
	defer span.End()

	ownerID, id, ok := ownerAndID(w, r)
	if !ok {
		return
	}
	var d Disturbance
	if err := pkg.DecodeJSONBody(r, &d); err != nil {
		http.Error(w, "add disturbance failed, invalid body", http.StatusBadRequest)
		return
	}

	h.mutateAndRespond(ctx, w, "add sleep disturbance", func(ctx context.Context) (*Session, error) {
		return h.service.AddDisturbance(ctx, ownerID, id, d)
	})
}

func (h *Handler) HandleUpdateQuality(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sleep.updatequality")
	defer span.End()

	ownerID, id, ok := ownerAndID(w, r)
	if !ok {
		return
	}
	var req UpdateQualityRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		http.Error(w, "update quality failed, invalid body", http.StatusBadRequest)
		return
	}

	h.mutateAndRespond(ctx, w, "update sleep quality", func(ctx context.Context) (*Session, error) {
		return h.service.UpdateQuality(ctx, ownerID, id, req.Quality, req.Note)
	})
}

func (h *Handler) HandleUpdateGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sleep.updategoals")
	defer span.End()

	ownerID, id, ok := ownerAndID(w, r)
	if !ok {
		return
	}
	var goals Goals
	if err := pkg.DecodeJSONBody(r, &goals); err != nil {
		http.Error(w, "update goals failed, invalid body", http.StatusBadRequest)
		return
	}

	h.mutateAndRespond(ctx, w, "update sleep goals", func(ctx context.Context) (*Session, error) {
		return h.service.UpdateGoals(ctx, ownerID, id, goals)
	})
}

func (h *Handler) HandleReschedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sleep.reschedule")
	defer span.End()

	ownerID, id, ok := ownerAndID(w, r)
	if !ok {
		return
	}
	var req RescheduleRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		http.Error(w, "reschedule failed, invalid body", http.StatusBadRequest)
		return
	}

	h.mutateAndRespond(ctx, w, "reschedule sleep", func(ctx context.Context) (*Session, error) {
		return h.service.Reschedule(ctx, ownerID, id, req.StartTime, req.EndTime, req.SuppliedDuration)
	})
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sleep.delete")
	defer span.End()

	ownerID, id, ok := ownerAndID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, ownerID, id); err != nil {
		httperr.Write(w, err, "delete sleep session")
		return
	}
	pkg.WriteJSON(w, DeleteSessionResponse{DeletedID: id}, http.StatusOK)
}

func (h *Handler) mutateAndRespond(
	ctx context.Context,
	w http.ResponseWriter,
	action string,
	mutation func(ctx context.Context) (*Session, error),
) {
	var updated *Session
	err := h.retrier.Do(ctx, func(ctx context.Context) error {
		s, err := mutation(ctx)
		if err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		httperr.Write(w, err, action)
		return
	}
	pkg.WriteJSON(w, updated, http.StatusOK)
}

func ownerAndID(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return "", 0, false
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return "", 0, false
	}
	return ownerID, id, true
}
