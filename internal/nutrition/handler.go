package nutrition

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

type mealsService interface {
	LogMeal(ctx context.Context, ownerID string, meal Meal) (*Meal, error)
	Get(ctx context.Context, ownerID string, id int) (*Meal, error)
	AddFood(ctx context.Context, ownerID string, mealID int, item FoodItem) (*Meal, error)
	RemoveFood(ctx context.Context, ownerID string, mealID, index int) (*Meal, error)
	UpdateFoodQuantity(ctx context.Context, ownerID string, mealID, index int, quantity float64) (*Meal, error)
	Delete(ctx context.Context, ownerID string, id int) error
	ListDay(ctx context.Context, ownerID string, day time.Time, slot Slot) ([]Meal, error)
}

type UpdateQuantityRequest struct {
	Quantity float64 `json:"quantity"`
}

type DeleteMealResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	service mealsService
	retrier *retry.Retrier
}

func NewHandler(service mealsService, retrier *retry.Retrier) *Handler {
	return &Handler{
		service: service,
		retrier: retrier,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/meals", h.HandleLogMeal).Methods("POST", "OPTIONS").Name("log-meal")
	r.HandleFunc("/meals", h.HandleListDay).Methods("GET", "OPTIONS").Name("list-meals")
	r.HandleFunc("/meals/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-meal")
	r.HandleFunc("/meals/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-meal")
	r.HandleFunc("/meals/{id}/foods", h.HandleAddFood).Methods("POST", "OPTIONS").Name("add-food")
	r.HandleFunc("/meals/{id}/foods/{index}", h.HandleUpdateFoodQuantity).Methods("PUT", "OPTIONS").Name("update-food-quantity")
	r.HandleFunc("/meals/{id}/foods/{index}", h.HandleRemoveFood).Methods("DELETE", "OPTIONS").Name("remove-food")
}

func (h *Handler) HandleLogMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.logmeal")
	defer span.End()

	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}

	var meal Meal
	if err := pkg.DecodeJSONBody(r, &meal); err != nil {
		log.Tracef("log meal, decode body: %s", err)
		http.Error(w, "log meal failed, invalid body", http.StatusBadRequest)
		return
	}

	added, err := h.service.LogMeal(ctx, ownerID, meal)
	if err != nil {
		httperr.Write(w, err, "log meal")
		return
	}

	log.Debugf("meal %d logged for owner [%s]", added.ID, ownerID)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.get")
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

	meal, err := h.service.Get(ctx, ownerID, id)
	if err != nil {
		httperr.Write(w, err, "get meal")
		return
	}
	pkg.WriteJSON(w, meal, http.StatusOK)
}

// HandleListDay lists the meals of ?date= (defaults to today, UTC), optionally filtered by ?slot=.
func (h *Handler) HandleListDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.listday")
	defer span.End()

	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}

	day := time.Now().UTC()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := pkg.ParseTime(dateParam)
		if err != nil {
			http.Error(w, "error, invalid date", http.StatusBadRequest)
			return
		}
		day = parsed
	}

	meals, err := h.service.ListDay(ctx, ownerID, day, Slot(r.URL.Query().Get("slot")))
	if err != nil {
		httperr.Write(w, err, "list meals")
		return
	}
	if meals == nil {
		meals = []Meal{}
	}
	pkg.WriteJSON(w, meals, http.StatusOK)
}

func (h *Handler) HandleAddFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.addfood")
	defer span.End()

	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}
	mealID, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	var item FoodItem
	if err := pkg.DecodeJSONBody(r, &item); err != nil {
		log.Tracef("add food, decode body: %s", err)
		http.Error(w, "add food failed, invalid body", http.StatusBadRequest)
		return
	}

	h.mutateAndRespond(ctx, w, "add food", func(ctx context.Context) (*Meal, error) {
		return h.service.AddFood(ctx, ownerID, mealID, item)
	})
}

func (h *Handler) HandleRemoveFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.removefood")
	defer span.End()

	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}
	mealID, index, err := mealAndIndexVars(r)
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	h.mutateAndRespond(ctx, w, "remove food", func(ctx context.Context) (*Meal, error) {
		return h.service.RemoveFood(ctx, ownerID, mealID, index)
	})
}

func (h *Handler) HandleUpdateFoodQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.updatefoodquantity")
	defer span.End()

	ownerID, ok := middleware.RequireOwner(w, r)
	if !ok {
		return
	}
	mealID, index, err := mealAndIndexVars(r)
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	var req UpdateQuantityRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		http.Error(w, "update quantity failed, invalid body", http.StatusBadRequest)
		return
	}

	h.mutateAndRespond(ctx, w, "update food quantity", func(ctx context.Context) (*Meal, error) {
		return h.service.UpdateFoodQuantity(ctx, ownerID, mealID, index, req.Quantity)
	})
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.delete")
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

	if err := h.service.Delete(ctx, ownerID, id); err != nil {
		httperr.Write(w, err, "delete meal")
		return
	}
	pkg.WriteJSON(w, DeleteMealResponse{DeletedID: id}, http.StatusOK)
}

// mutateAndRespond runs the mutation, retrying it on version conflicts.
func (h *Handler) mutateAndRespond(
	ctx context.Context,
	w http.ResponseWriter,
	action string,
	mutation func(ctx context.Context) (*Meal, error),
) {
	var updated *Meal
	err := h.retrier.Do(ctx, func(ctx context.Context) error {
		m, err := mutation(ctx)
		if err != nil {
			return err
		}
		updated = m
		return nil
	})
	if err != nil {
		httperr.Write(w, err, action)
		return
	}
	pkg.WriteJSON(w, updated, http.StatusOK)
}

func mealAndIndexVars(r *http.Request) (mealID, index int, err error) {
	mealID, err = pkg.IntVar(r, "id")
	if err != nil {
		return 0, 0, err
	}
	index, err = pkg.IntVar(r, "index")
	if err != nil {
		return 0, 0, err
	}
	return mealID, index, nil
}
