package cart

import (
	"net/http"

	"hotelops-be/internal/middleware"
	"hotelops-be/internal/transport"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.get)
		r.Post("/", h.addItem)
		r.Delete("/", h.clear)
		r.Route("/items/{foodId}", func(r chi.Router) {
			r.Put("/", h.updateItem)
			r.Delete("/", h.removeItem)
		})
	})
}

// resolveUserID prefers the authenticated user; unauthenticated clients pass
// an explicit userId query parameter.
func resolveUserID(r *http.Request) string {
	if id, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		return id
	}
	return r.URL.Query().Get("userId")
}

type addItemInput struct {
	FoodItem string `json:"foodItem"`
	Quantity int    `json:"quantity"`
}

type updateItemInput struct {
	Action string `json:"action"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Get(r.Context(), resolveUserID(r))
	if err != nil {
		transport.Error(w, err)
		return
	}
	transport.JSON(w, http.StatusOK, v)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var input addItemInput
	if err := transport.DecodeJSON(r, &input); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.svc.AddItem(r.Context(), resolveUserID(r), input.FoodItem, input.Quantity)
	if err != nil {
		transport.Error(w, err)
		return
	}
	transport.JSON(w, http.StatusOK, v)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var input updateItemInput
	if err := transport.DecodeJSON(r, &input); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := resolveUserID(r)
	foodID := chi.URLParam(r, "foodId")

	var (
		v   *View
		err error
	)
	switch input.Action {
	case "increase":
		v, err = h.svc.Increase(r.Context(), userID, foodID)
	case "decrease":
		v, err = h.svc.Decrease(r.Context(), userID, foodID)
	default:
		transport.Fail(w, http.StatusBadRequest, "Action must be increase or decrease")
		return
	}
	if err != nil {
		transport.Error(w, err)
		return
	}
	transport.JSON(w, http.StatusOK, v)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.RemoveItem(r.Context(), resolveUserID(r), chi.URLParam(r, "foodId"))
	if err != nil {
		transport.Error(w, err)
		return
	}
	transport.JSON(w, http.StatusOK, v)
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clear(r.Context(), resolveUserID(r)); err != nil {
		transport.Error(w, err)
		return
	}
	transport.JSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
