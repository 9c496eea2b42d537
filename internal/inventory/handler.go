package inventory

import (
	"net/http"

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
	r.Route("/inventory", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.get)
			r.Put("/", h.update)
			r.Delete("/", h.delete)
		})
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var input AddItemInput
	if err := transport.DecodeJSON(r, &input); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.svc.AddItem(r.Context(), input)
	if err != nil {
		transport.Error(w, err)
		return
	}
	transport.JSON(w, http.StatusCreated, item)
}

// list returns inventory only. The expiry scan runs in the background
// notifier, not here.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.GetAll(r.Context())
	if err != nil {
		transport.Error(w, err)
		return
	}
	transport.JSON(w, http.StatusOK, items)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		transport.Error(w, err)
		return
	}
	transport.JSON(w, http.StatusOK, item)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var input UpdateItemInput
	if err := transport.DecodeJSON(r, &input); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		transport.Error(w, err)
		return
	}
	transport.JSON(w, http.StatusOK, item)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		transport.Error(w, err)
		return
	}
	transport.JSON(w, http.StatusOK, map[string]string{"id": chi.URLParam(r, "id")})
}
