package assignment

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
	r.Route("/order-assignments", func(r chi.Router) {
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
	var input CreateAssignmentInput
	if err := transport.DecodeJSON(r, &input); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.svc.Create(r.Context(), input)
	if err != nil {
		transport.Error(w, err)
		return
	}
	transport.JSON(w, http.StatusCreated, a)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.svc.GetAll(r.Context())
	if err != nil {
		transport.Error(w, err)
		return
	}
	transport.JSON(w, http.StatusOK, assignments)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		transport.Error(w, err)
		return
	}
	transport.JSON(w, http.StatusOK, a)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var input UpdateAssignmentInput
	if err := transport.DecodeJSON(r, &input); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		transport.Error(w, err)
		return
	}
	transport.JSON(w, http.StatusOK, a)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		transport.Error(w, err)
		return
	}
	transport.JSON(w, http.StatusOK, map[string]string{"id": chi.URLParam(r, "id")})
}
