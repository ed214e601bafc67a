// Package http is the UI-facing surface of the cart service: the cart
// snapshot, the three mutations, and the recent-notifications feed.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rocketshoes/cart-service/internal/cart/app"
	"github.com/rocketshoes/cart-service/internal/cart/domain"
	"github.com/rocketshoes/cart-service/internal/notify"
)

type Server struct {
	svc      *app.Service
	hub      *notify.Hub
	validate *validator.Validate
	log      *slog.Logger
}

func NewServer(svc *app.Service, hub *notify.Hub, log *slog.Logger) *Server {
	return &Server{
		svc:      svc,
		hub:      hub,
		validate: validator.New(),
		log:      log,
	}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/cart", s.handleGetCart)
	r.Post("/cart/items/{productID}", s.handleAddProduct)
	r.Delete("/cart/items/{productID}", s.handleRemoveProduct)
	r.Put("/cart/items/{productID}", s.handleUpdateAmount)
	r.Get("/notifications", s.handleNotifications)

	return r
}

type cartResponse struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
}

func toCartResponse(cart domain.Cart) cartResponse {
	if cart == nil {
		cart = domain.Cart{}
	}
	return cartResponse{Items: cart, Total: cart.Total()}
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCartResponse(s.svc.Items()))
}

func (s *Server) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathProductID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := s.svc.AddProduct(r.Context(), productID); err != nil {
		s.respondDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCartResponse(s.svc.Items()))
}

func (s *Server) handleRemoveProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathProductID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := s.svc.RemoveProduct(r.Context(), productID); err != nil {
		s.respondDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(s.svc.Items()))
}

// updateAmountRequest uses a pointer so a missing amount field is a 400
// while an explicit zero reaches the service's silent no-op path.
type updateAmountRequest struct {
	Amount *int64 `json:"amount" validate:"required"`
}

func (s *Server) handleUpdateAmount(w http.ResponseWriter, r *http.Request) {
	productID, err := pathProductID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req updateAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "amount is required")
		return
	}

	if err := s.svc.UpdateProductAmount(r.Context(), productID, *req.Amount); err != nil {
		s.respondDomainError(w, err)
		return
	}
	if *req.Amount <= 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(s.svc.Items()))
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.hub.Recent())
}

func (s *Server) respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrItemNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		s.log.Error("cart request failed", slog.Any("err", err))
		writeError(w, http.StatusBadGateway, "cart operation failed")
	}
}

func pathProductID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid product id")
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
