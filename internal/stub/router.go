package stub

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sakthiprasad2004/warehouse-manager/internal/logger"
	"github.com/sakthiprasad2004/warehouse-manager/internal/models"
)

var (
	errDuplicateUser     = errors.New("username is already taken")
	errUnknownUser       = errors.New("user is not registered")
	errBadPassword       = errors.New("password is not correct")
	errNotFound          = errors.New("not found")
	errNotPending        = errors.New("only pending orders can be edited")
	errInvalidQuantity   = errors.New("quantity must be positive")
	errInsufficientStock = errors.New("not enough stock")
)

// Router wires the fixed backend contract onto the in-memory server.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		logger.RequestLogger,
		middleware.Recoverer,
	)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		r.Get("/products", s.handleListProducts)
		r.Post("/products", s.handleCreateProduct)
		r.Put("/products/{id}", s.handleUpdateProduct)
		r.Delete("/products/{id}", s.handleDeleteProduct)

		r.Get("/orders", s.handleListOrders)
		r.Get("/orders/{id}/items", s.handleGetOrderItems)
		r.Post("/orders", s.handleCreateOrder)
		r.Put("/orders/{id}", s.handleUpdateOrder)
		r.Put("/orders/{id}/status", s.handleUpdateOrderStatus)
		r.Delete("/orders/{id}", s.handleDeleteOrder)
	})

	return r
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

// requireUser resolves the userId query parameter to a registered user.
// Every non-auth route is scoped this way.
func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	if err != nil || !s.userExists(userID) {
		http.Error(w, "unknown user", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// writeDomainError maps the in-memory server's errors onto the status
// codes the real backend uses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, errNotPending), errors.Is(err, errInsufficientStock), errors.Is(err, errDuplicateUser):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, errInvalidQuantity):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, errUnknownUser), errors.Is(err, errBadPassword):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if !decodeJSON(w, r, &creds) {
		return
	}

	if !creds.Valid() {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	identity, err := s.register(creds.Username, creds.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, identity)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if !decodeJSON(w, r, &creds) {
		return
	}

	identity, err := s.login(creds.Username, creds.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, identity)
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, s.listProducts(userID))
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var draft models.ProductDraft
	if !decodeJSON(w, r, &draft) {
		return
	}

	if draft.Price < 0 || draft.Quantity < 0 {
		http.Error(w, "price and quantity must be non-negative", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, s.createProduct(userID, draft))
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var draft models.ProductDraft
	if !decodeJSON(w, r, &draft) {
		return
	}

	if draft.Price < 0 || draft.Quantity < 0 {
		http.Error(w, "price and quantity must be non-negative", http.StatusBadRequest)
		return
	}

	product, err := s.updateProduct(userID, id, draft)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.deleteProduct(userID, id); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, s.listOrders(userID))
}

func (s *Server) handleGetOrderItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	items, err := s.getOrderItems(userID, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req models.CreateOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := s.createOrder(userID, req.Items)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (s *Server) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.CreateOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := s.updateOrder(userID, id, req.Items)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	status := models.OrderStatus(r.URL.Query().Get("status"))
	if !status.Valid() {
		http.Error(w, "unknown status", http.StatusBadRequest)
		return
	}

	order, err := s.updateOrderStatus(userID, id, status)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.deleteOrder(userID, id); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
