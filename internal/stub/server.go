// Package stub is an in-memory stand-in for the warehouse backend,
// implementing its fixed HTTP contract for local development and tests.
// The real backend stays an external collaborator; this one only exists
// so the front end can run without it.
package stub

import (
	"sync"
	"time"

	"github.com/sakthiprasad2004/warehouse-manager/internal/models"
	"github.com/sakthiprasad2004/warehouse-manager/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type user struct {
	id       int64
	username string
	hash     []byte
}

type product struct {
	models.Product
	ownerID int64
}

type order struct {
	models.Order
	ownerID int64
	items   []models.OrderItem
}

// Server holds the in-memory state behind the stub routes. IDs are
// sequential, like the real backend's.
type Server struct {
	mu       sync.Mutex
	nextID   int64
	users    map[int64]*user
	products map[int64]*product
	orders   map[int64]*order

	now func() time.Time
}

func NewServer() *Server {
	return &Server{
		nextID:   1,
		users:    make(map[int64]*user),
		products: make(map[int64]*product),
		orders:   make(map[int64]*order),
		now:      time.Now,
	}
}

func (s *Server) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Server) findUser(username string) *user {
	for _, u := range s.users {
		if u.username == username {
			return u
		}
	}
	return nil
}

// register creates an account with a bcrypt password hash. Duplicate
// usernames are rejected.
func (s *Server) register(username, password string) (*models.Identity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findUser(username) != nil {
		return nil, errDuplicateUser
	}

	u := &user{id: s.allocID(), username: username, hash: hash}
	s.users[u.id] = u

	return &models.Identity{ID: u.id, Username: u.username}, nil
}

func (s *Server) login(username, password string) (*models.Identity, error) {
	s.mu.Lock()
	u := s.findUser(username)
	s.mu.Unlock()

	if u == nil {
		return nil, errUnknownUser
	}

	if err := bcrypt.CompareHashAndPassword(u.hash, []byte(password)); err != nil {
		return nil, errBadPassword
	}

	return &models.Identity{ID: u.id, Username: u.username}, nil
}

func (s *Server) listProducts(userID int64) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Map iteration order is random; the contract's "first-loaded
	// order" needs a stable listing, so walk IDs in creation order.
	products := []models.Product{}
	for id := int64(1); id < s.nextID; id++ {
		if p, ok := s.products[id]; ok && p.ownerID == userID {
			products = append(products, p.Product)
		}
	}
	return products
}

func (s *Server) createProduct(userID int64, draft models.ProductDraft) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &product{
		Product: models.Product{
			ID:       s.allocID(),
			Name:     draft.Name,
			Price:    draft.Price,
			Quantity: draft.Quantity,
		},
		ownerID: userID,
	}
	s.products[p.ID] = p
	return p.Product
}

func (s *Server) updateProduct(userID, id int64, draft models.ProductDraft) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok || p.ownerID != userID {
		return nil, errNotFound
	}

	p.Name = draft.Name
	p.Price = draft.Price
	p.Quantity = draft.Quantity

	updated := p.Product
	return &updated, nil
}

func (s *Server) deleteProduct(userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok || p.ownerID != userID {
		return errNotFound
	}

	delete(s.products, id)
	return nil
}

func (s *Server) listOrders(userID int64) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := []models.Order{}
	for id := int64(1); id < s.nextID; id++ {
		if o, ok := s.orders[id]; ok && o.ownerID == userID {
			orders = append(orders, o.Order)
		}
	}
	return orders
}

func (s *Server) getOrderItems(userID, orderID int64) ([]models.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok || o.ownerID != userID {
		return nil, errNotFound
	}

	items := make([]models.OrderItem, len(o.items))
	copy(items, o.items)
	return items, nil
}

// buildItems snapshots the referenced products into order items,
// validating existence, ownership and available stock.
func (s *Server) buildItems(userID int64, items []models.LineItem) ([]models.OrderItem, error) {
	built := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, errInvalidQuantity
		}

		p, ok := s.products[item.ProductID]
		if !ok || p.ownerID != userID {
			return nil, errNotFound
		}

		if p.Quantity < item.Quantity {
			return nil, errInsufficientStock
		}

		built = append(built, models.OrderItem{
			ID:       s.allocID(),
			Product:  p.Product,
			Quantity: item.Quantity,
		})
	}
	return built, nil
}

// createOrder stores a new PENDING order with a server-set date. Stock
// is validated but not reduced here; reduction happens on shipping.
func (s *Server) createOrder(userID int64, items []models.LineItem) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := &order{
		Order: models.Order{
			ID:        s.allocID(),
			OrderDate: utils.NewRFC3339Date(s.now()),
			Status:    models.StatusPending,
		},
		ownerID: userID,
	}

	built, err := s.buildItems(userID, items)
	if err != nil {
		return nil, err
	}

	o.items = built
	s.orders[o.ID] = o

	created := o.Order
	return &created, nil
}

// updateOrder replaces an order's item set wholesale. Only PENDING
// orders can be edited.
func (s *Server) updateOrder(userID, id int64, items []models.LineItem) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok || o.ownerID != userID {
		return nil, errNotFound
	}

	if o.Status != models.StatusPending {
		return nil, errNotPending
	}

	built, err := s.buildItems(userID, items)
	if err != nil {
		return nil, err
	}

	o.items = built

	updated := o.Order
	return &updated, nil
}

// updateOrderStatus sets an order's status. The PENDING→SHIPPED
// transition reduces each item's product stock and fails without side
// effects when any product lacks stock.
func (s *Server) updateOrderStatus(userID, id int64, status models.OrderStatus) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok || o.ownerID != userID {
		return nil, errNotFound
	}

	if status == models.StatusShipped && o.Status == models.StatusPending {
		for _, item := range o.items {
			p, ok := s.products[item.Product.ID]
			if !ok || p.Quantity < item.Quantity {
				return nil, errInsufficientStock
			}
		}
		for _, item := range o.items {
			s.products[item.Product.ID].Quantity -= item.Quantity
		}
	}

	o.Status = status

	updated := o.Order
	return &updated, nil
}

// deleteOrder removes an order. Deleting a shipped or delivered order
// returns its items' quantities to stock, since shipping took them out.
func (s *Server) deleteOrder(userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok || o.ownerID != userID {
		return errNotFound
	}

	if o.Status == models.StatusShipped || o.Status == models.StatusDelivered {
		for _, item := range o.items {
			if p, ok := s.products[item.Product.ID]; ok {
				p.Quantity += item.Quantity
			}
		}
	}

	delete(s.orders, id)
	return nil
}

func (s *Server) userExists(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.users[id]
	return ok
}
