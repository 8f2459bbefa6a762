package stub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sakthiprasad2004/warehouse-manager/internal/models"
	"github.com/sakthiprasad2004/warehouse-manager/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func newTestBackend(t *testing.T) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(NewServer().Router())
	t.Cleanup(ts.Close)

	return ts
}

func registerUser(t *testing.T, ts *httptest.Server, username string) models.Identity {
	t.Helper()

	body := fmt.Sprintf(`{"username":%q,"password":"secret"}`, username)
	res, raw := utils.TestRequest(t, ts, http.MethodPost, "/api/auth/register", jsonHeaders, strings.NewReader(body))
	require.Equal(t, http.StatusOK, res.StatusCode)

	var identity models.Identity
	require.NoError(t, json.Unmarshal([]byte(raw), &identity))

	return identity
}

func createProduct(t *testing.T, ts *httptest.Server, userID int64, name string, price float64, quantity int) models.Product {
	t.Helper()

	body := fmt.Sprintf(`{"name":%q,"price":%v,"quantity":%d}`, name, price, quantity)
	path := fmt.Sprintf("/api/products?userId=%d", userID)
	res, raw := utils.TestRequest(t, ts, http.MethodPost, path, jsonHeaders, strings.NewReader(body))
	require.Equal(t, http.StatusOK, res.StatusCode)

	var product models.Product
	require.NoError(t, json.Unmarshal([]byte(raw), &product))

	return product
}

func createOrder(t *testing.T, ts *httptest.Server, userID int64, items []models.LineItem) (models.Order, int) {
	t.Helper()

	payload, err := json.Marshal(models.CreateOrderRequest{Items: items})
	require.NoError(t, err)

	path := fmt.Sprintf("/api/orders?userId=%d", userID)
	res, raw := utils.TestRequest(t, ts, http.MethodPost, path, jsonHeaders, strings.NewReader(string(payload)))

	var order models.Order
	if res.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal([]byte(raw), &order))
	}

	return order, res.StatusCode
}

func listProducts(t *testing.T, ts *httptest.Server, userID int64) []models.Product {
	t.Helper()

	path := fmt.Sprintf("/api/products?userId=%d", userID)
	res, raw := utils.TestRequest(t, ts, http.MethodGet, path, nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var products []models.Product
	require.NoError(t, json.Unmarshal([]byte(raw), &products))

	return products
}

func TestAuthFlow(t *testing.T) {
	ts := newTestBackend(t)

	identity := registerUser(t, ts, "alice")
	assert.Equal(t, "alice", identity.Username)
	assert.NotZero(t, identity.ID)

	// duplicate username
	res, _ := utils.TestRequest(t, ts, http.MethodPost, "/api/auth/register", jsonHeaders,
		strings.NewReader(`{"username":"alice","password":"other"}`))
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	// wrong password
	res, _ = utils.TestRequest(t, ts, http.MethodPost, "/api/auth/login", jsonHeaders,
		strings.NewReader(`{"username":"alice","password":"wrong"}`))
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// unknown user
	res, _ = utils.TestRequest(t, ts, http.MethodPost, "/api/auth/login", jsonHeaders,
		strings.NewReader(`{"username":"bob","password":"secret"}`))
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// good login returns the same identity
	res, raw := utils.TestRequest(t, ts, http.MethodPost, "/api/auth/login", jsonHeaders,
		strings.NewReader(`{"username":"alice","password":"secret"}`))
	require.Equal(t, http.StatusOK, res.StatusCode)

	var loggedIn models.Identity
	require.NoError(t, json.Unmarshal([]byte(raw), &loggedIn))
	assert.Equal(t, identity, loggedIn)
}

func TestRegisterRequiresBothFields(t *testing.T) {
	ts := newTestBackend(t)

	res, _ := utils.TestRequest(t, ts, http.MethodPost, "/api/auth/register", jsonHeaders,
		strings.NewReader(`{"username":"alice"}`))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestScopedRoutesRejectUnknownUser(t *testing.T) {
	ts := newTestBackend(t)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/products"},
		{http.MethodGet, "/api/products?userId=99"},
		{http.MethodGet, "/api/orders?userId=abc"},
		{http.MethodDelete, "/api/orders/1?userId=99"},
	}

	for _, tc := range testCases {
		res, _ := utils.TestRequest(t, ts, tc.method, tc.path, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode, "%s %s", tc.method, tc.path)
	}
}

func TestProductLifecycle(t *testing.T) {
	ts := newTestBackend(t)
	user := registerUser(t, ts, "alice")

	created := createProduct(t, ts, user.ID, "Pallet Jack", 289.99, 4)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 4, created.Quantity)

	// update
	path := fmt.Sprintf("/api/products/%d?userId=%d", created.ID, user.ID)
	res, raw := utils.TestRequest(t, ts, http.MethodPut, path, jsonHeaders,
		strings.NewReader(`{"name":"Pallet Jack","price":249.99,"quantity":6}`))
	require.Equal(t, http.StatusOK, res.StatusCode)

	var updated models.Product
	require.NoError(t, json.Unmarshal([]byte(raw), &updated))
	assert.Equal(t, 249.99, updated.Price)
	assert.Equal(t, 6, updated.Quantity)

	// delete
	res, _ = utils.TestRequest(t, ts, http.MethodDelete, path, nil, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	assert.Empty(t, listProducts(t, ts, user.ID))
}

func TestProductsAreScopedPerUser(t *testing.T) {
	ts := newTestBackend(t)
	alice := registerUser(t, ts, "alice")
	bob := registerUser(t, ts, "bob")

	created := createProduct(t, ts, alice.ID, "Shrink Wrap", 12.50, 80)

	assert.Len(t, listProducts(t, ts, alice.ID), 1)
	assert.Empty(t, listProducts(t, ts, bob.ID))

	// bob cannot touch alice's product
	path := fmt.Sprintf("/api/products/%d?userId=%d", created.ID, bob.ID)
	res, _ := utils.TestRequest(t, ts, http.MethodDelete, path, nil, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCreateOrderSnapshotsItems(t *testing.T) {
	ts := newTestBackend(t)
	user := registerUser(t, ts, "alice")
	product := createProduct(t, ts, user.ID, "Box Cutter", 6.25, 10)

	order, status := createOrder(t, ts, user.ID, []models.LineItem{{ProductID: product.ID, Quantity: 3}})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.False(t, order.OrderDate.IsZero())

	path := fmt.Sprintf("/api/orders/%d/items?userId=%d", order.ID, user.ID)
	res, raw := utils.TestRequest(t, ts, http.MethodGet, path, nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var items []models.OrderItem
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Box Cutter", items[0].Product.Name)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCreateOrderValidation(t *testing.T) {
	ts := newTestBackend(t)
	user := registerUser(t, ts, "alice")
	product := createProduct(t, ts, user.ID, "Tape Gun", 9.99, 2)

	_, status := createOrder(t, ts, user.ID, []models.LineItem{{ProductID: product.ID, Quantity: 0}})
	assert.Equal(t, http.StatusBadRequest, status)

	_, status = createOrder(t, ts, user.ID, []models.LineItem{{ProductID: 999, Quantity: 1}})
	assert.Equal(t, http.StatusNotFound, status)

	_, status = createOrder(t, ts, user.ID, []models.LineItem{{ProductID: product.ID, Quantity: 5}})
	assert.Equal(t, http.StatusConflict, status)
}

func TestUpdateOrderReplacesItems(t *testing.T) {
	ts := newTestBackend(t)
	user := registerUser(t, ts, "alice")
	first := createProduct(t, ts, user.ID, "Gloves", 3.20, 50)
	second := createProduct(t, ts, user.ID, "Goggles", 7.80, 20)

	order, status := createOrder(t, ts, user.ID, []models.LineItem{{ProductID: first.ID, Quantity: 2}})
	require.Equal(t, http.StatusOK, status)

	payload, err := json.Marshal(models.CreateOrderRequest{Items: []models.LineItem{{ProductID: second.ID, Quantity: 4}}})
	require.NoError(t, err)

	path := fmt.Sprintf("/api/orders/%d?userId=%d", order.ID, user.ID)
	res, _ := utils.TestRequest(t, ts, http.MethodPut, path, jsonHeaders, strings.NewReader(string(payload)))
	require.Equal(t, http.StatusOK, res.StatusCode)

	itemsPath := fmt.Sprintf("/api/orders/%d/items?userId=%d", order.ID, user.ID)
	res, raw := utils.TestRequest(t, ts, http.MethodGet, itemsPath, nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var items []models.OrderItem
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Goggles", items[0].Product.Name)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestShippingReducesStock(t *testing.T) {
	ts := newTestBackend(t)
	user := registerUser(t, ts, "alice")
	product := createProduct(t, ts, user.ID, "Stretch Film", 15.00, 10)

	order, status := createOrder(t, ts, user.ID, []models.LineItem{{ProductID: product.ID, Quantity: 4}})
	require.Equal(t, http.StatusOK, status)

	path := fmt.Sprintf("/api/orders/%d/status?userId=%d&status=SHIPPED", order.ID, user.ID)
	res, raw := utils.TestRequest(t, ts, http.MethodPut, path, nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var shipped models.Order
	require.NoError(t, json.Unmarshal([]byte(raw), &shipped))
	assert.Equal(t, models.StatusShipped, shipped.Status)

	products := listProducts(t, ts, user.ID)
	require.Len(t, products, 1)
	assert.Equal(t, 6, products[0].Quantity)

	// shipped orders can no longer be edited
	payload := `{"items":[{"productId":1,"quantity":1}]}`
	editPath := fmt.Sprintf("/api/orders/%d?userId=%d", order.ID, user.ID)
	res, _ = utils.TestRequest(t, ts, http.MethodPut, editPath, jsonHeaders, strings.NewReader(payload))
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestShippingFailsWithoutStock(t *testing.T) {
	ts := newTestBackend(t)
	user := registerUser(t, ts, "alice")
	product := createProduct(t, ts, user.ID, "Labels", 2.00, 5)

	order, status := createOrder(t, ts, user.ID, []models.LineItem{{ProductID: product.ID, Quantity: 5}})
	require.Equal(t, http.StatusOK, status)

	// stock drained after order was placed
	updatePath := fmt.Sprintf("/api/products/%d?userId=%d", product.ID, user.ID)
	res, _ := utils.TestRequest(t, ts, http.MethodPut, updatePath, jsonHeaders,
		strings.NewReader(`{"name":"Labels","price":2.00,"quantity":1}`))
	require.Equal(t, http.StatusOK, res.StatusCode)

	shipPath := fmt.Sprintf("/api/orders/%d/status?userId=%d&status=SHIPPED", order.ID, user.ID)
	res, _ = utils.TestRequest(t, ts, http.MethodPut, shipPath, nil, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	// stock untouched by the failed transition
	products := listProducts(t, ts, user.ID)
	require.Len(t, products, 1)
	assert.Equal(t, 1, products[0].Quantity)
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	ts := newTestBackend(t)
	user := registerUser(t, ts, "alice")
	product := createProduct(t, ts, user.ID, "Crate", 30.00, 3)

	order, status := createOrder(t, ts, user.ID, []models.LineItem{{ProductID: product.ID, Quantity: 1}})
	require.Equal(t, http.StatusOK, status)

	path := fmt.Sprintf("/api/orders/%d/status?userId=%d&status=LOST", order.ID, user.ID)
	res, _ := utils.TestRequest(t, ts, http.MethodPut, path, nil, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestDeleteOrder(t *testing.T) {
	ts := newTestBackend(t)
	user := registerUser(t, ts, "alice")
	product := createProduct(t, ts, user.ID, "Bin", 11.00, 8)

	order, status := createOrder(t, ts, user.ID, []models.LineItem{{ProductID: product.ID, Quantity: 2}})
	require.Equal(t, http.StatusOK, status)

	path := fmt.Sprintf("/api/orders/%d?userId=%d", order.ID, user.ID)
	res, _ := utils.TestRequest(t, ts, http.MethodDelete, path, nil, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res, _ = utils.TestRequest(t, ts, http.MethodDelete, path, nil, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestDeletingShippedOrderRestoresStock(t *testing.T) {
	ts := newTestBackend(t)
	user := registerUser(t, ts, "alice")
	product := createProduct(t, ts, user.ID, "Hand Truck", 95.00, 10)

	order, status := createOrder(t, ts, user.ID, []models.LineItem{{ProductID: product.ID, Quantity: 4}})
	require.Equal(t, http.StatusOK, status)

	shipPath := fmt.Sprintf("/api/orders/%d/status?userId=%d&status=SHIPPED", order.ID, user.ID)
	res, _ := utils.TestRequest(t, ts, http.MethodPut, shipPath, nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	products := listProducts(t, ts, user.ID)
	require.Len(t, products, 1)
	require.Equal(t, 6, products[0].Quantity)

	deletePath := fmt.Sprintf("/api/orders/%d?userId=%d", order.ID, user.ID)
	res, _ = utils.TestRequest(t, ts, http.MethodDelete, deletePath, nil, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	products = listProducts(t, ts, user.ID)
	require.Len(t, products, 1)
	assert.Equal(t, 10, products[0].Quantity)
}

func TestDeletingPendingOrderLeavesStockAlone(t *testing.T) {
	ts := newTestBackend(t)
	user := registerUser(t, ts, "alice")
	product := createProduct(t, ts, user.ID, "Dolly", 60.00, 8)

	order, status := createOrder(t, ts, user.ID, []models.LineItem{{ProductID: product.ID, Quantity: 3}})
	require.Equal(t, http.StatusOK, status)

	deletePath := fmt.Sprintf("/api/orders/%d?userId=%d", order.ID, user.ID)
	res, _ := utils.TestRequest(t, ts, http.MethodDelete, deletePath, nil, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	products := listProducts(t, ts, user.ID)
	require.Len(t, products, 1)
	assert.Equal(t, 8, products[0].Quantity)
}

func TestSeedProvidesWorkingCredentials(t *testing.T) {
	srv := NewServer()
	creds, err := srv.Seed()
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	payload, err := json.Marshal(creds)
	require.NoError(t, err)

	res, raw := utils.TestRequest(t, ts, http.MethodPost, "/api/auth/login", jsonHeaders, strings.NewReader(string(payload)))
	require.Equal(t, http.StatusOK, res.StatusCode)

	var identity models.Identity
	require.NoError(t, json.Unmarshal([]byte(raw), &identity))

	products := listProducts(t, ts, identity.ID)
	assert.NotEmpty(t, products)
}
