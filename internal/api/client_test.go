package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/sakthiprasad2004/warehouse-manager/internal/models"
	"github.com/sakthiprasad2004/warehouse-manager/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest captures what the client actually sent.
type recordedRequest struct {
	method    string
	path      string
	query     map[string]string
	requestID string
	body      []byte
}

func newRecordingServer(t *testing.T, status int, response any) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	var recorded []recordedRequest

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := map[string]string{}
		for key := range r.URL.Query() {
			query[key] = r.URL.Query().Get(key)
		}

		body, _ := io.ReadAll(r.Body)

		recorded = append(recorded, recordedRequest{
			method:    r.Method,
			path:      r.URL.Path,
			query:     query,
			requestID: r.Header.Get("X-Request-ID"),
			body:      body,
		})

		if response == nil {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(response)
	})

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	return ts, &recorded
}

func newTestSession(t *testing.T, identity *models.Identity) *session.Store {
	t.Helper()

	store, err := session.NewStore(filepath.Join(t.TempDir(), "identity.json"))
	require.NoError(t, err)

	if identity != nil {
		require.NoError(t, store.Init(*identity))
	}

	return store
}

func TestListProductsIsIdentityScoped(t *testing.T) {
	ts, recorded := newRecordingServer(t, http.StatusOK, []models.Product{
		{ID: 1, Name: "Label Roll", Price: 4.75, Quantity: 240},
	})

	client := NewClient(ts.URL, newTestSession(t, &models.Identity{ID: 42, Username: "alice"}))

	products, err := client.ListProducts(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Label Roll", products[0].Name)

	require.Len(t, *recorded, 1)
	req := (*recorded)[0]
	assert.Equal(t, http.MethodGet, req.method)
	assert.Equal(t, "/api/products", req.path)
	assert.Equal(t, "42", req.query["userId"])
	assert.NotEmpty(t, req.requestID)
}

func TestCreateOrderSendsSingleRequestWithItems(t *testing.T) {
	ts, recorded := newRecordingServer(t, http.StatusOK, models.Order{ID: 10, Status: models.StatusPending})

	client := NewClient(ts.URL, newTestSession(t, &models.Identity{ID: 42}))

	order, err := client.CreateOrder(context.Background(), []models.LineItem{{ProductID: 3, Quantity: 2}})

	require.NoError(t, err)
	assert.Equal(t, int64(10), order.ID)

	require.Len(t, *recorded, 1)
	req := (*recorded)[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/api/orders", req.path)
	assert.JSONEq(t, `{"items":[{"productId":3,"quantity":2}]}`, string(req.body))
}

func TestUpdateOrderStatusUsesQueryParameter(t *testing.T) {
	ts, recorded := newRecordingServer(t, http.StatusOK, models.Order{ID: 4, Status: models.StatusShipped})

	client := NewClient(ts.URL, newTestSession(t, &models.Identity{ID: 42}))

	_, err := client.UpdateOrderStatus(context.Background(), 4, models.StatusShipped)

	require.NoError(t, err)
	require.Len(t, *recorded, 1)
	req := (*recorded)[0]
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/api/orders/4/status", req.path)
	assert.Equal(t, "SHIPPED", req.query["status"])
	assert.Equal(t, "42", req.query["userId"])
}

func TestUpdateOrderStatusRejectsUnknownStatusLocally(t *testing.T) {
	ts, recorded := newRecordingServer(t, http.StatusOK, nil)

	client := NewClient(ts.URL, newTestSession(t, &models.Identity{ID: 42}))

	_, err := client.UpdateOrderStatus(context.Background(), 4, models.OrderStatus("LOST"))

	assert.Error(t, err)
	assert.Empty(t, *recorded)
}

func TestScopedCallsRequireIdentity(t *testing.T) {
	ts, recorded := newRecordingServer(t, http.StatusOK, nil)

	client := NewClient(ts.URL, newTestSession(t, nil))

	_, err := client.ListProducts(context.Background())
	assert.ErrorIs(t, err, ErrNoIdentity)

	_, err = client.ListOrders(context.Background())
	assert.ErrorIs(t, err, ErrNoIdentity)

	err = client.DeleteProduct(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoIdentity)

	assert.Empty(t, *recorded)
}

func TestLoginPersistsIdentity(t *testing.T) {
	ts, recorded := newRecordingServer(t, http.StatusOK, models.Identity{ID: 7, Username: "alice"})

	store := newTestSession(t, nil)
	client := NewClient(ts.URL, store)

	identity, err := client.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), identity.ID)

	current := store.Current()
	require.NotNil(t, current)
	assert.Equal(t, "alice", current.Username)

	require.Len(t, *recorded, 1)
	req := (*recorded)[0]
	assert.Equal(t, "/api/auth/login", req.path)
	// auth requests carry no userId scope
	assert.NotContains(t, req.query, "userId")
	assert.JSONEq(t, `{"username":"alice","password":"secret"}`, string(req.body))
}

func TestLoginFailureCollapsesToFixedMessage(t *testing.T) {
	ts, _ := newRecordingServer(t, http.StatusUnauthorized, nil)

	store := newTestSession(t, nil)
	client := NewClient(ts.URL, store)

	_, err := client.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, store.Current())
}

func TestRegisterFailureCollapsesToFixedMessage(t *testing.T) {
	ts, _ := newRecordingServer(t, http.StatusConflict, nil)

	store := newTestSession(t, nil)
	client := NewClient(ts.URL, store)

	_, err := client.Register(context.Background(), models.Credentials{Username: "alice", Password: "secret"})

	assert.ErrorIs(t, err, ErrSignupFailed)
	assert.Nil(t, store.Current())
}

func TestEmptyCredentialsAreRejectedLocally(t *testing.T) {
	ts, recorded := newRecordingServer(t, http.StatusOK, nil)

	client := NewClient(ts.URL, newTestSession(t, nil))

	_, err := client.Login(context.Background(), models.Credentials{Username: "alice"})
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = client.Register(context.Background(), models.Credentials{Password: "secret"})
	assert.ErrorIs(t, err, ErrMissingCredentials)

	assert.Empty(t, *recorded)
}

func TestRemoteErrorsSurfaceWithoutMutation(t *testing.T) {
	ts, _ := newRecordingServer(t, http.StatusInternalServerError, nil)

	client := NewClient(ts.URL, newTestSession(t, &models.Identity{ID: 42}))

	_, err := client.ListOrders(context.Background())
	assert.Error(t, err)

	_, err = client.CreateProduct(context.Background(), models.ProductDraft{Name: "Label Roll"})
	assert.Error(t, err)

	err = client.DeleteOrder(context.Background(), 1)
	assert.Error(t, err)
}
