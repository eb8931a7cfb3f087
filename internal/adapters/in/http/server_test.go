package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	bakeryhttp "bakery/internal/adapters/in/http"
	"bakery/internal/core/application/orderstore"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() (*echo.Echo, *orderstore.Store) {
	store := orderstore.NewStore(nil, nil, nil)

	server := bakeryhttp.NewServer(
		store,
		commands.NewPlaceOrderCommandHandler(store, nil, nil),
		commands.NewChangeOrderStatusCommandHandler(store),
		commands.NewEditOrderCommandHandler(store),
		commands.NewRemoveOrderCommandHandler(store),
		commands.CreateProductCommandHandler{},
		commands.UpdateProductCommandHandler{},
		queries.GetActiveOrdersQueryHandler{},
		queries.GetOrdersSummaryQueryHandler{},
		queries.GetProductsQueryHandler{},
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e, store
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const orderBody = `{
	"customerName": "Alice Chen",
	"customerPhone": "0912345678",
	"shippingMethod": "PICKUP",
	"items": [
		{"name": "Sourdough Loaf", "quantity": 2, "price": 100},
		{"name": "Croissant", "quantity": 3, "price": 50}
	]
}`

func createOrder(t *testing.T, e *echo.Echo) bakeryhttp.OrderResponse {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/v1/orders", orderBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp bakeryhttp.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateOrder_ReturnsPendingOrderWithTotal(t *testing.T) {
	e, _ := newTestServer()

	resp := createOrder(t, e)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.InDelta(t, 350.0, resp.TotalAmount, 0.001)
	require.Len(t, resp.AuditHistory, 1)
	assert.Equal(t, "CREATED", resp.AuditHistory[0].Action)
}

func TestCreateOrder_RejectsMalformedPhone(t *testing.T) {
	e, _ := newTestServer()

	body := strings.Replace(orderBody, "0912345678", "12345", 1)
	rec := doJSON(e, http.MethodPost, "/api/v1/orders", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_RequiresLockerDetailsForLockerShipping(t *testing.T) {
	e, _ := newTestServer()

	body := strings.Replace(orderBody, "PICKUP", "LOCKER", 1)
	rec := doJSON(e, http.MethodPost, "/api/v1/orders", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangeOrderStatus_LegalTransition(t *testing.T) {
	e, store := newTestServer()
	resp := createOrder(t, e)

	rec := doJSON(e, http.MethodPatch, "/api/v1/orders/"+resp.ID+"/status", `{"status": "PAID"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	orders := store.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "PAID", orders[0].Status().String())
}

func TestChangeOrderStatus_IllegalTransitionReturnsConflict(t *testing.T) {
	e, _ := newTestServer()
	resp := createOrder(t, e)

	rec := doJSON(e, http.MethodPatch, "/api/v1/orders/"+resp.ID+"/status", `{"status": "SHIPPED"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var errResp bakeryhttp.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Message, "from PENDING to SHIPPED")
}

func TestChangeOrderStatus_UnknownStatusReturnsBadRequest(t *testing.T) {
	e, _ := newTestServer()
	resp := createOrder(t, e)

	rec := doJSON(e, http.MethodPatch, "/api/v1/orders/"+resp.ID+"/status", `{"status": "MISPLACED"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrder_NotFound(t *testing.T) {
	e, _ := newTestServer()

	rec := doJSON(e, http.MethodGet, "/api/v1/orders/3e9f9df3-257d-4c83-9428-968cbb962ddc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrders_ListsNewestFirst(t *testing.T) {
	e, _ := newTestServer()
	first := createOrder(t, e)
	second := createOrder(t, e)

	rec := doJSON(e, http.MethodGet, "/api/v1/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []bakeryhttp.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestEditOrder_ReplacesDetails(t *testing.T) {
	e, _ := newTestServer()
	resp := createOrder(t, e)

	edited := `{
		"customerName": "Bob Lin",
		"customerPhone": "0987654321",
		"shippingMethod": "PICKUP",
		"items": [{"name": "Birthday Cake", "quantity": 1, "price": 800}]
	}`
	rec := doJSON(e, http.MethodPut, "/api/v1/orders/"+resp.ID, edited)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/orders/"+resp.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got bakeryhttp.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Bob Lin", got.CustomerName)
	assert.InDelta(t, 800.0, got.TotalAmount, 0.001)
	require.Len(t, got.AuditHistory, 2)
	assert.Equal(t, "EDITED", got.AuditHistory[1].Action)
}

func TestDeleteOrder_RemovesOrder(t *testing.T) {
	e, store := newTestServer()
	resp := createOrder(t, e)

	rec := doJSON(e, http.MethodDelete, "/api/v1/orders/"+resp.ID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, store.Orders())
}

func TestDeleteOrder_InvalidIDReturnsBadRequest(t *testing.T) {
	e, _ := newTestServer()

	rec := doJSON(e, http.MethodDelete, "/api/v1/orders/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminExportImport_RoundTrip(t *testing.T) {
	e, _ := newTestServer()
	created := createOrder(t, e)

	rec := doJSON(e, http.MethodGet, "/api/v1/admin/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	backup := rec.Body.String()

	rec = doJSON(e, http.MethodPost, "/api/v1/admin/reset", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/orders/"+created.ID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/admin/import", backup)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/orders/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var restored bakeryhttp.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &restored))
	assert.Equal(t, created.CustomerName, restored.CustomerName)
	assert.Equal(t, created.Status, restored.Status)
	require.Len(t, restored.AuditHistory, len(created.AuditHistory))
	assert.Equal(t, created.AuditHistory[0].ID, restored.AuditHistory[0].ID)
}

func TestAdminImport_RejectsMalformedBackup(t *testing.T) {
	e, store := newTestServer()
	createOrder(t, e)

	rec := doJSON(e, http.MethodPost, "/api/v1/admin/import",
		`[{"id": "not-a-uuid", "status": "PENDING"}]`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, store.Orders(), 1)
}

func TestAdminFactoryReset_ClearsOrders(t *testing.T) {
	e, store := newTestServer()
	createOrder(t, e)
	createOrder(t, e)

	rec := doJSON(e, http.MethodPost, "/api/v1/admin/reset", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, store.Orders())
}
