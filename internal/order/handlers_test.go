package order

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/example/shop-microservices/internal/clients"
	"github.com/gin-gonic/gin"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, Config{Service: svc, Log: discardLogger()})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostOrder_Success(t *testing.T) {
	store := newMockStore()
	products := newMockProducts(clients.Product{ID: 1, Name: "A", Price: 10, StockLeft: 100})
	svc := NewService(store, products, newMockUsers(), discardLogger())
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/order",
		`{"user_id": 7, "items": [{"product_id": 1, "number": 1}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got Order
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.UserID != 7 || got.OrderTotal != 10.0 || got.ID == 0 {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestPostOrder_InsufficientStock(t *testing.T) {
	store := newMockStore()
	products := newMockProducts(clients.Product{ID: 1, Name: "A", Price: 10, StockLeft: 5})
	svc := NewService(store, products, newMockUsers(), discardLogger())
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/order",
		`{"user_id": 1, "items": [{"product_id": 1, "number": 10}]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(body.Detail, "Some products have insufficient stock") {
		t.Fatalf("unexpected detail: %q", body.Detail)
	}
	if !strings.Contains(body.Detail, "Product A - Ordered: 10, Stock left: 5") {
		t.Fatalf("detail should name the product, quantity and stock: %q", body.Detail)
	}
}

func TestPostOrder_UpstreamStatusPassthrough(t *testing.T) {
	store := newMockStore()
	products := newMockProducts() // empty: GetList answers 404
	svc := NewService(store, products, newMockUsers(), discardLogger())
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/order",
		`{"user_id": 1, "items": [{"product_id": 99, "number": 1}]}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected upstream 404 to pass through, got %d", w.Code)
	}
}

func TestPostOrder_RejectsMalformedBody(t *testing.T) {
	svc := NewService(newMockStore(), newMockProducts(), newMockUsers(), discardLogger())
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/order", `{"user_id": 1, "items": []}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty items, got %d", w.Code)
	}

	w = doRequest(t, r, http.MethodPost, "/order", `{"items": [{"product_id": 1, "number": 1}]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing user_id, got %d", w.Code)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	svc := NewService(newMockStore(), newMockProducts(), newMockUsers(), discardLogger())
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodGet, "/order/12345", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Order not found") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestGetOrderItems_Routes(t *testing.T) {
	store := newMockStore()
	products := newMockProducts(clients.Product{ID: 1, Name: "A", Price: 2, StockLeft: 10})
	svc := NewService(store, products, newMockUsers(), discardLogger())
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/order",
		`{"user_id": 1, "items": [{"product_id": 1, "number": 3}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create order: %d: %s", w.Code, w.Body.String())
	}
	var created Order
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	w = doRequest(t, r, http.MethodGet, "/order/items/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var items []OrderItem
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	if len(items) != 1 || items[0].ItemTotal != 6.0 {
		t.Fatalf("unexpected items: %+v", items)
	}

	w = doRequest(t, r, http.MethodGet, "/order/items/999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for empty item list, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Items not found") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestBanner(t *testing.T) {
	svc := NewService(newMockStore(), newMockProducts(), newMockUsers(), discardLogger())
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodGet, "/", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Order service") {
		t.Fatalf("unexpected banner: %d %s", w.Code, w.Body.String())
	}
}
