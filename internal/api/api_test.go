package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arogyasagar/storefront/internal/chat"
	"github.com/arogyasagar/storefront/internal/model"
	"github.com/arogyasagar/storefront/internal/session"
	"github.com/arogyasagar/storefront/internal/storage"
	"github.com/arogyasagar/storefront/internal/storefront"
	logx "github.com/arogyasagar/storefront/pkg/logger"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logx.Disable()
	sf, err := storefront.New(context.Background(), storefront.Options{
		Store:       storage.NewMemoryStore(),
		CatalogSeed: 42,
		Now:         func() time.Time { return time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return Setup(NewHandler(sf), RouterOptions{})
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field"`
}

func loginAs(t *testing.T, r http.Handler, email string) {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/auth/login", storefront.Credentials{Email: email, Password: "password1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestHealthAndNoRoute(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProducts(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[struct{ Products []model.Product }](t, w)
	assert.Len(t, all.Products, 200)

	w = do(t, r, http.MethodGet, "/api/products?category=Organic+Honey&limit=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	filtered := decode[struct{ Products []model.Product }](t, w)
	require.Len(t, filtered.Products, 3)
	assert.Equal(t, model.CategoryOrganicHoney, filtered.Products[0].Category)

	w = do(t, r, http.MethodGet, "/api/products?q=smartphone", nil)
	assert.JSONEq(t, `{"products":[]}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/products/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, `product "9999" not found`, decode[errorBody](t, w).Error)
}

func TestViewsAndRecommendations(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/products/45/views", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodPost, "/api/products/45/views", nil)
	require.Equal(t, http.StatusOK, w.Code)

	views := decode[struct{ ViewHistory map[string]int }](t, do(t, r, http.MethodGet, "/api/view-history", nil))
	assert.Equal(t, map[string]int{model.CategoryHerbalTeas: 2}, views.ViewHistory)

	recs := decode[struct{ Products []model.Product }](t, do(t, r, http.MethodGet, "/api/recommendations", nil))
	require.NotEmpty(t, recs.Products)
	for _, p := range recs.Products {
		assert.Equal(t, model.CategoryHerbalTeas, p.Category)
	}
}

func TestCartAndCheckoutFlow(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/cart/items", gin.H{"productId": "1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Please login to add items to cart.", decode[errorBody](t, w).Error)

	loginAs(t, r, "asha@example.com")

	w = do(t, r, http.MethodPost, "/api/cart/items", gin.H{"productId": "1"})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodPost, "/api/cart/items", gin.H{"productId": "1"})
	require.Equal(t, http.StatusOK, w.Code)
	cart := decode[storefront.CartView](t, w)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 2*cart.Lines[0].Price, cart.Total)

	w = do(t, r, http.MethodPost, "/api/cart/items", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	checkout := storefront.Checkout{
		Address: model.Address{FullName: "Asha Rao", Street: "12 MG Road", City: "Pune", Pincode: "4110", Phone: "9876543210"},
		Payment: model.Payment{Method: model.PaymentCard},
	}
	w = do(t, r, http.MethodPost, "/api/orders", checkout)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "pincode", decode[errorBody](t, w).Field)

	checkout.Address.Pincode = "411001"
	w = do(t, r, http.MethodPost, "/api/orders", checkout)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	placed := decode[struct{ Order model.Order }](t, w)
	assert.Equal(t, model.OrderProcessing, placed.Order.Status)
	assert.Equal(t, cart.Total, placed.Order.Total)

	empty := decode[storefront.CartView](t, do(t, r, http.MethodGet, "/api/cart", nil))
	assert.Empty(t, empty.Lines)

	mine := decode[struct{ Orders []model.Order }](t, do(t, r, http.MethodGet, "/api/orders", nil))
	require.Len(t, mine.Orders, 1)

	w = do(t, r, http.MethodGet, "/api/orders/"+placed.Order.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRemoveAndClearCart(t *testing.T) {
	r := newRouter(t)
	loginAs(t, r, "asha@example.com")

	do(t, r, http.MethodPost, "/api/cart/items", gin.H{"productId": "1"})
	do(t, r, http.MethodPost, "/api/cart/items", gin.H{"productId": "2"})

	cart := decode[storefront.CartView](t, do(t, r, http.MethodDelete, "/api/cart/items/1", nil))
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "2", cart.Lines[0].ID)

	cart = decode[storefront.CartView](t, do(t, r, http.MethodDelete, "/api/cart", nil))
	assert.Empty(t, cart.Lines)
	assert.Zero(t, cart.Total)
}

func TestAdminGate(t *testing.T) {
	r := newRouter(t)
	product := model.Product{ID: "x1", Name: "Kumkumadi Oil", Category: model.CategoryHairSkinCare, Price: 899}

	w := do(t, r, http.MethodPost, "/api/admin/products", product)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	loginAs(t, r, "asha@example.com")
	w = do(t, r, http.MethodPost, "/api/admin/products", product)
	assert.Equal(t, http.StatusForbidden, w.Code)

	loginAs(t, r, session.DefaultAdminEmail)
	w = do(t, r, http.MethodPost, "/api/admin/products", product)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/admin/products", product)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPatch, "/api/admin/products/x1", gin.H{"price": 950})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 950, decode[struct{ Product model.Product }](t, w).Product.Price)

	w = do(t, r, http.MethodDelete, "/api/admin/products/x1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodDelete, "/api/admin/products/x1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPost, "/api/admin/doctors", model.Doctor{ID: "d7", Name: "Dr. Meera Iyer", Price: 900})
	assert.Equal(t, http.StatusCreated, w.Code)
	w = do(t, r, http.MethodPatch, "/api/admin/doctors/d7", gin.H{"available": true})
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodDelete, "/api/admin/doctors/d7", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAdminOrderStatus(t *testing.T) {
	r := newRouter(t)
	loginAs(t, r, "asha@example.com")
	do(t, r, http.MethodPost, "/api/cart/items", gin.H{"productId": "3"})
	w := do(t, r, http.MethodPost, "/api/orders", storefront.Checkout{
		Address: model.Address{FullName: "Asha", Street: "1 Main", City: "Pune", Pincode: "411001", Phone: "9876543210"},
		Payment: model.Payment{Method: model.PaymentWallet},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[struct{ Order model.Order }](t, w).Order.ID

	loginAs(t, r, session.DefaultAdminEmail)
	all := decode[struct{ Orders []model.Order }](t, do(t, r, http.MethodGet, "/api/admin/orders", nil))
	assert.Len(t, all.Orders, 1)

	w = do(t, r, http.MethodPatch, "/api/admin/orders/"+id+"/status", gin.H{"status": "Delivered"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPatch, "/api/admin/orders/"+id+"/status", gin.H{"status": "Cancelled"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.OrderCancelled, decode[struct{ Order model.Order }](t, w).Order.Status)

	w = do(t, r, http.MethodPatch, "/api/admin/orders/"+id+"/status", gin.H{"status": "Lost"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAuthEndpoints(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodPost, "/api/auth/login", "{broken")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/auth/signup", gin.H{"email": "ravi@example.com", "password": "Veda@2024", "confirmPassword": "Veda@2025"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "confirmPassword", decode[errorBody](t, w).Field)

	w = do(t, r, http.MethodPost, "/api/auth/signup", gin.H{"email": "ravi@example.com", "password": "Veda@2024", "confirmPassword": "Veda@2024", "name": "Ravi"})
	require.Equal(t, http.StatusCreated, w.Code)

	me := decode[struct{ User model.User }](t, do(t, r, http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, "Ravi", me.User.Name)

	w = do(t, r, http.MethodPatch, "/api/auth/profile", gin.H{"phone": "9999999999", "age": 40})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 40, decode[struct{ User model.User }](t, w).User.Age)

	w = do(t, r, http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWishlistEndpoints(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/wishlist/3/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"productId":"3","inWishlist":true}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/wishlist/3", nil)
	assert.JSONEq(t, `{"productId":"3","inWishlist":true}`, w.Body.String())

	items := decode[struct{ Items []model.WishlistItem }](t, do(t, r, http.MethodGet, "/api/wishlist", nil))
	assert.Len(t, items.Items, 1)

	w = do(t, r, http.MethodPost, "/api/wishlist/3/toggle", nil)
	assert.JSONEq(t, `{"productId":"3","inWishlist":false}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/wishlist/missing/toggle", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClinicEndpoints(t *testing.T) {
	r := newRouter(t)

	doctors := decode[struct{ Doctors []model.Doctor }](t, do(t, r, http.MethodGet, "/api/doctors", nil))
	assert.Len(t, doctors.Doctors, 6)
	w := do(t, r, http.MethodGet, "/api/doctors/d99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	therapies := decode[struct{ Therapies []model.Therapy }](t, do(t, r, http.MethodGet, "/api/therapies", nil))
	assert.Len(t, therapies.Therapies, 3)

	booking := model.Booking{DoctorID: "d1", Date: "2026-11-02", Time: "11:00 AM", Payment: model.Payment{Method: model.PaymentUPI, UPIID: "asha@okbank"}}
	w = do(t, r, http.MethodPost, "/api/appointments", booking)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	loginAs(t, r, "asha@example.com")
	w = do(t, r, http.MethodPost, "/api/appointments", booking)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	a := decode[struct{ Appointment model.Appointment }](t, w).Appointment

	w = do(t, r, http.MethodPost, "/api/appointments/"+a.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodPost, "/api/appointments/"+a.ID+"/transcript", gin.H{"transcript": "notes"})
	assert.Equal(t, http.StatusConflict, w.Code)

	mine := decode[struct{ Appointments []model.Appointment }](t, do(t, r, http.MethodGet, "/api/appointments", nil))
	require.Len(t, mine.Appointments, 1)
	assert.Equal(t, model.AppointmentCancelled, mine.Appointments[0].Status)

	w = do(t, r, http.MethodGet, "/api/admin/appointments", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReviewEndpoints(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/products/1/reviews", gin.H{"userName": "Asha", "rating": 5, "comment": "Lovely"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/products/1/reviews", gin.H{"userName": "Asha", "rating": 9})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "rating", decode[errorBody](t, w).Field)

	list := decode[struct{ Reviews []model.Review }](t, do(t, r, http.MethodGet, "/api/products/1/reviews", nil))
	require.Len(t, list.Reviews, 1)
	assert.Equal(t, "1", list.Reviews[0].ProductID)
}

func TestDoshaEndpoints(t *testing.T) {
	r := newRouter(t)

	qs := decode[struct {
		Questions []struct{ ID int } `json:"questions"`
	}](t, do(t, r, http.MethodGet, "/api/dosha/questions", nil))
	assert.Len(t, qs.Questions, 4)

	w := do(t, r, http.MethodPost, "/api/dosha/evaluate", gin.H{"answers": []string{"Pitta", "Pitta", "Kapha", "Pitta"}})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[struct {
		Dosha string `json:"dosha"`
		Title string `json:"title"`
	}](t, w)
	assert.Equal(t, "Pitta", res.Dosha)
	assert.Equal(t, "Pitta Dominant", res.Title)

	w = do(t, r, http.MethodPost, "/api/dosha/evaluate", gin.H{"answers": []string{"Pitta"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestChatEndpoints(t *testing.T) {
	r := newRouter(t)

	transcript := decode[struct {
		Messages []model.ChatMessage `json:"messages"`
		Typing   bool                `json:"typing"`
	}](t, do(t, r, http.MethodGet, "/api/chat", nil))
	require.Len(t, transcript.Messages, 1)
	assert.False(t, transcript.Typing)

	w := do(t, r, http.MethodPost, "/api/chat", gin.H{"text": "Hello Veda"})
	require.Equal(t, http.StatusOK, w.Code)
	reply := decode[struct{ Reply model.ChatMessage }](t, w)
	assert.Equal(t, chat.OfflineReply, reply.Reply.Text)
	assert.NotEmpty(t, reply.Reply.ReplyTo)

	w = do(t, r, http.MethodPost, "/api/chat", gin.H{"text": strings.Repeat(" ", 3)})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logx.Disable()
	sf, err := storefront.New(context.Background(), storefront.Options{CatalogSeed: 1})
	require.NoError(t, err)
	r := Setup(NewHandler(sf), RouterOptions{AllowedOrigins: []string{"https://shop.example.com"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
