package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"phonetech/internal/api"
	"phonetech/internal/catalog"
	"phonetech/internal/models"
	"phonetech/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDeps(backendURL string) *Deps {
	return &Deps{
		API:      api.New(backendURL, 2*time.Second),
		Catalog:  catalog.NewStore(),
		Sessions: session.NewManager([]byte("0123456789abcdef0123456789abcdef"), false),
	}
}

func sectionRouter(deps *Deps) *gin.Engine {
	router := gin.New()
	router.GET("/", ShowSection(deps))
	router.GET("/section/:key", ShowSection(deps))
	return router
}

// loginCookies creates a stored session for the given user and returns the
// cookies a browser would carry afterwards.
func loginCookies(t *testing.T, deps *Deps, token string, user models.User) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := deps.Sessions.Save(req, rec, token, user); err != nil {
		t.Fatalf("save session: %v", err)
	}
	return rec.Result().Cookies()
}

func replay(req *http.Request, cookies []*http.Cookie) {
	for _, c := range cookies {
		req.AddCookie(c)
	}
}

func TestUnauthorizedResponseClearsSession(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "Token expired"}`))
	}))
	defer backend.Close()

	deps := newTestDeps(backend.URL)
	router := sectionRouter(deps)
	cookies := loginCookies(t, deps, "stale-token", models.User{ID: 1, Username: "admin", IsAdmin: true})

	req := httptest.NewRequest(http.MethodGet, "/section/admin-dashboard", nil)
	replay(req, cookies)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/section/login" {
		t.Fatalf("redirect = %q, want /section/login", loc)
	}

	// The rewritten cookie must no longer carry the token or the user.
	next := httptest.NewRequest(http.MethodGet, "/", nil)
	replay(next, rec.Result().Cookies())
	token, user := deps.Sessions.Current(next)
	if token != "" || user != nil {
		t.Fatalf("session survived a 401: token=%q user=%+v", token, user)
	}
}

func TestForbiddenResponseKeepsSession(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": "Admin privileges required"}`))
	}))
	defer backend.Close()

	deps := newTestDeps(backend.URL)
	router := sectionRouter(deps)
	cookies := loginCookies(t, deps, "good-token", models.User{ID: 2, Username: "admin", IsAdmin: true})

	req := httptest.NewRequest(http.MethodGet, "/section/admin-orders", nil)
	replay(req, cookies)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	replay(next, rec.Result().Cookies())
	token, user := deps.Sessions.Current(next)
	if token != "good-token" || user == nil {
		t.Fatalf("session lost on a 403: token=%q user=%+v", token, user)
	}
}

func TestAdminSectionHiddenFromGuests(t *testing.T) {
	deps := newTestDeps("http://127.0.0.1:0")
	router := sectionRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/section/admin-orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("redirect = %q, want /", loc)
	}
}

func TestOrderSectionRequiresLogin(t *testing.T) {
	deps := newTestDeps("http://127.0.0.1:0")
	router := sectionRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/section/order-phone?phone=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/section/login" {
		t.Fatalf("redirect = %q, want /section/login", loc)
	}
}

func TestCriteriaFromQuery(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet,
		"/section/phones?search=pro&brand=Apple&min_price=100&max_price=999.99&sort=price_low", nil)

	criteria := criteriaFromQuery(c)
	if criteria.Search != "pro" || criteria.Brand != "Apple" || criteria.SortKey != "price_low" {
		t.Fatalf("criteria = %+v", criteria)
	}
	if criteria.MinPrice == nil || *criteria.MinPrice != 100 {
		t.Fatalf("min price = %v", criteria.MinPrice)
	}
	if criteria.MaxPrice == nil || *criteria.MaxPrice != 999.99 {
		t.Fatalf("max price = %v", criteria.MaxPrice)
	}
}

func TestCriteriaFromQueryIgnoresBadBounds(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/section/phones?min_price=abc&max_price=", nil)

	criteria := criteriaFromQuery(c)
	if criteria.MinPrice != nil || criteria.MaxPrice != nil {
		t.Fatalf("bounds parsed from garbage: %+v", criteria)
	}
}

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"PhoneID":       "phone_id",
		"CustomerEmail": "customer_email",
		"Quantity":      "quantity",
		"DeliveryZip":   "delivery_zip",
	}
	for in, want := range cases {
		if got := snakeCase(in); got != want {
			t.Errorf("snakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidationMessageNamesFirstField(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/orders", nil)
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var form orderForm
	err := c.ShouldBind(&form)
	if err == nil {
		t.Fatal("empty form passed validation")
	}
	msg := validationMessage(err)
	if msg == "" || msg == "Please fill in all required fields." {
		t.Fatalf("message not field-specific: %q", msg)
	}
}

func TestRecentOrdersCapsLength(t *testing.T) {
	orders := make([]models.Order, 8)
	for i := range orders {
		orders[i].ID = 8 - i
	}
	got := recentOrders(orders, 5)
	if len(got) != 5 || got[0].ID != 8 {
		t.Fatalf("recent = %d orders, first id %d", len(got), got[0].ID)
	}
	if short := recentOrders(orders[:3], 5); len(short) != 3 {
		t.Fatalf("short list truncated to %d", len(short))
	}
}
