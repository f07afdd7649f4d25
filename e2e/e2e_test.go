//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"gorm.io/gorm"

	"meal-train-go/internal/config"
	"meal-train-go/internal/db"
	couriersdomain "meal-train-go/internal/domain/couriers"
	mealsdomain "meal-train-go/internal/domain/meals"
	pickupsdomain "meal-train-go/internal/domain/pickups"
	remindersdomain "meal-train-go/internal/domain/reminders"
	couriersrepo "meal-train-go/internal/repository/postgres/couriers"
	mealsrepo "meal-train-go/internal/repository/postgres/meals"
	pickupsrepo "meal-train-go/internal/repository/postgres/pickups"
	"meal-train-go/internal/transport/httpserver"
	"meal-train-go/internal/transport/httpserver/handler"
	adminhandler "meal-train-go/internal/transport/httpserver/handler/admin"
	commonhandler "meal-train-go/internal/transport/httpserver/handler/common"
	publichandler "meal-train-go/internal/transport/httpserver/handler/public"
	authmw "meal-train-go/internal/transport/httpserver/middleware"
	"meal-train-go/pkg/logger"
)

const (
	adminPassword = "e2e-admin-password"
	cronSecret    = "e2e-cron-secret"
)

// nullMailer drops every email; e2e covers the HTTP surface, not SMTP.
type nullMailer struct{}

func (nullMailer) Send(ctx context.Context, to, subject, html string) error { return nil }

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	log := logger.NewFromEnv()

	cfg := config.Config{
		Env:         "development",
		BaseURL:     "http://localhost:8080",
		DB:          config.DBConfig{DSN: dsn},
		Admin:       config.AdminConfig{Password: adminPassword},
		CronSecret:  cronSecret,
		CORSOrigins: []string{"http://localhost:3000"},
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}

	if err := db.Migrate(dbConn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	pickupRepo := pickupsrepo.NewPostgres(dbConn)
	mealRepo := mealsrepo.NewPostgres(dbConn)
	courierRepo := couriersrepo.NewPostgres(dbConn)

	mailer := nullMailer{}
	pickupService := pickupsdomain.NewService(pickupRepo)
	courierService := couriersdomain.NewService(courierRepo)
	mealService := mealsdomain.NewService(mealRepo, pickupRepo, courierRepo, mailer, cfg.BaseURL, log)
	reminderService := remindersdomain.NewService(pickupRepo, mealRepo, courierRepo, mailer, log)

	adminAuth := authmw.NewAdminAuth(cfg.Admin.Password, cfg.Env)
	handlers := handler.New(
		commonhandler.New(log),
		publichandler.New(mealService, pickupService, reminderService, cfg.CronSecret, log),
		adminhandler.New(mealService, pickupService, courierService, adminAuth, log),
	)

	server := httptest.NewServer(httpserver.NewRouter(cfg, handlers))

	return &testEnv{server: server, db: dbConn}
}

func (e *testEnv) Close() {
	e.server.Close()
	sqlDB, err := e.db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.WithContext(context.Background()).Exec(
		"TRUNCATE TABLE meal_signups, pickup_locations, couriers RESTART IDENTITY CASCADE",
	).Error
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{Timeout: 5 * time.Second, Jar: jar}
}

func requestJSON(t *testing.T, client *http.Client, method, url string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp, respBody
}

func loginAdmin(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()
	resp, body := requestJSON(t, client, http.MethodPost, baseURL+"/api/admin/login", map[string]string{"password": adminPassword})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin login: status %d, body %s", resp.StatusCode, body)
	}
}

type pickupLocationResponse struct {
	ID         string `json:"id"`
	PickupDate string `json:"pickupDate"`
	Location   string `json:"location"`
	Active     bool   `json:"active"`
}

type createMealResponse struct {
	Success bool   `json:"success"`
	MealID  string `json:"mealId"`
	Message string `json:"message"`
}

func TestE2EHealth(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := newClient(t)
	resp, body := requestJSON(t, client, http.MethodGet, env.server.URL+"/api/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health: status %d, body %s", resp.StatusCode, body)
	}
}

func TestE2ESignupAndCancelFlow(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	admin := newClient(t)
	loginAdmin(t, admin, env.server.URL)

	nextWeek := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
	resp, body := requestJSON(t, admin, http.MethodPost, env.server.URL+"/api/admin/pickup-locations", map[string]string{
		"pickupDate": nextWeek,
		"location":   "Salem",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create pickup: status %d, body %s", resp.StatusCode, body)
	}
	var pickup pickupLocationResponse
	if err := json.Unmarshal(body, &pickup); err != nil {
		t.Fatalf("decode pickup: %v", err)
	}

	public := newClient(t)
	resp, body = requestJSON(t, public, http.MethodGet, env.server.URL+"/api/pickup-locations", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list pickups: status %d, body %s", resp.StatusCode, body)
	}
	var available []pickupLocationResponse
	if err := json.Unmarshal(body, &available); err != nil {
		t.Fatalf("decode pickups: %v", err)
	}
	if len(available) != 1 || available[0].ID != pickup.ID {
		t.Fatalf("available pickups = %+v, want the created one", available)
	}

	resp, body = requestJSON(t, public, http.MethodPost, env.server.URL+"/api/meals", map[string]interface{}{
		"name":             "Jordan Baker",
		"phone":            "503-555-0142",
		"email":            "jordan@example.org",
		"pickupLocationId": pickup.ID,
		"mealDescription":  "Vegetarian lasagna",
		"freezerFriendly":  true,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create meal: status %d, body %s", resp.StatusCode, body)
	}
	var created createMealResponse
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode meal: %v", err)
	}
	if !created.Success || created.MealID == "" {
		t.Fatalf("unexpected create response %+v", created)
	}

	// The cancellation token only travels by email; read it from the row.
	var token string
	if err := env.db.Table("meal_signups").
		Select("cancellation_token").
		Where("id = ?", created.MealID).
		Scan(&token).Error; err != nil {
		t.Fatalf("read token: %v", err)
	}

	resp, body = requestJSON(t, public, http.MethodGet, env.server.URL+"/api/cancel/"+token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cancel lookup: status %d, body %s", resp.StatusCode, body)
	}

	resp, body = requestJSON(t, public, http.MethodPost, env.server.URL+"/api/cancel/"+token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cancel: status %d, body %s", resp.StatusCode, body)
	}

	resp, _ = requestJSON(t, public, http.MethodPost, env.server.URL+"/api/cancel/"+token, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("second cancel: status %d, want 400", resp.StatusCode)
	}
}

func TestE2EAdminRequiresSession(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := newClient(t)
	resp, _ := requestJSON(t, client, http.MethodGet, env.server.URL+"/api/admin/meals", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("admin without session: status %d, want 401", resp.StatusCode)
	}

	resp, _ = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/admin/login", map[string]string{"password": "wrong"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad password: status %d, want 401", resp.StatusCode)
	}
}

func TestE2EAdminCourierCRUD(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	admin := newClient(t)
	loginAdmin(t, admin, env.server.URL)

	resp, body := requestJSON(t, admin, http.MethodPost, env.server.URL+"/api/admin/couriers", map[string]interface{}{
		"name":      "Casey Nguyen",
		"email":     "casey@example.org",
		"phone":     "503-555-0199",
		"locations": []string{"Salem", "Portland"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create courier: status %d, body %s", resp.StatusCode, body)
	}
	var courier struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &courier); err != nil {
		t.Fatalf("decode courier: %v", err)
	}

	resp, body = requestJSON(t, admin, http.MethodPut, env.server.URL+"/api/admin/couriers/"+courier.ID, map[string]interface{}{
		"name":      "Casey N.",
		"email":     "casey@example.org",
		"phone":     "5035550199",
		"locations": []string{"Eugene"},
		"active":    false,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update courier: status %d, body %s", resp.StatusCode, body)
	}

	resp, body = requestJSON(t, admin, http.MethodDelete, env.server.URL+"/api/admin/couriers/"+courier.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete courier: status %d, body %s", resp.StatusCode, body)
	}

	resp, _ = requestJSON(t, admin, http.MethodDelete, env.server.URL+"/api/admin/couriers/"+courier.ID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("delete missing courier: status %d, want 404", resp.StatusCode)
	}
}

func TestE2ECronSecretGate(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := newClient(t)

	req, err := http.NewRequest(http.MethodGet, env.server.URL+"/api/cron/send-reminders", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no secret: status %d, want 401", resp.StatusCode)
	}

	req, err = http.NewRequest(http.MethodGet, env.server.URL+"/api/cron/send-reminders", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+cronSecret)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("with secret: status %d, body %s", resp.StatusCode, body)
	}
}
