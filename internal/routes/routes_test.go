package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/dental-admin/internal/backup"
	"github.com/BruksfildServices01/dental-admin/internal/config"
	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/repair"
	"github.com/BruksfildServices01/dental-admin/internal/storage"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

func newServer(t *testing.T, cfg *config.Config) (*gin.Engine, *entity.Stores) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	facade := storage.NewFacade(storage.NewMemoryBackend(), "dentalClinic", nil)
	stores := entity.NewStores(entity.NewKeyspace(facade, nil))
	clock := timezone.Fixed(timezone.DefaultTimezone, time.Date(2025, 1, 10, 6, 0, 0, 0, time.UTC))

	r := gin.New()
	RegisterRoutes(r, Deps{
		Config:   cfg,
		Log:      zap.NewNop(),
		Stores:   stores,
		Clock:    clock,
		Journal:  notify.NewJournal(facade, 50),
		Hub:      notify.NewHub(nil),
		Repairer: repair.New(stores, nil, nil),
		Backups:  backup.New(facade, nil, "", clock, nil, nil),
	})
	return r, stores
}

func openConfig() *config.Config {
	return &config.Config{ClinicOpen: "09:00", ClinicClose: "21:00", JWTSecret: "test-secret"}
}

func do(r http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPatientLifecycleOverHTTP(t *testing.T) {
	r, stores := newServer(t, openConfig())

	w := do(r, http.MethodPost, "/api/patients", map[string]string{"name": "Afzal", "phone": "03001234567"}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d %s", w.Code, w.Body)
	}

	w = do(r, http.MethodPost, "/api/patients", map[string]string{"name": "Other", "phone": "03001234567"}, "")
	if w.Code != http.StatusConflict || !strings.Contains(w.Body.String(), "duplicate_phone") {
		t.Fatalf("duplicate = %d %s", w.Code, w.Body)
	}

	w = do(r, http.MethodPost, "/api/patients", map[string]string{"name": "", "phone": "12"}, "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid = %d %s", w.Code, w.Body)
	}
	var verr struct {
		Fields map[string]string `json:"fields"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &verr)
	if verr.Fields["name"] == "" || verr.Fields["phone"] == "" {
		t.Fatalf("fields = %v", verr.Fields)
	}

	w = do(r, http.MethodPost, "/api/appointments", map[string]any{
		"patientId": "p-01", "date": "2025-01-11", "time": "10:00", "treatment": "Scaling",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("appointment = %d %s", w.Code, w.Body)
	}

	w = do(r, http.MethodGet, "/api/view/appointments", nil, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"patientName":"Afzal"`) {
		t.Fatalf("view = %d %s", w.Code, w.Body)
	}

	w = do(r, http.MethodDelete, "/api/patients/p-01", nil, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"pruned":["a-01"]`) {
		t.Fatalf("delete = %d %s", w.Code, w.Body)
	}
	if n := len(stores.Appointments.All(context.Background())); n != 0 {
		t.Fatalf("appointments left = %d", n)
	}

	w = do(r, http.MethodDelete, "/api/patients/p-01", nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete = %d", w.Code)
	}
}

func TestAuthGate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	cfg := openConfig()
	cfg.AdminPasswordHash = string(hash)
	r, _ := newServer(t, cfg)

	if w := do(r, http.MethodGet, "/api/view/patients", nil, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token = %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/api/auth/login", map[string]string{"password": "wrong"}, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password = %d", w.Code)
	}

	w := do(r, http.MethodPost, "/api/auth/login", map[string]string{"password": "s3cret"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d %s", w.Code, w.Body)
	}
	var login struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &login)

	w = do(r, http.MethodGet, "/api/auth/session", nil, login.Token)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"operator":"operator"`) {
		t.Fatalf("session = %d %s", w.Code, w.Body)
	}
	if w := do(r, http.MethodGet, "/api/view/patients", nil, "garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token = %d", w.Code)
	}
}

func TestImportAndExportOverHTTP(t *testing.T) {
	r, _ := newServer(t, openConfig())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, _ := mw.CreateFormFile("file", "patients.csv")
	_, _ = fw.Write([]byte("Name,Phone\nAfzal,03001234567\nNo Phone,\n"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/import/patients", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"imported":1`) || !strings.Contains(w.Body.String(), `"skipped":1`) {
		t.Fatalf("import = %d %s", w.Code, w.Body)
	}

	w = do(r, http.MethodGet, "/api/export/patients?format=csv", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("export = %d %s", w.Code, w.Body)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "patients_2025-01-10.csv") {
		t.Fatalf("disposition = %q", cd)
	}
	if !strings.HasPrefix(w.Body.String(), "Name,Phone,Email,Date of Birth,Address,Gender,Status,Created Date\nAfzal,03001234567") {
		t.Fatalf("csv = %q", w.Body.String())
	}

	if w := do(r, http.MethodGet, "/api/export/widgets", nil, ""); w.Code != http.StatusNotFound {
		t.Fatalf("unknown entity = %d", w.Code)
	}
}

func TestBackupDisabledAndSlots(t *testing.T) {
	r, _ := newServer(t, openConfig())

	if w := do(r, http.MethodPost, "/api/backup", nil, ""); w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "backup_disabled") {
		t.Fatalf("backup = %d %s", w.Code, w.Body)
	}
	if w := do(r, http.MethodGet, "/api/backup", nil, ""); w.Code != http.StatusOK {
		t.Fatalf("download = %d", w.Code)
	}

	w := do(r, http.MethodGet, "/api/appointments/slots?date=2025-01-11&duration=60", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("slots = %d %s", w.Code, w.Body)
	}
	var slots struct {
		Total int `json:"total"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &slots)
	if slots.Total != 12 {
		t.Fatalf("slots = %d, want 12", slots.Total)
	}
}
