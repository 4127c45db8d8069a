package main

import (
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lunchly/lunchly-app/models"
	"github.com/lunchly/lunchly-app/router"
	"github.com/lunchly/lunchly-app/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

// TestEndToEndIntegration walks the main flow:
// 1. Add a customer
// 2. View their detail page
// 3. Add a reservation
// 4. Edit the reservation
// 5. Check the top-ten listing
// 6. Delete the reservation, then the customer
func TestEndToEndIntegration(t *testing.T) {
	db := setupTestDB()
	r := router.SetupRouter(db)

	customerPath := addCustomerTest(t, r)

	detailBody := getPageTest(t, r, customerPath, http.StatusOK)
	if !strings.Contains(detailBody, "Ada Lovelace") {
		t.Fatalf("detail page missing customer name: %s", detailBody)
	}

	addReservationTest(t, r, customerPath)

	detailBody = getPageTest(t, r, customerPath, http.StatusOK)
	if !strings.Contains(detailBody, "May 1, 2024, 7:00 pm") {
		t.Fatalf("detail page missing reservation: %s", detailBody)
	}

	editReservationTest(t, r, customerPath)

	topBody := getPageTest(t, r, "/top/", http.StatusOK)
	if !strings.Contains(topBody, "Ada Lovelace") {
		t.Fatalf("top listing missing customer: %s", topBody)
	}

	deleteReservationTest(t, r, customerPath)
	deleteCustomerTest(t, r, customerPath)

	getPageTest(t, r, customerPath, http.StatusNotFound)
}

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Reservation{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func getPageTest(t *testing.T, r *gin.Engine, path string, wantCode int) string {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != wantCode {
		t.Fatalf("GET %s: code=%d, want %d, body=%s", path, w.Code, wantCode, w.Body.String())
	}
	return w.Body.String()
}

func postFormTest(t *testing.T, r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func addCustomerTest(t *testing.T, r *gin.Engine) string {
	w := postFormTest(t, r, "/add/", url.Values{
		"firstName": {"Ada"},
		"lastName":  {"Lovelace"},
		"notes":     {"likes the window"},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("addCustomerTest: code=%d, body=%s", w.Code, w.Body.String())
	}

	location := w.Header().Get("Location")
	if location == "" {
		t.Fatal("addCustomerTest: no redirect location")
	}
	return location
}

func addReservationTest(t *testing.T, r *gin.Engine, customerPath string) {
	w := postFormTest(t, r, customerPath+"add-reservation/", url.Values{
		"numGuests": {"4"},
		"startAt":   {"2024-05-01 7:00 pm"},
		"notes":     {"window seat"},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("addReservationTest: code=%d, body=%s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != customerPath {
		t.Fatalf("addReservationTest: redirect=%s, want %s", got, customerPath)
	}
}

func editReservationTest(t *testing.T, r *gin.Engine, customerPath string) {
	customerID := strings.Trim(customerPath, "/")

	// reservation ids start at 1 in the fresh database
	w := postFormTest(t, r, "/1/edit-res/", url.Values{
		"customerId": {customerID},
		"numGuests":  {"6"},
		"startAt":    {"2024-05-01 8:00 pm"},
		"notes":      {"window seat, birthday"},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("editReservationTest: code=%d, body=%s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != customerPath {
		t.Fatalf("editReservationTest: redirect=%s, want %s", got, customerPath)
	}
}

func deleteReservationTest(t *testing.T, r *gin.Engine, customerPath string) {
	w := postFormTest(t, r, customerPath+"delete-reservation/", url.Values{
		"reservationId": {"1"},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("deleteReservationTest: code=%d, body=%s", w.Code, w.Body.String())
	}
}

func deleteCustomerTest(t *testing.T, r *gin.Engine, customerPath string) {
	w := postFormTest(t, r, customerPath+"delete/", url.Values{})
	if w.Code != http.StatusFound {
		t.Fatalf("deleteCustomerTest: code=%d, body=%s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != "/" {
		t.Fatalf("deleteCustomerTest: redirect=%s, want /", got)
	}
}
