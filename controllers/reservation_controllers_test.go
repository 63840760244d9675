package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lexcellence/reservation-app/database"
	"github.com/lexcellence/reservation-app/models"
	"github.com/lexcellence/reservation-app/router"
	"github.com/lexcellence/reservation-app/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupServer builds a full router over a private in-memory database.
func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.Reservation{},
		&models.PrivatisationRequest{},
		&models.ContactMessage{},
		&models.NewsletterSubscriber{},
		&models.Article{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := database.SeedArticles(db); err != nil {
		t.Fatalf("failed to seed articles: %v", err)
	}
	return router.SetupRouter(db), db
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}, headers map[string]string) (*httptest.ResponseRecorder, utils.JSONResponse) {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.JSONResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func getJSON(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func reservationPayload() map[string]interface{} {
	return map[string]interface{}{
		"date":      "2024-11-19",
		"time":      "19:30",
		"guests":    4,
		"firstName": "Jean",
		"lastName":  "Dupont",
		"email":     "jean@example.com",
		"phone":     "0612345678",
	}
}

func TestCreateReservationSuccess(t *testing.T) {
	r, db := setupServer(t)

	w, resp := postJSON(t, r, "/reservation", reservationPayload(), nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Réservation confirmée", resp.Message)

	data := resp.Data.(map[string]interface{})
	assert.Regexp(t, `^EXC[0-9A-Z]+$`, data["confirmationNumber"])
	assert.Equal(t, "2024-11-19", data["date"])
	assert.Equal(t, "19:30", data["time"])
	assert.EqualValues(t, 4, data["guests"])

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateReservationRejectsOversizedParty(t *testing.T) {
	r, db := setupServer(t)

	payload := reservationPayload()
	payload["guests"] = 15
	w, resp := postJSON(t, r, "/reservation", payload, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, "guests")
	assert.Contains(t, resp.Errors["guests"], "12")

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateReservationRejectsClosedDay(t *testing.T) {
	r, _ := setupServer(t)

	payload := reservationPayload()
	payload["date"] = "2024-11-17" // Sunday
	w, resp := postJSON(t, r, "/reservation", payload, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Errors, "date")
}

func TestCreateReservationIdempotencyHeader(t *testing.T) {
	r, db := setupServer(t)
	headers := map[string]string{"Idempotency-Key": "double-click-1"}

	w1, resp1 := postJSON(t, r, "/reservation", reservationPayload(), headers)
	assert.Equal(t, http.StatusCreated, w1.Code)
	w2, resp2 := postJSON(t, r, "/reservation", reservationPayload(), headers)
	assert.Equal(t, http.StatusCreated, w2.Code)

	n1 := resp1.Data.(map[string]interface{})["confirmationNumber"]
	n2 := resp2.Data.(map[string]interface{})["confirmationNumber"]
	assert.Equal(t, n1, n2)

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateReservationSlotFull(t *testing.T) {
	t.Setenv("SLOT_CAPACITY", "10")
	r, _ := setupServer(t)

	payload := reservationPayload()
	payload["guests"] = 8
	w, _ := postJSON(t, r, "/reservation", payload, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	payload["guests"] = 4
	w, resp := postJSON(t, r, "/reservation", payload, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Ce créneau est complet", resp.Message)
}

func TestCheckAvailabilityRequiresDate(t *testing.T) {
	r, _ := setupServer(t)

	w, resp := getJSON(t, r, "/reservation/availability")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Date requise", resp["message"])
}

func TestCheckAvailabilityClosedDay(t *testing.T) {
	r, _ := setupServer(t)

	w, resp := getJSON(t, r, "/reservation/availability?date=2024-11-17")
	assert.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["isClosed"])
	assert.Empty(t, data["slots"])
}

func TestCheckAvailabilityOpenDay(t *testing.T) {
	r, db := setupServer(t)

	// An existing booking shows up in the remaining-seat counts.
	_, createResp := postJSON(t, r, "/reservation", reservationPayload(), nil)
	assert.True(t, createResp.Success)
	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.EqualValues(t, 1, count)

	w, resp := getJSON(t, r, "/reservation/availability?date=2024-11-19")
	assert.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, false, data["isClosed"])

	slots := data["slots"].(map[string]interface{})
	lunch := slots["lunch"].([]interface{})
	dinner := slots["dinner"].([]interface{})
	assert.Len(t, lunch, 8)
	assert.Len(t, dinner, 11)

	for _, raw := range dinner {
		slot := raw.(map[string]interface{})
		if slot["time"] == "19:30" {
			assert.EqualValues(t, 26, slot["remainingSeats"])
			assert.Equal(t, true, slot["available"])
		}
	}
}
