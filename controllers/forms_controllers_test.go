package controllers_test

import (
	"net/http"
	"testing"

	"github.com/lexcellence/reservation-app/models"
	"github.com/stretchr/testify/assert"
)

func TestPrivatisationRequestSuccess(t *testing.T) {
	r, db := setupServer(t)

	payload := map[string]interface{}{
		"name":       "Marie Laurent",
		"email":      "marie@example.com",
		"phone":      "0698765432",
		"eventType":  "corporate",
		"eventDate":  "2025-03-20",
		"guestCount": 45,
		"message":    "Séminaire annuel de notre entreprise, dîner assis souhaité.",
	}
	w, resp := postJSON(t, r, "/privatisation", payload, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Demande de privatisation envoyée", resp.Message)

	data := resp.Data.(map[string]interface{})
	assert.Regexp(t, `^PVT[0-9A-Z]+$`, data["requestNumber"])

	var stored models.PrivatisationRequest
	assert.NoError(t, db.First(&stored).Error)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestPrivatisationRequestRejectsBadPayload(t *testing.T) {
	r, _ := setupServer(t)

	payload := map[string]interface{}{
		"name":       "M",
		"email":      "marie@example.com",
		"phone":      "069",
		"eventType":  "concert",
		"eventDate":  "2025-03-20",
		"guestCount": 0,
		"message":    "court",
	}
	w, resp := postJSON(t, r, "/privatisation", payload, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, "name")
	assert.Contains(t, resp.Errors, "phone")
	assert.Contains(t, resp.Errors, "eventType")
	assert.Contains(t, resp.Errors, "message")
}

func TestContactMessageSuccess(t *testing.T) {
	r, db := setupServer(t)

	payload := map[string]interface{}{
		"name":    "Paul Martin",
		"email":   "paul@example.com",
		"subject": "Question sur les menus",
		"message": "Proposez-vous un menu végétarien complet ?",
	}
	w, resp := postJSON(t, r, "/contact", payload, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Message envoyé avec succès", resp.Message)

	var count int64
	db.Model(&models.ContactMessage{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestContactMessageRejectsShortMessage(t *testing.T) {
	r, _ := setupServer(t)

	payload := map[string]interface{}{
		"name":    "Paul Martin",
		"email":   "paul@example.com",
		"subject": "Question",
		"message": "court",
	}
	w, resp := postJSON(t, r, "/contact", payload, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Errors, "message")
}

func TestNewsletterSubscribe(t *testing.T) {
	r, db := setupServer(t)

	w, resp := postJSON(t, r, "/newsletter", map[string]interface{}{"email": "paul@example.com"}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Inscription à la newsletter réussie", resp.Message)

	var stored models.NewsletterSubscriber
	assert.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "paul@example.com", stored.Email)
	assert.Equal(t, "active", stored.Status)
}

func TestNewsletterRejectsInvalidEmail(t *testing.T) {
	r, _ := setupServer(t)

	w, resp := postJSON(t, r, "/newsletter", map[string]interface{}{"email": "not-an-email"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, "email")
}

func TestNewsletterRejectsDuplicate(t *testing.T) {
	r, _ := setupServer(t)

	w, _ := postJSON(t, r, "/newsletter", map[string]interface{}{"email": "paul@example.com"}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Same address, different casing.
	w, resp := postJSON(t, r, "/newsletter", map[string]interface{}{"email": "Paul@Example.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cette adresse email est déjà inscrite", resp.Message)
}
