package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lexcellence/reservation-app/services"
	"github.com/lexcellence/reservation-app/utils"
)

type ReservationController struct {
	Service      *services.ReservationService
	Availability *services.AvailabilityService
}

func NewReservationController(svc *services.ReservationService, avail *services.AvailabilityService) *ReservationController {
	return &ReservationController{Service: svc, Availability: avail}
}

// CheckAvailability -> GET /reservation/availability?date=YYYY-MM-DD
func (rc *ReservationController) CheckAvailability(c *gin.Context) {
	date := c.Query("date")

	day, err := rc.Availability.GetAvailability(date)
	if err != nil {
		var fe services.FieldErrors
		if errors.As(err, &fe) {
			message := "Données invalides"
			if date == "" {
				message = "Date requise"
			}
			utils.RespondFieldErrors(c, http.StatusBadRequest, message, fe)
			return
		}
		utils.ErrorLogger.Printf("availability lookup for %q failed: %v", date, err)
		utils.RespondError(c, http.StatusInternalServerError, ErrAvailabilityFailed)
		return
	}

	if day.IsClosed {
		utils.RespondJSON(c, http.StatusOK, "Le restaurant est fermé ce jour", gin.H{
			"date":     day.Date,
			"isClosed": true,
			"slots":    []string{},
		})
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Créneaux disponibles", gin.H{
		"date":     day.Date,
		"isClosed": false,
		"slots": gin.H{
			"lunch":  day.Lunch,
			"dinner": day.Dinner,
		},
	})
}

// CreateReservation -> POST /reservation
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var in services.ReservationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondFieldErrors(c, http.StatusBadRequest, "Données invalides", utils.BindingErrors(err))
		return
	}

	reservation, err := rc.Service.Submit(c.Request.Context(), in, c.GetHeader("Idempotency-Key"))
	if err != nil {
		var fe services.FieldErrors
		switch {
		case errors.As(err, &fe):
			utils.RespondFieldErrors(c, http.StatusBadRequest, "Données invalides", fe)
		case errors.Is(err, services.ErrSlotFull):
			utils.RespondError(c, http.StatusConflict, ErrSlotFull)
		default:
			utils.ErrorLogger.Printf("reservation submit failed: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, ErrReservationFailed)
		}
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Réservation confirmée", gin.H{
		"confirmationNumber": reservation.ConfirmationNumber,
		"date":               reservation.Date,
		"time":               reservation.Time,
		"guests":             reservation.Guests,
	})
}
