package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lexcellence/reservation-app/services"
	"github.com/lexcellence/reservation-app/utils"
)

type PrivatisationController struct {
	Service *services.PrivatisationService
}

func NewPrivatisationController(svc *services.PrivatisationService) *PrivatisationController {
	return &PrivatisationController{Service: svc}
}

// CreateRequest -> POST /privatisation
func (pc *PrivatisationController) CreateRequest(c *gin.Context) {
	var in services.PrivatisationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondFieldErrors(c, http.StatusBadRequest, "Données invalides", utils.BindingErrors(err))
		return
	}

	request, err := pc.Service.Submit(c.Request.Context(), in, c.GetHeader("Idempotency-Key"))
	if err != nil {
		var fe services.FieldErrors
		if errors.As(err, &fe) {
			utils.RespondFieldErrors(c, http.StatusBadRequest, "Données invalides", fe)
			return
		}
		utils.ErrorLogger.Printf("privatisation submit failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, ErrPrivatisationFail)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Demande de privatisation envoyée", gin.H{
		"requestNumber": request.RequestNumber,
	})
}
