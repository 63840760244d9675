package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lexcellence/reservation-app/models"
	"github.com/lexcellence/reservation-app/services"
	"github.com/lexcellence/reservation-app/utils"
	"gorm.io/gorm"
)

type ContactController struct {
	DB       *gorm.DB
	Notifier services.NotificationSender
}

func NewContactController(db *gorm.DB, notifier services.NotificationSender) *ContactController {
	return &ContactController{DB: db, Notifier: notifier}
}

// CreateMessage -> POST /contact
func (cc *ContactController) CreateMessage(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required,min=2"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject" binding:"required,min=1"`
		Message string `json:"message" binding:"required,min=10"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondFieldErrors(c, http.StatusBadRequest, "Données invalides", utils.BindingErrors(err))
		return
	}

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := cc.DB.Create(&message).Error; err != nil {
		utils.ErrorLogger.Printf("contact message not stored: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, ErrContactFailed)
		return
	}

	go func(m models.ContactMessage) {
		if err := cc.Notifier.SendContactAcknowledgement(&m); err != nil {
			utils.ErrorLogger.Printf("contact acknowledgement not sent: %v", err)
		}
	}(message)

	utils.InfoLogger.Printf("Contact message received from %s (subject: %s)", message.Email, message.Subject)
	utils.RespondJSON(c, http.StatusCreated, "Message envoyé avec succès", nil)
}
