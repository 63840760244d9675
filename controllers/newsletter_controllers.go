package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lexcellence/reservation-app/models"
	"github.com/lexcellence/reservation-app/utils"
	"gorm.io/gorm"
)

type NewsletterController struct {
	DB *gorm.DB
}

func NewNewsletterController(db *gorm.DB) *NewsletterController {
	return &NewsletterController{DB: db}
}

// Subscribe -> POST /newsletter
func (nc *NewsletterController) Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondFieldErrors(c, http.StatusBadRequest, "Email invalide", utils.BindingErrors(err))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.NewsletterSubscriber
	err := nc.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrAlreadySubscribed)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.ErrorLogger.Printf("newsletter lookup failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, ErrNewsletterFailed)
		return
	}

	subscriber := models.NewsletterSubscriber{
		Email:        email,
		Status:       "active",
		SubscribedAt: time.Now(),
	}
	if err := nc.DB.Create(&subscriber).Error; err != nil {
		// The unique index wins races the First check cannot see.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(c, http.StatusBadRequest, ErrAlreadySubscribed)
			return
		}
		utils.ErrorLogger.Printf("newsletter subscription not stored: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, ErrNewsletterFailed)
		return
	}

	utils.InfoLogger.Printf("Newsletter subscription: %s", email)
	utils.RespondJSON(c, http.StatusCreated, "Inscription à la newsletter réussie", nil)
}
