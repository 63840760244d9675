package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lexcellence/reservation-app/models"
	"github.com/lexcellence/reservation-app/utils"
	"gorm.io/gorm"
)

type ArticleController struct {
	DB *gorm.DB
}

func NewArticleController(db *gorm.DB) *ArticleController {
	return &ArticleController{DB: db}
}

// GetAllArticles -> GET /articles, newest first
func (ac *ArticleController) GetAllArticles(c *gin.Context) {
	var articles []models.Article
	if err := ac.DB.Order("published_at DESC").Find(&articles).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Liste des actualités", articles)
}

// GetArticleBySlug -> GET /articles/:slug
func (ac *ArticleController) GetArticleBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var article models.Article
	err := ac.DB.Where("slug = ?", slug).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, ErrArticleNotFound)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Détail de l'actualité", article)
}
