package router

import (
	"github.com/gin-gonic/gin"
	"github.com/lexcellence/reservation-app/config"
	"github.com/lexcellence/reservation-app/controllers"
	"github.com/lexcellence/reservation-app/middlewares"
	"github.com/lexcellence/reservation-app/services"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	notifier := services.NewLogNotifier()
	capacity := config.SlotCapacity()
	availabilitySvc := services.NewAvailabilityService(db, capacity)
	reservationSvc := services.NewReservationService(db, capacity, notifier)
	privatisationSvc := services.NewPrivatisationService(db, notifier)

	reservationCtrl := controllers.NewReservationController(reservationSvc, availabilitySvc)
	privatisationCtrl := controllers.NewPrivatisationController(privatisationSvc)
	contactCtrl := controllers.NewContactController(db, notifier)
	newsletterCtrl := controllers.NewNewsletterController(db)
	articleCtrl := controllers.NewArticleController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/reservation/availability", reservationCtrl.CheckAvailability)
	r.GET("/articles", articleCtrl.GetAllArticles)
	r.GET("/articles/:slug", articleCtrl.GetArticleBySlug)

	// Form submissions get the stricter per-IP limit.
	forms := r.Group("/")
	forms.Use(middlewares.NewStrictRateLimiter())
	{
		forms.POST("/reservation", reservationCtrl.CreateReservation)
		forms.POST("/privatisation", privatisationCtrl.CreateRequest)
		forms.POST("/contact", contactCtrl.CreateMessage)
		forms.POST("/newsletter", newsletterCtrl.Subscribe)
	}

	return r
}
