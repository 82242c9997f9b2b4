package routes

import (
	"net/http"

	"partnerapi/handlers"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth   *handlers.AuthHandler
	Events *handlers.EventHandler
	Spots  *handlers.SpotHandler
}

// NewRouter 建立 gin 引擎並掛載 /api 路由
func NewRouter(h Handlers) (*gin.Engine, error) {
	if err := handlers.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), Logger())

	api := r.Group("/api")
	Path(api, h)
	return r, nil
}

func Path(router *gin.RouterGroup, h Handlers) {
	v1 := router.Group("/v1")
	{
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		v1.POST("/auth/token", h.Auth.IssueToken)

		// 活動路由：查詢公開，異動需要 token
		events := v1.Group("/events")
		{
			events.GET("", h.Events.FindAll)
			events.GET("/:eventId", h.Events.FindOne)

			eventsWithAuth := events.Group("")
			eventsWithAuth.Use(AuthMiddleware())
			{
				eventsWithAuth.POST("", h.Events.Create)
				eventsWithAuth.PATCH("/:eventId", h.Events.Update)
				eventsWithAuth.DELETE("/:eventId", h.Events.Remove)
				eventsWithAuth.POST("/:eventId/reserve", h.Events.Reserve)
			}

			// 車位路由
			spots := events.Group("/:eventId/spots")
			{
				spots.GET("", h.Spots.FindAll)
				spots.GET("/:spotId", h.Spots.FindOne)

				spotsWithAuth := spots.Group("")
				spotsWithAuth.Use(AuthMiddleware())
				{
					spotsWithAuth.POST("", h.Spots.Create)
					spotsWithAuth.PATCH("/:spotId", h.Spots.Update)
					spotsWithAuth.DELETE("/:spotId", h.Spots.Remove)
				}
			}
		}
	}
}
