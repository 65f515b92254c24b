package app

import (
	"quizdeck_backend/docs"
	"quizdeck_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		modules := api.Group("/modules")
		{
			modules.GET("", c.module.ListModules)
			modules.POST("", c.module.CreateModule)
			modules.GET("/:id", c.module.GetModule)
			modules.PUT("/:id", c.module.RenameModule)
			modules.DELETE("/:id", c.module.DeleteModule)
			modules.POST("/:id/questions", c.module.AddQuestion)
			modules.PUT("/:id/questions/:questionId", c.module.UpdateQuestion)
			modules.DELETE("/:id/questions/:questionId", c.module.DeleteQuestion)
		}

		quiz := api.Group("/quiz")
		{
			quiz.POST("/start", c.quiz.StartQuiz)
			quiz.GET("/question", c.quiz.GetQuestion)
			quiz.POST("/answer", c.quiz.SubmitAnswer)
			quiz.GET("/result", c.quiz.GetResult)
			quiz.POST("/reset", c.quiz.ResetQuiz)
		}
	}
}
