package controller

import (
	"net/http"

	"quizdeck_backend/internal/repository"
	"quizdeck_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Repo *repository.ModuleRepository
}

func NewHealthController(repo *repository.ModuleRepository) *HealthController {
	return &HealthController{Repo: repo}
}

// @Summary Health check
// @Description Reports service and store status
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	if _, err := c.Repo.LoadModules(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Module store unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"store": "up",
		},
	})
}
