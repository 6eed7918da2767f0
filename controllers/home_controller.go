package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cobrodigital/config"
	"cobrodigital/utils"
)

// HomeController обрабатывает служебные запросы (статус, метрики)
type HomeController struct {
	config *config.Config
}

// NewHomeController создает новый экземпляр HomeController
func NewHomeController(cfg *config.Config) *HomeController {
	return &HomeController{config: cfg}
}

// Home возвращает статус сервиса
func (c *HomeController) Home(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":      "online",
		"message":     "API de CobroDigital operativa",
		"environment": c.config.Environment,
	})
}

// Metrics возвращает снимок внутренних счетчиков
func (c *HomeController) Metrics(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, utils.GetMetrics().GetMetricsSnapshot())
}

// RegisterRoutes регистрирует маршруты контроллера
func (c *HomeController) RegisterRoutes(router *gin.Engine) {
	router.GET("/", c.Home)
	router.GET("/metrics", c.Metrics)
}
