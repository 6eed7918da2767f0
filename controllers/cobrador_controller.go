package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cobrodigital/services"
)

// CobradorController обрабатывает запросы, связанные с кобрадорами
type CobradorController struct {
	userService *services.UserService
}

// NewCobradorController создает новый экземпляр CobradorController
func NewCobradorController(db *gorm.DB) *CobradorController {
	return &CobradorController{
		userService: services.NewUserService(db),
	}
}

// List обрабатывает запрос на получение списка кобрадоров
func (c *CobradorController) List(ctx *gin.Context) {
	cobradores, err := c.userService.ListCobradores()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, cobradores)
}

// Create обрабатывает запрос на создание кобрадора
func (c *CobradorController) Create(ctx *gin.Context) {
	var dto services.CreateCobradorDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la petición inválido"})
		return
	}

	if err := c.userService.CreateCobrador(dto); err != nil {
		switch {
		case errors.Is(err, services.ErrConflict):
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": "El nombre de usuario ya existe"})
		case errors.Is(err, services.ErrValidation):
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Cobrador creado con éxito"})
}

// UpdateProfile обрабатывает запрос на обновление профиля кобрадора
func (c *CobradorController) UpdateProfile(ctx *gin.Context) {
	username := ctx.Param("username")

	var dto services.UpdateProfileDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la petición inválido"})
		return
	}

	user, err := c.userService.UpdateProfile(username, dto)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"detail": "Cobrador no encontrado"})
		case errors.Is(err, services.ErrValidation):
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Perfil actualizado",
		"nombre":  user.Nombre,
	})
}

// RegisterRoutes регистрирует маршруты контроллера
func (c *CobradorController) RegisterRoutes(router *gin.Engine) {
	router.GET("/cobradores", c.List)
	router.POST("/cobradores", c.Create)
	router.PUT("/cobradores/:username", c.UpdateProfile)
}
