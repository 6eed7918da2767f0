package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cobrodigital/services"
)

// ClienteController обрабатывает запросы, связанные с клиентами
type ClienteController struct {
	clienteService *services.ClienteService
}

// NewClienteController создает новый экземпляр ClienteController
func NewClienteController(db *gorm.DB) *ClienteController {
	return &ClienteController{
		clienteService: services.NewClienteService(db),
	}
}

// List обрабатывает запрос на получение списка клиентов.
// Параметр cobrador_id содержит username кобрадора и опционален.
func (c *ClienteController) List(ctx *gin.Context) {
	cobradorUsername := ctx.Query("cobrador_id")

	clientes, err := c.clienteService.List(cobradorUsername)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, clientes)
}

// Create обрабатывает запрос на регистрацию клиента
func (c *ClienteController) Create(ctx *gin.Context) {
	var dto services.ClienteDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la petición inválido"})
		return
	}

	if err := c.clienteService.Create(dto); err != nil {
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

	ctx.JSON(http.StatusOK, gin.H{"message": "Cliente registrado con éxito"})
}

// NuevaDeuda обрабатывает запрос на назначение новой задолженности
func (c *ClienteController) NuevaDeuda(ctx *gin.Context) {
	clienteID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "ID de cliente inválido"})
		return
	}

	var dto services.ClienteDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la petición inválido"})
		return
	}

	nuevoSaldo, err := c.clienteService.AssignNuevaDeuda(uint(clienteID), dto)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"detail": "Cliente no encontrado"})
		case errors.Is(err, services.ErrValidation):
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Nueva deuda asignada",
		"nuevo_saldo": nuevoSaldo,
	})
}

// RegisterRoutes регистрирует маршруты контроллера
func (c *ClienteController) RegisterRoutes(router *gin.Engine) {
	router.GET("/clientes", c.List)
	router.POST("/clientes", c.Create)
	router.PUT("/clientes/:id/nueva-deuda", c.NuevaDeuda)
}
