package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cobrodigital/services"
)

// PagoController обрабатывает запросы, связанные с платежами
type PagoController struct {
	pagoService *services.PagoService
}

// NewPagoController создает новый экземпляр PagoController
func NewPagoController(db *gorm.DB, email *services.EmailService) *PagoController {
	return &PagoController{
		pagoService: services.NewPagoService(db, email),
	}
}

// Registrar обрабатывает запрос на регистрацию платежа
func (c *PagoController) Registrar(ctx *gin.Context) {
	var dto services.RegistrarPagoDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la petición inválido"})
		return
	}

	pago, err := c.pagoService.Registrar(dto)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"detail": "Cliente no encontrado"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, pago)
}

// List обрабатывает запрос на получение истории платежей клиента
func (c *PagoController) List(ctx *gin.Context) {
	clienteID, err := strconv.ParseUint(ctx.Param("cliente_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "ID de cliente inválido"})
		return
	}

	pagos, err := c.pagoService.List(uint(clienteID))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, pagos)
}

// Delete обрабатывает запрос на удаление (отмену) платежа
func (c *PagoController) Delete(ctx *gin.Context) {
	pagoID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "ID de pago inválido"})
		return
	}

	if err := c.pagoService.Delete(uint(pagoID)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"detail": "Pago no encontrado"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Pago eliminado. El saldo ha sido restaurado correctamente."})
}

// RegisterRoutes регистрирует маршруты контроллера
func (c *PagoController) RegisterRoutes(router *gin.Engine) {
	router.POST("/pagar", c.Registrar)
	router.GET("/pagos/:cliente_id", c.List)
	router.DELETE("/pagos/:id", c.Delete)
}
