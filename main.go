package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cobrodigital/config"
	"cobrodigital/controllers"
	"cobrodigital/database"
	"cobrodigital/middleware"
	"cobrodigital/services"
)

// setupRouter создает роутер и регистрирует все маршруты
func setupRouter(cfg *config.Config, db *gorm.DB, emailService *services.EmailService) *gin.Engine {
	router := gin.New()

	// Подключаем middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RateLimit())

	// Инициализируем контроллеры
	homeController := controllers.NewHomeController(cfg)
	authController := controllers.NewAuthController(db)
	cobradorController := controllers.NewCobradorController(db)
	clienteController := controllers.NewClienteController(db)
	pagoController := controllers.NewPagoController(db, emailService)

	// Регистрируем маршруты
	homeController.RegisterRoutes(router)
	authController.RegisterRoutes(router)
	cobradorController.RegisterRoutes(router)
	clienteController.RegisterRoutes(router)
	pagoController.RegisterRoutes(router)

	return router
}

func main() {
	// Инициализируем конфигурацию
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Error al cargar la configuración: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Инициализируем подключение к базе данных
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Error de conexión a la base de datos: %v", err)
	}

	// Гарантируем наличие администратора до приема трафика
	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("Error al crear el usuario admin: %v", err)
	}

	// Инициализируем сервис email
	emailService := services.NewEmailService(cfg)

	// Создаем роутер
	router := setupRouter(cfg, db, emailService)

	// Запускаем сервер
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Servidor iniciado en el puerto %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
