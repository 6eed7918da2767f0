package services

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cobrodigital/models"
)

// newTestDB создает изолированную тестовую базу SQLite
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Cliente{}, &models.Pago{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// mustCreateCobrador создает кобрадора и возвращает его модель
func mustCreateCobrador(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	svc := NewUserService(db)
	err := svc.CreateCobrador(CreateCobradorDTO{
		Username: username,
		Password: "pw12345",
		Nombre:   "Cobrador " + username,
		Zona:     "Norte",
	})
	if err != nil {
		t.Fatalf("failed to create cobrador %s: %v", username, err)
	}

	user, err := svc.FindByUsername(username)
	if err != nil {
		t.Fatalf("failed to find cobrador %s: %v", username, err)
	}
	return user
}

// mustCreateCliente создает клиента с указанным сальдо и возвращает его модель
func mustCreateCliente(t *testing.T, db *gorm.DB, cobradorUsername string, saldo float64) *models.Cliente {
	t.Helper()

	svc := NewClienteService(db)
	err := svc.Create(ClienteDTO{
		Nombre:     "Cliente de prueba",
		Barrio:     "Centro",
		Direccion:  "Calle 1 #2-3",
		Telefono:   "3000000000",
		Saldo:      saldo,
		Frecuencia: models.FrecuenciaDiario,
		CobradorID: cobradorUsername,
	})
	if err != nil {
		t.Fatalf("failed to create cliente: %v", err)
	}

	var cliente models.Cliente
	if err := db.Order("id DESC").First(&cliente).Error; err != nil {
		t.Fatalf("failed to load cliente: %v", err)
	}
	return &cliente
}
