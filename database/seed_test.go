package database

import (
	"path/filepath"
	"testing"

	"cobrodigital/config"
	"cobrodigital/models"
	"cobrodigital/utils"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg, err := config.NewConfig()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	// Каждый тест получает собственный файл SQLite
	cfg.Database.URL = ""
	cfg.Database.SQLitePath = filepath.Join(t.TempDir(), "test.db")
	return cfg
}

func TestConnectSQLiteFallback(t *testing.T) {
	cfg := newTestConfig(t)

	db, err := Connect(cfg)
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	// Таблицы созданы автоматической миграцией
	for _, table := range []string{"users", "clientes", "pagos"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %s not created", table)
		}
	}
}

func TestSeedAdminIdempotent(t *testing.T) {
	cfg := newTestConfig(t)

	db, err := Connect(cfg)
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	// Повторный запуск не должен создавать второго администратора
	for i := 0; i < 3; i++ {
		if err := SeedAdmin(db, cfg); err != nil {
			t.Fatalf("SeedAdmin run %d failed: %v", i+1, err)
		}
	}

	var admins []models.User
	if err := db.Where("username = ?", cfg.Admin.Username).Find(&admins).Error; err != nil {
		t.Fatalf("failed to query admins: %v", err)
	}
	if len(admins) != 1 {
		t.Fatalf("wrong admin count: got %d want 1", len(admins))
	}

	admin := admins[0]
	if admin.Role != models.RoleAdmin {
		t.Errorf("wrong role: got %q", admin.Role)
	}
	if admin.Nombre != "Administrador Principal" || admin.Zona != "General" {
		t.Errorf("wrong seed profile: nombre=%q zona=%q", admin.Nombre, admin.Zona)
	}
	if !utils.CheckPassword(cfg.Admin.Password, admin.HashedPassword) {
		t.Error("seeded password does not verify")
	}
}

func TestSeedAdminKeepsExistingUser(t *testing.T) {
	cfg := newTestConfig(t)

	db, err := Connect(cfg)
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	if err := SeedAdmin(db, cfg); err != nil {
		t.Fatalf("SeedAdmin failed: %v", err)
	}

	// Меняем профиль администратора и проверяем, что сид его не перетирает
	if err := db.Model(&models.User{}).
		Where("username = ?", cfg.Admin.Username).
		Update("zona", "Occidente").Error; err != nil {
		t.Fatalf("failed to update admin: %v", err)
	}

	if err := SeedAdmin(db, cfg); err != nil {
		t.Fatalf("second SeedAdmin failed: %v", err)
	}

	var admin models.User
	db.Where("username = ?", cfg.Admin.Username).First(&admin)
	if admin.Zona != "Occidente" {
		t.Errorf("seed overwrote existing admin: zona=%q", admin.Zona)
	}
}
