package database

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"cobrodigital/config"
	"cobrodigital/models"
	"cobrodigital/utils"
)

// SeedAdmin гарантирует наличие учетной записи администратора.
// Идемпотентно: безопасно выполняется при каждом старте сервиса,
// вставка происходит только если пользователя с таким username нет.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var existing models.User
	err := db.Where("username = ?", cfg.Admin.Username).First(&existing).Error
	if err == nil {
		log.Println("El usuario admin ya existe")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:       cfg.Admin.Username,
		HashedPassword: hash,
		Role:           models.RoleAdmin,
		Nombre:         "Administrador Principal",
		Zona:           "General",
	}

	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Usuario admin creado: %s", admin.Username)
	return nil
}
