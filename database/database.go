package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cobrodigital/config"
	"cobrodigital/models"
)

// Connect устанавливает соединение с базой данных и выполняет миграции.
// С DATABASE_URL подключается PostgreSQL, без него — локальный файл SQLite.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	// Настраиваем логгер
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	var db *gorm.DB
	var err error

	if cfg.Database.URL != "" {
		// Устанавливаем соединение с PostgreSQL
		db, err = gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{
			Logger: gormLogger,
		})
		if err != nil {
			return nil, fmt.Errorf("error de conexión a la base de datos: %v", err)
		}

		// Настраиваем пул соединений
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("error al obtener el pool de conexiones: %v", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetConnMaxLifetime(time.Hour)

		// Выполняем SQL миграции
		if err := runMigrations(cfg); err != nil {
			return nil, fmt.Errorf("error al ejecutar las migraciones SQL: %v", err)
		}
	} else {
		// Встроенное файловое хранилище
		db, err = gorm.Open(sqlite.Open(cfg.Database.SQLitePath), &gorm.Config{
			Logger: gormLogger,
		})
		if err != nil {
			return nil, fmt.Errorf("error de conexión a la base de datos: %v", err)
		}
	}

	// Выполняем автоматическую миграцию моделей
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("error en la migración automática de modelos: %v", err)
	}

	return db, nil
}

// runMigrations выполняет SQL миграции (только для PostgreSQL)
func runMigrations(cfg *config.Config) error {
	m, err := migrate.New("file://migrations", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("error al crear la migración: %v", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("error al aplicar las migraciones: %v", err)
	}

	return nil
}

// autoMigrate выполняет автоматическую миграцию моделей
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Cliente{},
		&models.Pago{},
	)
	if err != nil {
		return fmt.Errorf("error en la migración automática: %v", err)
	}

	return nil
}
