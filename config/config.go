package config

import (
	"github.com/spf13/viper"
)

// Config представляет конфигурацию приложения
type Config struct {
	Server struct {
		Port int
	}
	Database struct {
		URL        string // URL PostgreSQL; если пусто — локальный файл SQLite
		SQLitePath string
	}
	Admin struct {
		Username string
		Password string
		Email    string
	}
	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
		From     string
	}
	Environment string
}

// NewConfig создает новый экземпляр конфигурации
func NewConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	// Настройки сервера
	v.SetDefault("SERVER_PORT", 8080)

	// Настройки базы данных: без DATABASE_URL используем встроенный SQLite
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SQLITE_PATH", "cobro.db")

	// Учетная запись администратора, создаваемая при старте
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
	v.SetDefault("ADMIN_EMAIL", "")

	// Настройки SMTP (пустой хост отключает отправку писем)
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "")

	v.SetDefault("ENVIRONMENT", "local")

	cfg := &Config{}
	cfg.Server.Port = v.GetInt("SERVER_PORT")
	cfg.Database.URL = v.GetString("DATABASE_URL")
	cfg.Database.SQLitePath = v.GetString("SQLITE_PATH")
	cfg.Admin.Username = v.GetString("ADMIN_USERNAME")
	cfg.Admin.Password = v.GetString("ADMIN_PASSWORD")
	cfg.Admin.Email = v.GetString("ADMIN_EMAIL")
	cfg.SMTP.Host = v.GetString("SMTP_HOST")
	cfg.SMTP.Port = v.GetInt("SMTP_PORT")
	cfg.SMTP.Username = v.GetString("SMTP_USERNAME")
	cfg.SMTP.Password = v.GetString("SMTP_PASSWORD")
	cfg.SMTP.From = v.GetString("SMTP_FROM")
	cfg.Environment = v.GetString("ENVIRONMENT")

	return cfg, nil
}

// IsProduction возвращает true, если сервис запущен в production-окружении
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
