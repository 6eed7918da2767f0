package models

import (
	"errors"

	"gorm.io/gorm"
)

// Role представляет роль пользователя
type Role string

const (
	RoleAdmin    Role = "admin"    // Администратор
	RoleCobrador Role = "cobrador" // Кобрадор (сборщик платежей)
)

// User представляет пользователя системы: администратора или кобрадора
type User struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	Username       string    `gorm:"column:username;unique;not null;size:50;index"`
	HashedPassword string    `gorm:"column:hashed_password;not null;size:255"`
	Role           Role      `gorm:"column:role;type:varchar(20);default:'cobrador'"`
	Nombre         string    `gorm:"column:nombre;size:100"`
	Zona           string    `gorm:"column:zona;size:50"`
	Clientes       []Cliente `gorm:"foreignKey:CobradorID"`
}

// TableName возвращает имя таблицы для модели User
func (User) TableName() string {
	return "users"
}

// BeforeCreate хук для валидации перед созданием
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Username == "" {
		return errors.New("username is required")
	}
	if len(u.Username) > 50 {
		return errors.New("username must be at most 50 characters")
	}
	return nil
}
