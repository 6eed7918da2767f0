package models

import (
	"time"
)

// FrecuenciaDiario и FrecuenciaSemanal — типовые значения периодичности
// платежей. Поле хранится как свободный текст, другие значения допустимы.
const (
	FrecuenciaDiario  = "Diario"
	FrecuenciaSemanal = "Semanal"
)

// Cliente представляет клиента (должника), закрепленного за кобрадором
type Cliente struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Nombre    string `gorm:"column:nombre;not null;size:100"`
	Barrio    string `gorm:"column:barrio;size:100"`
	Direccion string `gorm:"column:direccion;size:255"`
	Telefono  string `gorm:"column:telefono;size:20"`

	// Финансовые поля
	Saldo   float64 `gorm:"column:saldo;default:0.0"`
	Interes float64 `gorm:"column:interes;default:0.0"`

	// Условия погашения
	Frecuencia    string  `gorm:"column:frecuencia;size:20;default:'Diario'"`
	CuotaSugerida float64 `gorm:"column:cuota_sugerida;default:0.0"`

	Activo        bool      `gorm:"column:activo;default:true"`
	FechaRegistro time.Time `gorm:"column:fecha_registro;default:CURRENT_TIMESTAMP"`

	// Связь с кобрадором
	CobradorID uint `gorm:"column:cobrador_id;not null;index"`
	Cobrador   User `gorm:"foreignKey:CobradorID;references:ID"`

	// Связь с платежами: удаление клиента каскадно удаляет его платежи
	Pagos []Pago `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE"`
}

// TableName возвращает имя таблицы для модели Cliente
func (Cliente) TableName() string {
	return "clientes"
}
