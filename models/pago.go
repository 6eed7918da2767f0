package models

import (
	"time"
)

// Pago представляет платеж, уменьшающий баланс клиента.
// SaldoAnterior — неизменяемый снимок баланса на момент регистрации платежа.
type Pago struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	Monto         float64   `gorm:"column:monto;not null"`
	Fecha         time.Time `gorm:"column:fecha"`
	SaldoAnterior float64   `gorm:"column:saldo_anterior"`
	Comentario    string    `gorm:"column:comentario;size:255"`
	ClienteID     uint      `gorm:"column:cliente_id;not null;index"`
}

// TableName возвращает имя таблицы для модели Pago
func (Pago) TableName() string {
	return "pagos"
}
