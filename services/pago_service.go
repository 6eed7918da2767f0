package services

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"cobrodigital/models"
	"cobrodigital/utils"
)

// RegistrarPagoDTO представляет данные для регистрации платежа.
// Сумма намеренно не валидируется: отрицательные и нулевые значения,
// а также суммы больше текущего сальдо принимаются как есть.
type RegistrarPagoDTO struct {
	ClienteID  uint    `json:"cliente_id"`
	Monto      float64 `json:"monto"`
	Comentario string  `json:"comentario"`
}

// PagoResponse представляет платеж в ответах API
type PagoResponse struct {
	ID            uint      `json:"id"`
	Monto         float64   `json:"monto"`
	Comentario    string    `json:"comentario"`
	Fecha         time.Time `json:"fecha"`
	SaldoAnterior float64   `json:"saldo_anterior"`
	ClienteID     uint      `json:"cliente_id"`
}

// PagoService предоставляет методы для работы с платежами
type PagoService struct {
	db    *gorm.DB
	email *EmailService
}

// NewPagoService создает новый экземпляр PagoService
func NewPagoService(db *gorm.DB, email *EmailService) *PagoService {
	return &PagoService{
		db:    db,
		email: email,
	}
}

func toPagoResponse(p models.Pago) PagoResponse {
	return PagoResponse{
		ID:            p.ID,
		Monto:         p.Monto,
		Comentario:    p.Comentario,
		Fecha:         p.Fecha,
		SaldoAnterior: p.SaldoAnterior,
		ClienteID:     p.ClienteID,
	}
}

// Registrar регистрирует платеж и уменьшает сальдо клиента.
// Сальдо после платежа не опускается ниже нуля: при результате <= 0 оно
// фиксируется ровно в 0, а клиент деактивируется. Обновление сальдо и
// вставка платежа выполняются в одной транзакции.
func (s *PagoService) Registrar(dto RegistrarPagoDTO) (*PagoResponse, error) {
	// Начинаем транзакцию
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	// Ищем клиента
	var cliente models.Cliente
	if err := tx.First(&cliente, dto.ClienteID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Снимок сальдо до платежа
	saldoAnterior := cliente.Saldo
	cliente.Saldo -= dto.Monto

	// Сальдо <= 0 фиксируется в 0, клиент становится неактивным
	deudaSaldada := false
	if cliente.Saldo <= 0 {
		cliente.Saldo = 0
		cliente.Activo = false
		deudaSaldada = true
	}

	if err := tx.Save(&cliente).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// Создаем запись о платеже со снимком сальдо
	pago := &models.Pago{
		Monto:         dto.Monto,
		Fecha:         time.Now().UTC(),
		SaldoAnterior: saldoAnterior,
		Comentario:    dto.Comentario,
		ClienteID:     cliente.ID,
	}

	if err := tx.Create(pago).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// Подтверждаем транзакцию
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	utils.GetMetrics().RecordOperation("pago_registrado")

	// Уведомляем администратора о погашенной задолженности.
	// Ошибка отправки только логируется, на результат операции не влияет.
	if deudaSaldada && s.email != nil {
		if err := s.email.SendDeudaSaldadaNotification(cliente.Nombre, cliente.ID); err != nil {
			log.Printf("Error al enviar la notificación de deuda saldada: %v", err)
		}
	}

	response := toPagoResponse(*pago)
	return &response, nil
}

// List возвращает платежи клиента в порядке их хранения
func (s *PagoService) List(clienteID uint) ([]PagoResponse, error) {
	var pagos []models.Pago
	if err := s.db.Where("cliente_id = ?", clienteID).Find(&pagos).Error; err != nil {
		return nil, err
	}

	responses := make([]PagoResponse, 0, len(pagos))
	for _, p := range pagos {
		responses = append(responses, toPagoResponse(p))
	}

	return responses, nil
}

// Delete удаляет платеж и возвращает его сумму на текущее сальдо клиента.
// Восстановление идет поверх текущего сальдо, а не из снимка saldo_anterior.
// Неактивный клиент реактивируется безусловно, независимо от знака
// получившегося сальдо. Если клиента уже нет, платеж удаляется без
// восстановления сальдо.
func (s *PagoService) Delete(pagoID uint) error {
	// Начинаем транзакцию
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	// Ищем платеж
	var pago models.Pago
	if err := tx.First(&pago, pagoID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	// Восстанавливаем сальдо владельца, если он еще существует
	var cliente models.Cliente
	err := tx.First(&cliente, pago.ClienteID).Error
	switch {
	case err == nil:
		cliente.Saldo += pago.Monto
		if !cliente.Activo {
			cliente.Activo = true
		}
		if err := tx.Save(&cliente).Error; err != nil {
			tx.Rollback()
			return err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Клиент удален — платеж удаляется без восстановления
	default:
		tx.Rollback()
		return err
	}

	// Удаляем запись о платеже
	if err := tx.Delete(&pago).Error; err != nil {
		tx.Rollback()
		return err
	}

	// Подтверждаем транзакцию
	if err := tx.Commit().Error; err != nil {
		return err
	}

	utils.GetMetrics().RecordOperation("pago_eliminado")
	return nil
}
