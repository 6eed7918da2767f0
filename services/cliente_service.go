package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"cobrodigital/models"
	"cobrodigital/utils"
)

// ClienteDTO представляет данные клиента для создания и для назначения
// новой задолженности (nueva deuda). В поле cobrador_id передается
// username кобрадора, а не числовой ID — так устроен контракт с фронтендом.
type ClienteDTO struct {
	Nombre        string  `json:"nombre" validate:"required"`
	Barrio        string  `json:"barrio" validate:"required"`
	Direccion     string  `json:"direccion" validate:"required"`
	Telefono      string  `json:"telefono"`
	Saldo         float64 `json:"saldo"`
	Interes       float64 `json:"interes"`
	Frecuencia    string  `json:"frecuencia"`
	CuotaSugerida float64 `json:"cuota_sugerida"`
	CobradorID    string  `json:"cobrador_id" validate:"required"`
}

// ClienteResponse представляет клиента в ответах API
type ClienteResponse struct {
	ID            uint      `json:"id"`
	Nombre        string    `json:"nombre"`
	Barrio        string    `json:"barrio"`
	Direccion     string    `json:"direccion"`
	Telefono      string    `json:"telefono"`
	Saldo         float64   `json:"saldo"`
	Interes       float64   `json:"interes"`
	Frecuencia    string    `json:"frecuencia"`
	CuotaSugerida float64   `json:"cuota_sugerida"`
	CobradorID    uint      `json:"cobrador_id"`
	Activo        bool      `json:"activo"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

// ClienteService предоставляет методы для работы с клиентами
type ClienteService struct {
	db        *gorm.DB
	validator *validator.Validate
}

// NewClienteService создает новый экземпляр ClienteService
func NewClienteService(db *gorm.DB) *ClienteService {
	return &ClienteService{
		db:        db,
		validator: validator.New(),
	}
}

// validate валидирует DTO и возвращает читаемое сообщение об ошибке
func (s *ClienteService) validate(dto interface{}) error {
	if err := s.validator.Struct(dto); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			if e.Tag() == "required" {
				errorMessages = append(errorMessages, "el campo "+e.Field()+" es obligatorio")
			}
		}
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errorMessages, "; "))
	}
	return nil
}

func toClienteResponse(c models.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Barrio:        c.Barrio,
		Direccion:     c.Direccion,
		Telefono:      c.Telefono,
		Saldo:         c.Saldo,
		Interes:       c.Interes,
		Frecuencia:    c.Frecuencia,
		CuotaSugerida: c.CuotaSugerida,
		CobradorID:    c.CobradorID,
		Activo:        c.Activo,
		FechaRegistro: c.FechaRegistro,
	}
}

// List возвращает клиентов, опционально отфильтрованных по username кобрадора.
// Если username передан, но такого пользователя нет, фильтр молча
// игнорируется и возвращается полный список.
func (s *ClienteService) List(cobradorUsername string) ([]ClienteResponse, error) {
	query := s.db.Model(&models.Cliente{})

	if cobradorUsername != "" {
		var user models.User
		err := s.db.Where("username = ?", cobradorUsername).First(&user).Error
		if err == nil {
			query = query.Where("cobrador_id = ?", user.ID)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var clientes []models.Cliente
	if err := query.Find(&clientes).Error; err != nil {
		return nil, err
	}

	responses := make([]ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		responses = append(responses, toClienteResponse(c))
	}

	return responses, nil
}

// Create регистрирует нового клиента под указанным кобрадором.
// Клиент всегда создается активным, значение начального сальдо не проверяется.
func (s *ClienteService) Create(dto ClienteDTO) error {
	if err := s.validate(dto); err != nil {
		return err
	}

	// Разрешаем username кобрадора в числовой ID
	var cobrador models.User
	if err := s.db.Where("username = ?", dto.CobradorID).First(&cobrador).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	frecuencia := dto.Frecuencia
	if frecuencia == "" {
		frecuencia = models.FrecuenciaDiario
	}

	cliente := &models.Cliente{
		Nombre:        dto.Nombre,
		Barrio:        dto.Barrio,
		Direccion:     dto.Direccion,
		Telefono:      dto.Telefono,
		Saldo:         dto.Saldo,
		Interes:       dto.Interes,
		Frecuencia:    frecuencia,
		CuotaSugerida: dto.CuotaSugerida,
		Activo:        true,
		FechaRegistro: time.Now().UTC(),
		CobradorID:    cobrador.ID,
	}

	if err := s.db.Create(cliente).Error; err != nil {
		return err
	}

	utils.GetMetrics().RecordOperation("cliente_creado")
	return nil
}

// AssignNuevaDeuda полностью перезаписывает условия задолженности клиента
// и безусловно реактивирует его. Это сброс условий, а не приращение долга.
// Возвращает новое сальдо.
func (s *ClienteService) AssignNuevaDeuda(clienteID uint, dto ClienteDTO) (float64, error) {
	if err := s.validate(dto); err != nil {
		return 0, err
	}

	var cliente models.Cliente
	if err := s.db.First(&cliente, clienteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	cliente.Saldo = dto.Saldo
	cliente.Interes = dto.Interes
	cliente.CuotaSugerida = dto.CuotaSugerida
	cliente.Frecuencia = dto.Frecuencia
	cliente.Direccion = dto.Direccion
	cliente.Telefono = dto.Telefono
	cliente.Activo = true

	if err := s.db.Save(&cliente).Error; err != nil {
		return 0, err
	}

	utils.GetMetrics().RecordOperation("nueva_deuda_asignada")
	return cliente.Saldo, nil
}
