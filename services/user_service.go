package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"cobrodigital/models"
	"cobrodigital/utils"
)

// UserService предоставляет методы для работы с пользователями (админ и кобрадоры)
type UserService struct {
	db        *gorm.DB
	validator *validator.Validate
}

// LoginResponse представляет ответ на успешную аутентификацию.
// В поле id возвращается username — так его ожидает фронтенд.
type LoginResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Role   string `json:"role"`
	Zona   string `json:"zona"`
}

// CobradorDTO представляет кобрадора в списках
type CobradorDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Nombre   string `json:"nombre"`
	Role     string `json:"role"`
	Zona     string `json:"zona"`
}

// CreateCobradorDTO представляет данные для создания кобрадора
type CreateCobradorDTO struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
	Nombre   string `json:"nombre" validate:"required"`
	Zona     string `json:"zona"`
}

// UpdateProfileDTO представляет данные для обновления профиля.
// Пустой пароль означает "не менять" — это не ошибка.
type UpdateProfileDTO struct {
	Nombre   string `json:"nombre" validate:"required"`
	Zona     string `json:"zona"`
	Password string `json:"password"`
}

// NewUserService создает новый экземпляр UserService
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		db:        db,
		validator: validator.New(),
	}
}

// validate валидирует DTO и возвращает читаемое сообщение об ошибке
func (s *UserService) validate(dto interface{}) error {
	if err := s.validator.Struct(dto); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				errorMessages = append(errorMessages, "el campo "+e.Field()+" es obligatorio")
			case "max":
				errorMessages = append(errorMessages, "el campo "+e.Field()+" supera los "+e.Param()+" caracteres")
			}
		}
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errorMessages, "; "))
	}
	return nil
}

// Authenticate проверяет учетные данные и возвращает профиль пользователя.
// Неизвестный username и неверный пароль дают одинаковую ошибку —
// вызывающая сторона не должна их различать.
func (s *UserService) Authenticate(username, password string) (*LoginResponse, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if !utils.CheckPassword(password, user.HashedPassword) {
		return nil, ErrUnauthorized
	}

	return &LoginResponse{
		ID:     user.Username,
		Nombre: user.Nombre,
		Role:   string(user.Role),
		Zona:   user.Zona,
	}, nil
}

// CreateCobrador создает нового кобрадора.
// Роль всегда фиксируется как cobrador, пароль хранится только как хеш.
func (s *UserService) CreateCobrador(dto CreateCobradorDTO) error {
	if err := s.validate(dto); err != nil {
		return err
	}

	// Проверяем уникальность username
	var existing models.User
	if err := s.db.Where("username = ?", dto.Username).First(&existing).Error; err == nil {
		return ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(dto.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		Username:       dto.Username,
		HashedPassword: hash,
		Role:           models.RoleCobrador,
		Nombre:         dto.Nombre,
		Zona:           dto.Zona,
	}

	if err := s.db.Create(user).Error; err != nil {
		return err
	}

	utils.GetMetrics().RecordOperation("cobrador_creado")
	return nil
}

// UpdateProfile обновляет профиль пользователя.
// Имя и зона перезаписываются всегда, пароль — только если передан.
func (s *UserService) UpdateProfile(username string, dto UpdateProfileDTO) (*models.User, error) {
	if err := s.validate(dto); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user.Nombre = dto.Nombre
	user.Zona = dto.Zona
	if dto.Password != "" {
		hash, err := utils.HashPassword(dto.Password)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = hash
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// ListCobradores возвращает всех пользователей с ролью cobrador
// в порядке первичного ключа
func (s *UserService) ListCobradores() ([]CobradorDTO, error) {
	var users []models.User
	if err := s.db.Where("role = ?", models.RoleCobrador).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	cobradores := make([]CobradorDTO, 0, len(users))
	for _, user := range users {
		cobradores = append(cobradores, CobradorDTO{
			ID:       user.ID,
			Username: user.Username,
			Nombre:   user.Nombre,
			Role:     string(user.Role),
			Zona:     user.Zona,
		})
	}

	return cobradores, nil
}

// FindByUsername ищет пользователя по username
func (s *UserService) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
