package services

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"cobrodigital/config"
)

// EmailService предоставляет методы для отправки email.
// Если SMTP-хост не настроен, отправка молча пропускается.
type EmailService struct {
	dialer  *gomail.Dialer
	from    string
	adminTo string
}

// NewEmailService создает новый экземпляр EmailService
func NewEmailService(cfg *config.Config) *EmailService {
	s := &EmailService{
		from:    cfg.SMTP.From,
		adminTo: cfg.Admin.Email,
	}

	if cfg.SMTP.Host != "" {
		s.dialer = gomail.NewDialer(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Username,
			cfg.SMTP.Password,
		)
	}

	return s
}

// Enabled возвращает true, если отправка писем настроена
func (s *EmailService) Enabled() bool {
	return s.dialer != nil && s.adminTo != ""
}

// SendEmail отправляет email
func (s *EmailService) SendEmail(to, subject, body string) error {
	if s.dialer == nil {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("error al enviar email: %v", err)
	}

	return nil
}

// SendDeudaSaldadaNotification уведомляет администратора о том,
// что клиент полностью погасил задолженность
func (s *EmailService) SendDeudaSaldadaNotification(clienteNombre string, clienteID uint) error {
	if !s.Enabled() {
		return nil
	}

	subject := "Deuda saldada"
	body := fmt.Sprintf(`
		<h2>Deuda saldada</h2>
		<p>El cliente %s (#%d) ha pagado la totalidad de su deuda.</p>
		<p>Fecha: %s</p>
	`, clienteNombre, clienteID, time.Now().Format("02/01/2006 15:04:05"))

	return s.SendEmail(s.adminTo, subject, body)
}
