package services

import (
	"fmt"
	"net/smtp"
	"os"
	"strconv"
)

type IMailService interface {
	SendPasswordReset(email, token string) error
	SendBookingConfirmed(email, facility, eventDate string) error
}

// SMTPConfig holds the SMTP + branding config.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // e.g. 587
	Username string
	Password string
	From     string // envelope from, e.g. "no-reply@venu.app"
	FromName string

	AppName    string
	AppBaseURL string
}

func SMTPConfigFromEnv() SMTPConfig {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   os.Getenv("SMTP_FROM_NAME"),
		AppName:    "Venu",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}
}

type smtpMailService struct {
	cfg SMTPConfig
}

func NewSMTPMailService(cfg SMTPConfig) IMailService {
	return &smtpMailService{cfg: cfg}
}

func (s *smtpMailService) SendPasswordReset(email, token string) error {
	subject := fmt.Sprintf("%s password reset", s.cfg.AppName)
	body := fmt.Sprintf(
		"A password reset was requested for this address.\r\n\r\n"+
			"Reset link: %s/reset-password?token=%s\r\n\r\n"+
			"The link is valid for 15 minutes and can be used once.",
		s.cfg.AppBaseURL, token)
	return s.send(email, subject, body)
}

func (s *smtpMailService) SendBookingConfirmed(email, facility, eventDate string) error {
	subject := fmt.Sprintf("%s booking confirmed", s.cfg.AppName)
	body := fmt.Sprintf(
		"Your booking for %s on %s has been confirmed.\r\n\r\n"+
			"See the details at %s/bookings.",
		facility, eventDate, s.cfg.AppBaseURL)
	return s.send(email, subject, body)
}

func (s *smtpMailService) send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.cfg.FromName, s.cfg.From, to, subject, body)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg))
}
