package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"soundthread/internal/config"
	"soundthread/internal/utils"
)

// Mailer delivers account emails.
type Mailer interface {
	SendVerification(address, token string) error
}

var verificationTemplate = template.Must(template.New("verify").Parse(
	`<p>Welcome to SoundThread!</p>
<p>Confirm your email address by opening the link below:</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
<p>If you did not sign up, ignore this message.</p>`))

type MailService struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	SiteURL  string
	Enabled  bool
}

func NewMailService(cfg *config.Config) *MailService {
	enabled := cfg.SMTPHost != "" && cfg.SMTPPort != "" && cfg.SMTPUser != "" && cfg.SMTPPass != "" && cfg.SMTPFrom != ""
	if !enabled {
		utils.LogInfo("MailService disabled: missing SMTP settings, verification links will be logged")
	}

	return &MailService{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPFrom,
		SiteURL:  strings.TrimRight(cfg.SiteURL, "/"),
		Enabled:  enabled,
	}
}

func (s *MailService) verificationLink(token string) string {
	return fmt.Sprintf("%s/verify/%s", s.SiteURL, token)
}

func (s *MailService) SendVerification(address, token string) error {
	link := s.verificationLink(token)
	if !s.Enabled {
		utils.LogInfo(fmt.Sprintf("verification link for %s: %s", address, link))
		return nil
	}

	var body bytes.Buffer
	if err := verificationTemplate.Execute(&body, map[string]string{"Link": link}); err != nil {
		return fmt.Errorf("render verification email: %w", err)
	}
	return s.send([]string{address}, "Verify your SoundThread account", body.String())
}

func (s *MailService) send(to []string, subject, body string) error {
	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
	addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: SoundThread <%s>\r\n"+
		"Subject: %s\r\n"+
		"%s\r\n%s", strings.Join(to, ","), s.From, subject, mime, body))

	if err := smtp.SendMail(addr, auth, s.From, to, msg); err != nil {
		return fmt.Errorf("send mail to %v: %w", to, err)
	}
	utils.LogSuccess(fmt.Sprintf("email sent to %v: %s", to, subject))
	return nil
}
