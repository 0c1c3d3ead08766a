package email

import (
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/sorawit/coursereg/internal/app/models"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendConfirmation(toEmail string, reg *models.Registration, course *models.Course, doc []byte) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendConfirmation mails the registration confirmation with the rendered
// document attached. Without SMTP credentials it logs the delivery instead,
// so development environments behave as if the mail went out.
func (s *EmailServiceImpl) SendConfirmation(toEmail string, reg *models.Registration, course *models.Course, doc []byte) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("registrationId", reg.RegistrationID).
			Str("courseId", reg.CourseID).
			Msg("SMTP credentials not configured - confirmation email not sent.")
		return nil
	}

	subject := fmt.Sprintf("ยืนยันการลงทะเบียน %s", course.CourseName)

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">ยืนยันการลงทะเบียนเรียบร้อยแล้ว</h2>
				<p>เรียน คุณ%s %s</p>
				<p>การลงทะเบียนหลักสูตร <strong>%s</strong> ของท่านเสร็จสมบูรณ์</p>

				<ul>
					<li>รหัสการลงทะเบียน: <strong>%s</strong></li>
					<li>วันที่ลงทะเบียน: %s</li>
				</ul>

				<p>เอกสารยืนยันการลงทะเบียนแนบมาพร้อมอีเมลฉบับนี้</p>

				<p>ขอแสดงความนับถือ<br>งานทะเบียนหลักสูตร</p>
			</div>
		</body>
		</html>
	`, reg.FirstName, reg.LastName, course.CourseName, reg.RegistrationID, reg.RegistrationDate)

	attachmentName := fmt.Sprintf("confirmation-%s.html", reg.RegistrationID)
	return s.sendWithAttachment(toEmail, subject, body, attachmentName, doc)
}

// sendWithAttachment sends a multipart email carrying an HTML body and one
// file attachment.
func (s *EmailServiceImpl) sendWithAttachment(toEmail, subject, htmlBody, attachmentName string, attachment []byte) error {
	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	const boundary = "coursereg-mixed-boundary"

	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	headers["To"] = toEmail
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = fmt.Sprintf("multipart/mixed; boundary=%q", boundary)

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n"

	message += fmt.Sprintf("--%s\r\n", boundary)
	message += "Content-Type: text/html; charset=UTF-8\r\n\r\n"
	message += htmlBody + "\r\n"

	if len(attachment) > 0 {
		message += fmt.Sprintf("--%s\r\n", boundary)
		message += "Content-Type: text/html; charset=UTF-8\r\n"
		message += "Content-Transfer-Encoding: base64\r\n"
		message += fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n\r\n", attachmentName)
		message += base64.StdEncoding.EncodeToString(attachment) + "\r\n"
	}
	message += fmt.Sprintf("--%s--\r\n", boundary)

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if s.config.UseTLS {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
			ServerName:         s.config.Host,
		}

		conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
		if err != nil {
			s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
			return fmt.Errorf("failed to connect to SMTP server: %w", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, s.config.Host)
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to create SMTP client")
			return fmt.Errorf("failed to create SMTP client: %w", err)
		}
		defer client.Quit()

		if err = client.Auth(auth); err != nil {
			s.logger.Error().Err(err).Msg("SMTP authentication failed")
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}

		if err = client.Mail(s.config.FromEmail); err != nil {
			return fmt.Errorf("failed to set sender: %w", err)
		}
		if err = client.Rcpt(toEmail); err != nil {
			return fmt.Errorf("failed to set recipient: %w", err)
		}

		w, err := client.Data()
		if err != nil {
			return fmt.Errorf("failed to get data writer: %w", err)
		}
		_, err = w.Write([]byte(message))
		if err != nil {
			return fmt.Errorf("failed to write email message: %w", err)
		}
		err = w.Close()
		if err != nil {
			return fmt.Errorf("failed to close data writer: %w", err)
		}

		return nil
	}

	err := smtp.SendMail(
		serverAddress,
		auth,
		s.config.FromEmail,
		[]string{toEmail},
		[]byte(message),
	)
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
