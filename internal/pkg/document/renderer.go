// Package document renders registration confirmation documents. The output
// is a self-contained HTML page suitable for printing or mailing as an
// attachment.
package document

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/rs/zerolog"
	"github.com/sorawit/coursereg/internal/app/models"
)

const confirmationTemplate = `<!DOCTYPE html>
<html lang="th">
<head>
<meta charset="UTF-8">
<title>เอกสารยืนยันการลงทะเบียน</title>
<style>
	body { font-family: 'Sarabun', Arial, sans-serif; max-width: 700px; margin: 0 auto; color: #222; }
	h1 { font-size: 20px; border-bottom: 2px solid #1a56db; padding-bottom: 8px; }
	table { width: 100%; border-collapse: collapse; margin-top: 16px; }
	td { padding: 6px 10px; border: 1px solid #ddd; }
	td.label { width: 35%; background: #f4f6fb; font-weight: bold; }
	.footer { margin-top: 32px; font-size: 12px; color: #777; }
</style>
</head>
<body>
	<h1>เอกสารยืนยันการลงทะเบียน</h1>
	<table>
		<tr><td class="label">รหัสการลงทะเบียน</td><td>{{.Registration.RegistrationID}}</td></tr>
		<tr><td class="label">ชื่อ-นามสกุล</td><td>{{.Registration.FirstName}} {{.Registration.LastName}}</td></tr>
		<tr><td class="label">อีเมล</td><td>{{.Registration.Email}}</td></tr>
		<tr><td class="label">หลักสูตร</td><td>{{.Course.CourseName}}</td></tr>
		<tr><td class="label">รุ่นที่</td><td>{{.Course.CourseGen}}</td></tr>
		<tr><td class="label">ระยะเวลาอบรม</td><td>{{.Course.StartDate}} ถึง {{.Course.EndDate}}</td></tr>
		<tr><td class="label">สถานที่</td><td>{{.Course.Location}}</td></tr>
		<tr><td class="label">วันที่ลงทะเบียน</td><td>{{.Registration.RegistrationDate}}</td></tr>
		<tr><td class="label">สถานะ</td><td>{{.Registration.Status}}</td></tr>
	</table>
	<p class="footer">เอกสารฉบับนี้ออกโดยระบบลงทะเบียนหลักสูตรโดยอัตโนมัติ</p>
</body>
</html>`

// Renderer produces confirmation documents from a parsed template.
type Renderer struct {
	tmpl   *template.Template
	logger zerolog.Logger
}

// NewRenderer parses the embedded confirmation template.
func NewRenderer(logger zerolog.Logger) (*Renderer, error) {
	tmpl, err := template.New("confirmation").Parse(confirmationTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse confirmation template: %w", err)
	}
	return &Renderer{tmpl: tmpl, logger: logger}, nil
}

// RenderConfirmation fills the confirmation template for one registration.
func (r *Renderer) RenderConfirmation(reg *models.Registration, course *models.Course) ([]byte, error) {
	if reg == nil || course == nil {
		return nil, fmt.Errorf("registration and course are required")
	}

	data := struct {
		Registration *models.Registration
		Course       *models.Course
	}{reg, course}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		r.logger.Error().Err(err).Str("registrationId", reg.RegistrationID).Msg("Failed to render confirmation document")
		return nil, fmt.Errorf("failed to render confirmation document: %w", err)
	}
	return buf.Bytes(), nil
}
