package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
)

var otpEmailTemplate = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #1f2937;">
    <h2>{{.Heading}}</h2>
    <p>{{.Intro}}</p>
    <p style="font-size: 28px; font-weight: bold; letter-spacing: 6px;">{{.Code}}</p>
    <p>This code expires in {{.Minutes}} minute{{if ne .Minutes 1}}s{{end}}.</p>
    <p>If you did not request this code, you can ignore this email.</p>
    <p>The {{.AppName}} Team</p>
  </body>
</html>
`))

type otpEmailData struct {
	AppName string
	Heading string
	Intro   string
	Code    string
	Minutes int
}

// renderOTPEmail returns the subject and HTML body for msg
func renderOTPEmail(appName string, msg OTPMessage) (string, string, error) {
	if appName == "" {
		appName = "Quickdesk"
	}
	data := otpEmailData{
		AppName: appName,
		Code:    msg.Code,
		Minutes: int(math.Ceil(msg.ExpiresIn.Minutes())),
	}

	var subject string
	switch msg.Purpose {
	case PurposePasswordReset:
		subject = fmt.Sprintf("Your %s password reset code", appName)
		data.Heading = "Reset your password"
		data.Intro = fmt.Sprintf("Use the code below to reset your %s password.", appName)
	default:
		subject = fmt.Sprintf("Your %s verification code", appName)
		data.Heading = "Verify your email"
		data.Intro = fmt.Sprintf("Use the code below to finish creating your %s organization.", appName)
	}

	var buf bytes.Buffer
	if err := otpEmailTemplate.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to render otp email: %w", err)
	}
	return subject, buf.String(), nil
}
