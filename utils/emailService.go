package utils

import (
	"fmt"
	"lingo/config"
	"net/smtp"
	"strings"
)

// SendEmail sends an HTML email through the configured SMTP account
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Lingo <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// getEmailTemplate wraps body content in the shared HTML layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<html>
	<body style="margin:0;padding:0;background:#f4f6f8;font-family:Arial,sans-serif;">
		<table width="100%%" cellpadding="0" cellspacing="0">
			<tr><td align="center" style="padding:24px;">
				<table width="560" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:8px;overflow:hidden;">
					<tr><td style="background:#2b6cb0;color:#ffffff;padding:16px 24px;font-size:20px;font-weight:bold;">%s</td></tr>
					<tr><td style="padding:24px;color:#2d3748;font-size:14px;line-height:1.6;">%s</td></tr>
					<tr><td style="padding:16px 24px;color:#a0aec0;font-size:12px;border-top:1px solid #edf2f7;">Lingo — practice a little every day.</td></tr>
				</table>
			</td></tr>
		</table>
	</body>
	</html>`, title, bodyContent)
}

// SendWelcomeEmail greets a newly registered learner
func SendWelcomeEmail(to, name string) error {
	body := fmt.Sprintf(`<p>Hi %s,</p>
		<p>Welcome to Lingo! Your account is ready. Pick a topic from the section tree and start practicing.</p>`, name)
	return SendEmail([]string{to}, "Welcome to Lingo", getEmailTemplate("Welcome!", body))
}

// SendOTPEmail delivers an email verification code
func SendOTPEmail(to, name, code string) error {
	body := fmt.Sprintf(`<p>Hi %s,</p>
		<p>Your verification code is:</p>
		<p style="font-size:24px;font-weight:bold;letter-spacing:4px;">%s</p>
		<p>The code expires in 10 minutes.</p>`, name, code)
	return SendEmail([]string{to}, "Your Lingo verification code", getEmailTemplate("Verify your email", body))
}
