package utils

import (
	"bytes"
	"html/template"
	"log"
	"strconv"

	"waitify/config"

	"gopkg.in/gomail.v2"
)

// NotificationEmailData feeds templates/notification_email.html.
type NotificationEmailData struct {
	Subject      string
	Title        string
	Message      string
	BusinessName string
	ActionLink   string
}

// SendNotificationEmail delivers a templated notification mail without
// blocking the caller.
func SendNotificationEmail(to string, data NotificationEmailData) {
	go func() {
		tmpl, err := template.ParseFiles("templates/notification_email.html")
		if err != nil {
			log.Printf("email template load failed: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("email template render failed: %v", err)
			return
		}

		host := config.Config("SMTP_HOST")
		port, _ := strconv.Atoi(config.ConfigOr("SMTP_PORT", "587"))
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.ConfigOr("SMTP_FROM", "no-reply@waitify.app")

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", data.Subject)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("email send to %s failed: %v", to, err)
		}
	}()
}
