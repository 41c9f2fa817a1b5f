package mailer

import (
	"fmt"
	"os"
	"rrs/src/lib"
)

// NewMailerMessage queues the message on the emails topic when a broker
// is configured, otherwise delivers it over SMTP directly.
func NewMailerMessage(input *lib.SendMailInput) error {
	if lib.KafkaEnabled() {
		emailQueue := os.Getenv("EMAIL_QUEUE")
		if emailQueue == "" {
			emailQueue = "emails"
		}
		emailBody := map[string]any{
			"from":      input.From,
			"from_name": input.FromName,
			"to":        input.To,
			"body":      input.Body,
			"html":      input.Html,
			"subject":   input.Subject,
		}
		if err := lib.KafkaProduceMessage("rrsMailer", emailQueue, emailBody); err != nil {
			return fmt.Errorf("error sending message to queue: %s", err.Error())
		}
		return nil
	}
	return lib.SendMail(input)
}
