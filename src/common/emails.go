package common

import (
	"encoding/json"
	"log"
	"os"

	"rrs/src/lib"
)

// EmailsConsumer drains the email queue topic and delivers each message
// over SMTP. Runs until the process exits.
func EmailsConsumer() {
	topic := os.Getenv("EMAIL_QUEUE")
	if topic == "" {
		topic = "emails"
	}
	lib.KafkaConsumer("rrsMailer", []string{topic}, func(value []byte) {
		var payload struct {
			From     string   `json:"from"`
			FromName string   `json:"from_name"`
			To       []string `json:"to"`
			Subject  string   `json:"subject"`
			Body     string   `json:"body"`
			Html     bool     `json:"html"`
		}
		if err := json.Unmarshal(value, &payload); err != nil {
			log.Printf("error decoding email payload: %s\n", err.Error())
			return
		}
		if err := lib.SendMail(&lib.SendMailInput{
			From:     payload.From,
			FromName: payload.FromName,
			To:       payload.To,
			Subject:  payload.Subject,
			Body:     payload.Body,
			Html:     payload.Html,
		}); err != nil {
			log.Printf("error sending email: %s\n", err.Error())
		}
	})
}
