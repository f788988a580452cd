package mailer

import (
	"fmt"
	"log"
	"os"

	"hbs/src/lib"
)

// Notify sends in the background. Booking creation and cancellation must
// never block or roll back on a failed email.
func Notify(to string, subject string, body string) {
	go func() {
		input := &lib.SendMailInput{
			From:     os.Getenv("MAIL_FROM"),
			FromName: os.Getenv("MAIL_FROM_NAME"),
			To:       []string{to},
			Subject:  subject,
			Body:     body,
		}
		if err := lib.SendMail(input); err != nil {
			log.Printf("Error sending mail to %s: %s\n", to, err.Error())
		}
	}()
}

func BookingConfirmation(to string, reference string, checkIn string, checkOut string, total float64) {
	subject := fmt.Sprintf("Booking %s confirmed", reference)
	body := fmt.Sprintf("Your stay from %s to %s is booked. Total due: %.2f USD. Reference: %s", checkIn, checkOut, total, reference)
	Notify(to, subject, body)
}

func BookingCancellation(to string, reference string, refundEligible bool) {
	subject := fmt.Sprintf("Booking %s cancelled", reference)
	body := fmt.Sprintf("Your booking %s has been cancelled.", reference)
	if refundEligible {
		body = fmt.Sprintf("%s A refund will be processed by our staff within 5 business days.", body)
	}
	Notify(to, subject, body)
}
