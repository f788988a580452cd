package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"

	"hbs/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

func stripeWebhookRoute(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	apiv1.POST("/webhook/stripe", func(ctx *gin.Context) {
		payload, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			log.Printf("Error reading request body: %s\n", err.Error())
			ctx.Status(http.StatusServiceUnavailable)
			return
		}
		whsecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
		event, err := webhook.ConstructEvent(payload, ctx.GetHeader("Stripe-Signature"), whsecret)
		if err != nil {
			log.Printf("Error verifying webhook signature: %s\n", err.Error())
			ctx.Status(http.StatusBadRequest)
			return
		}
		log.Printf("[StripeEvent] %s\n", event.Type)
		switch event.Type {
		case "checkout.session.completed":
			var cs stripe.CheckoutSession
			err := json.Unmarshal(event.Data.Raw, &cs)
			if err != nil {
				log.Printf("[Stripe] Error parsing CheckoutSession: %s\n", err.Error())
				break
			}
			log.Printf("[CheckoutSession] ID: %s %s\n", cs.ID, cs.Status)
			reference := cs.ClientReferenceID
			if reference == "" {
				log.Printf("[%s] No booking reference attached\n", cs.ID)
				break
			}
			booking, err := utils.MarkBookingPaid(reference)
			if err != nil {
				log.Printf("Error settling booking [%s]: %s\n", reference, err.Error())
				break
			}
			log.Printf("Booking [%s] confirmed after payment of %.2f\n", booking.Reference, booking.PaidAmount)
		case "checkout.session.expired":
			var cs stripe.CheckoutSession
			if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
				log.Printf("[Stripe] Error parsing CheckoutSession: %s\n", err.Error())
				break
			}
			log.Printf("[CheckoutSession] %s expired, booking [%s] stays pending\n", cs.ID, cs.ClientReferenceID)
		}
		ctx.Status(http.StatusOK)
	})
	return apiv1
}
