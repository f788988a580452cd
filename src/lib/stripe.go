package lib

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/stripe/stripe-go/v82"
)

var stripeClient *stripe.Client

func GetStripeClient() *stripe.Client {
	if stripeClient != nil {
		return stripeClient
	}
	apiKey := os.Getenv("STRIPE_SECRET_KEY")
	sc := stripe.NewClient(apiKey)
	stripeClient = sc

	return sc
}

func NewStripeClient(c *stripe.Client) {
	stripeClient = c
}

// AmountInCents converts a currency total to the gateway's integer minor
// units. Rounded, not truncated: the float product of a two-decimal total
// can land just below the integer.
func AmountInCents(total float64) int64 {
	return int64(math.Round(total * 100))
}

// CreateBookingCheckout opens a checkout session for a booking, using the
// booking reference as the order reference. Amount is in the smallest
// currency unit.
func CreateBookingCheckout(reference string, description string, amount int64) (*string, *string, error) {
	sc := GetStripeClient()
	appHost := os.Getenv("APP_HOST")
	params := stripe.CheckoutSessionCreateParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(reference),
		SuccessURL:        stripe.String(fmt.Sprintf("%s/booking/%s/confirmed", appHost, reference)),
		CancelURL:         stripe.String(fmt.Sprintf("%s/booking/%s/payment", appHost, reference)),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency:   stripe.String("usd"),
					UnitAmount: stripe.Int64(amount),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
				},
			},
		},
	}
	session, err := sc.V1CheckoutSessions.Create(context.Background(), &params)
	if err != nil {
		return nil, nil, err
	}
	return &session.ID, &session.URL, nil
}
