package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/meetnearme/stripe-checkout/functions/gateway/config"
	"github.com/meetnearme/stripe-checkout/functions/gateway/handlers"
	"github.com/meetnearme/stripe-checkout/functions/gateway/services"
)

func main() {
	cfg := config.FromEnv()
	checkoutService, initErr := services.InitStripe(cfg)
	lambda.Start(handlers.NewCheckoutHandler(cfg, checkoutService, initErr).Handle)
}
