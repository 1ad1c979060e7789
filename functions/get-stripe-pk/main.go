package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/meetnearme/stripe-checkout/functions/gateway/config"
	"github.com/meetnearme/stripe-checkout/functions/gateway/handlers"
)

func main() {
	lambda.Start(handlers.NewPublishableKeyHandler(config.FromEnv()).Handle)
}
