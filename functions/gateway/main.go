package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/gorillamux"

	"github.com/meetnearme/stripe-checkout/functions/gateway/config"
	"github.com/meetnearme/stripe-checkout/functions/gateway/helpers"
	"github.com/meetnearme/stripe-checkout/functions/gateway/router"
	"github.com/meetnearme/stripe-checkout/functions/gateway/services"
)

// Serves both checkout routes from one Lambda behind an HTTP API.
func main() {
	cfg := config.FromEnv()
	checkoutService, initErr := services.InitStripe(cfg)

	app := router.NewApp(router.Routes(cfg, checkoutService, initErr))
	adapter := gorillamux.NewV2(app.Router)

	lambda.Start(func(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		ctx = context.WithValue(ctx, helpers.ApiGwV2ReqKey, request)
		return adapter.ProxyWithContext(ctx, request)
	})
}
