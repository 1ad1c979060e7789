package transport

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

// aliasing the types to keep lines short
type Request = events.APIGatewayV2HTTPRequest
type Response = events.APIGatewayV2HTTPResponse

// HandlerFunc is the shape every function in this repo exposes to lambda.Start.
type HandlerFunc func(context.Context, Request) (Response, error)
