package main

import (
	"context"
	"encoding/base64"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/redfive410/dinnercaster3-aws/internal/config"
	"github.com/redfive410/dinnercaster3-aws/internal/handlers"
	"github.com/redfive410/dinnercaster3-aws/pkg/lambda"
	"github.com/redfive410/dinnercaster3-aws/pkg/server"
)

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	config.ConfigureLogging(cfg)

	if err := server.GetConnectionManager().Initialize(cfg); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := server.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error": "Internal server error", "details": "service container unavailable"}`,
		}, nil
	}

	// Convert API Gateway event to generic request
	req := &lambda.Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        bodyFromEvent(event),
	}

	mcpHandler := handlers.NewMCPHandler(container.Dispatcher)
	resp := mcpHandler.HandleInvoke(ctx, req)

	logrus.WithFields(logrus.Fields{
		"method":      event.HTTPMethod,
		"path":        event.Path,
		"status_code": resp.StatusCode,
	}).Info("Invocation completed")

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}, nil
}

// bodyFromEvent maps the API Gateway payload onto the body variants. An empty
// body is absent; base64-encoded payloads become the binary variant so the
// shim runs UTF-8 validation on them. A payload flagged base64 that does not
// decode is passed through as raw bytes and rejected by body validation.
func bodyFromEvent(event events.APIGatewayProxyRequest) lambda.Body {
	if event.Body == "" {
		return lambda.NoBody()
	}

	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return lambda.BinaryBody([]byte(event.Body))
		}
		return lambda.BinaryBody(decoded)
	}

	return lambda.TextBody(event.Body)
}

func main() {
	awslambda.Start(handler)
}
