package handlers

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/redfive410/dinnercaster3-aws/pkg/lambda"
)

// Dispatcher routes a validated protocol request to a registered tool and
// produces a transport response. Implemented externally by the MCP server;
// the shim treats it as opaque.
type Dispatcher interface {
	Handle(ctx context.Context, payload []byte) (*lambda.Response, error)
}

// MCPHandler validates the inbound event body and delegates to the Dispatcher.
// Every failure becomes a structured response: validation problems map to 400,
// anything raised during dispatch maps to 500. Nothing propagates to the host
// runtime.
type MCPHandler struct {
	dispatcher Dispatcher
}

// NewMCPHandler creates a handler bound to the given dispatcher
func NewMCPHandler(dispatcher Dispatcher) *MCPHandler {
	return &MCPHandler{dispatcher: dispatcher}
}

// HandleInvoke processes one invocation end to end
func (h *MCPHandler) HandleInvoke(ctx context.Context, req *lambda.Request) *lambda.Response {
	body, verr := ValidateBody(req.Body)
	if verr != nil {
		logrus.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.Path,
			"error":  verr.Message,
		}).Warn("Request body rejected")

		return badRequestResponse(verr)
	}

	// Dispatch sees the decoded body when the transport delivered bytes
	req.Body = body

	resp := h.dispatch(ctx, req)

	if resp.StatusCode >= 500 {
		logrus.WithFields(logrus.Fields{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
		}).Error("Dispatch failed")
	}

	return resp
}

// dispatch delegates to the dispatcher inside a fault boundary. Errors and
// panics both surface as 500 responses with the failure text in details.
func (h *MCPHandler) dispatch(ctx context.Context, req *lambda.Request) (resp *lambda.Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = internalErrorResponse(fmt.Sprintf("%v", r))
		}
	}()

	var payload []byte
	switch req.Body.Kind() {
	case lambda.BodyText:
		payload = []byte(req.Body.Text())
	case lambda.BodyBinary:
		payload = req.Body.Raw()
	}

	out, err := h.dispatcher.Handle(ctx, payload)
	if err != nil {
		return internalErrorResponse(err.Error())
	}

	return out
}
