package transport

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/meetnearme/stripe-checkout/functions/gateway/helpers"
)

// LambdaHandler serves a Lambda-shaped handler from a net/http router.
// Requests proxied by the gateway carry the original API Gateway event in
// their context, anything else (dev server, tests) gets one built from r.
func LambdaHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := RequestFromHTTP(r)
		if err != nil {
			WriteResponse(w, SendError(NewValidationError("Failed to read request body", err), ""))
			return
		}
		res, err := h(r.Context(), req)
		if err != nil {
			res = SendError(err, "")
		}
		WriteResponse(w, res)
	}
}

func RequestFromHTTP(r *http.Request) (Request, error) {
	if req, ok := r.Context().Value(helpers.ApiGwV2ReqKey).(Request); ok {
		return req, nil
	}

	var body []byte
	if r.Body != nil {
		var err error
		body, err = io.ReadAll(r.Body)
		if err != nil {
			return Request{}, err
		}
	}

	headers := make(map[string]string, len(r.Header))
	for k, v := range r.Header {
		headers[strings.ToLower(k)] = strings.Join(v, ",")
	}

	return Request{
		RouteKey:       fmt.Sprintf("%s %s", r.Method, r.URL.Path),
		RawPath:        r.URL.Path,
		RawQueryString: r.URL.RawQuery,
		Headers:        headers,
		Body:           string(body),
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			RequestID: uuid.NewString(),
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method:    r.Method,
				Path:      r.URL.Path,
				SourceIP:  r.RemoteAddr,
				UserAgent: r.UserAgent(),
			},
		},
	}, nil
}

// RequestBody returns the raw body, undoing API Gateway's base64 encoding
// of binary payloads.
func RequestBody(req Request) ([]byte, error) {
	if req.IsBase64Encoded {
		return base64.StdEncoding.DecodeString(req.Body)
	}
	return []byte(req.Body), nil
}

func WriteResponse(w http.ResponseWriter, res Response) {
	for k, v := range res.Headers {
		w.Header().Set(k, v)
	}
	for k, values := range res.MultiValueHeaders {
		for _, v := range values {
			w.Header().Add(k, v)
		}
	}

	body := []byte(res.Body)
	if res.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(res.Body)
		if err != nil {
			log.Println("ERR: failed to decode base64 response body:", err)
		} else {
			body = decoded
		}
	}

	status := res.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Println("ERR:Error writing response:", err)
	}
}
