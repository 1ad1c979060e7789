package transport

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/meetnearme/stripe-checkout/functions/gateway/helpers"
)

const allowedMethods = "POST,OPTIONS"
const allowedHeaders = "Content-Type"

func corsHeaders(origin string) map[string]string {
	if origin == "" {
		origin = helpers.ANY_ORIGIN
	}
	return map[string]string{
		"Access-Control-Allow-Origin":  origin,
		"Access-Control-Allow-Methods": allowedMethods,
		"Access-Control-Allow-Headers": allowedHeaders,
	}
}

// JSONResponse serializes payload as the body and always sets the CORS
// headers. An empty origin means "*".
func JSONResponse(status int, payload interface{}, origin string) Response {
	headers := corsHeaders(origin)
	headers["Content-Type"] = "application/json"

	body, err := json.Marshal(payload)
	if err != nil {
		log.Println("ERR: failed to marshal response payload:", err)
		status = http.StatusInternalServerError
		body = []byte(`{"error":"Internal Server Error"}`)
	}

	return Response{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}
}

// PreflightResponse answers an OPTIONS probe: 204, CORS headers, no body.
func PreflightResponse(origin string) Response {
	return Response{
		StatusCode: http.StatusNoContent,
		Headers:    corsHeaders(origin),
		Body:       "",
	}
}
