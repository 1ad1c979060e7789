package helpers

type AWSReqKey string

const ApiGwV2ReqKey AWSReqKey = "ApiGwV2Req"

const (
	CHECKOUT_SESSION_PATH = "/api/create-checkout-session"
	STRIPE_PK_PATH        = "/api/get-stripe-pk"
)

// Environment variable names. Only config.Load reads these.
const (
	STRIPE_SECRET_KEY_ENV      = "STRIPE_SECRET_KEY"
	STRIPE_PUBLISHABLE_KEY_ENV = "STRIPE_PUBLISHABLE_KEY"
	SITE_URL_ENV               = "SITE_URL"
	URL_ENV                    = "URL"
	FRONTEND_URL_ENV           = "FRONTEND_URL"
	BASEURL_ENV                = "BASEURL"
)

const ANY_ORIGIN = "*"
const ORIGIN_HEADER = "origin"

const CHECKOUT_SUCCESS_QUERY = "/?success=true"
const CHECKOUT_CANCEL_QUERY = "/?canceled=true"
