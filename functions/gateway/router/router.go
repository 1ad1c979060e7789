package router

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/meetnearme/stripe-checkout/functions/gateway/config"
	"github.com/meetnearme/stripe-checkout/functions/gateway/handlers"
	"github.com/meetnearme/stripe-checkout/functions/gateway/helpers"
	"github.com/meetnearme/stripe-checkout/functions/gateway/interfaces"
	"github.com/meetnearme/stripe-checkout/functions/gateway/transport"
)

// Route leaves method checks to the handler, so a wrong method gets the
// handler's JSON 405 rather than mux's plain-text one.
type Route struct {
	Path    string
	Handler transport.HandlerFunc
}

type App struct {
	Router *mux.Router
}

func Routes(cfg *config.Config, checkoutService interfaces.CheckoutServiceInterface, initErr error) []Route {
	return []Route{
		{helpers.CHECKOUT_SESSION_PATH, handlers.NewCheckoutHandler(cfg, checkoutService, initErr).Handle},
		{helpers.STRIPE_PK_PATH, handlers.NewPublishableKeyHandler(cfg).Handle},
	}
}

func NewApp(routes []Route) *App {
	app := &App{
		Router: mux.NewRouter(),
	}
	app.SetupRoutes(routes)
	app.SetupNotFoundHandler()
	return app
}

func (app *App) SetupRoutes(routes []Route) {
	for _, route := range routes {
		app.Router.HandleFunc(route.Path, transport.LambdaHandler(route.Handler)).Name(route.Path)
	}
}

func (app *App) SetupNotFoundHandler() {
	app.Router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Println("Not found", r.RequestURI)
		transport.WriteResponse(w, transport.JSONResponse(http.StatusNotFound, transport.ErrorBody{
			Error: http.StatusText(http.StatusNotFound),
		}, ""))
	})
}
