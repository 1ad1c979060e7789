package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/meetnearme/stripe-checkout/functions/gateway/config"
	"github.com/meetnearme/stripe-checkout/functions/gateway/router"
	"github.com/meetnearme/stripe-checkout/functions/gateway/services"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	addr := flag.String("addr", ":8000", "address to listen on")
	flag.Parse()

	cfg := config.FromEnv()
	checkoutService, initErr := services.InitStripe(cfg)
	app := router.NewApp(router.Routes(cfg, checkoutService, initErr))

	server := &http.Server{
		Addr:              *addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Serving checkout functions on %s", *addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("FATAL: dev server stopped: %v", err)
	}
}
