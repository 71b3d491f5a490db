// Package main starts the coffee shop storefront server.
//
// The process owns the full stack: the product catalog, the cart and account
// services, the durable bbolt store, and the HTTP handler that renders the
// storefront pages.
package main

import (
	"context"
	"crypto/rand"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	accountdomain "github.com/sableroast/storefront/internal/account/domain"
	accountservice "github.com/sableroast/storefront/internal/account/service"
	"github.com/sableroast/storefront/internal/account/token"
	cartservice "github.com/sableroast/storefront/internal/cart/service"
	"github.com/sableroast/storefront/internal/catalog"
	"github.com/sableroast/storefront/internal/platform/config"
	platformotel "github.com/sableroast/storefront/internal/platform/otel"
	storagebbolt "github.com/sableroast/storefront/internal/storage/bbolt"
	"github.com/sableroast/storefront/internal/storage/memory"
	"github.com/sableroast/storefront/internal/web"
)

type appConfig struct {
	HTTPAddr          string `env:"STOREFRONT_HTTP_ADDR"          envDefault:"localhost:8080"`
	DataDir           string `env:"STOREFRONT_DATA_DIR"           envDefault:"data"`
	SessionKey        string `env:"STOREFRONT_SESSION_KEY"`
	BcryptCredentials bool   `env:"STOREFRONT_BCRYPT_CREDENTIALS"`
}

func main() {
	var cfg appConfig
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("parse config: %v", err)
	}

	log.SetPrefix("[STOREFRONT] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := platformotel.Setup(ctx, "storefront")
	if err != nil {
		config.Exitf("setup tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		config.Exitf("create data dir: %v", err)
	}
	store, err := storagebbolt.Open(filepath.Join(cfg.DataDir, "storefront.db"))
	if err != nil {
		config.Exitf("open storage: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close storage: %v", err)
		}
	}()

	cat := catalog.Default()

	cart := cartservice.NewCartService(cartservice.Stores{
		Cart:      store,
		SavedCart: store,
	}, cat)

	accounts := accountservice.NewAccountService(accountservice.Stores{
		Users:            store,
		DurableSession:   store,
		EphemeralSession: memory.New(),
	})
	if cfg.BcryptCredentials {
		accounts.WithVerifier(accountdomain.BcryptCredentials{})
	}
	if err := accounts.EnsureDemoAccount(ctx); err != nil {
		config.Exitf("seed demo account: %v", err)
	}

	tokens := token.Config{Key: sessionKey(cfg.SessionKey)}

	server, err := web.NewServer(web.Config{
		HTTPAddr: cfg.HTTPAddr,
		Handler:  web.NewHandler(cat, cart, accounts, tokens),
	})
	if err != nil {
		config.Exitf("init server: %v", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		config.Exitf("serve: %v", err)
	}
}

// sessionKey returns the configured signing key, or a random one. A random
// key means session cookies stop verifying after a restart.
func sessionKey(configured string) []byte {
	if configured != "" {
		return []byte(configured)
	}

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		config.Exitf("generate session key: %v", err)
	}
	log.Print("STOREFRONT_SESSION_KEY not set, using a random key; sessions reset on restart")
	return key
}
