package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashishjh/contactbook/internal/auth"
	"github.com/ashishjh/contactbook/internal/config"
	"github.com/ashishjh/contactbook/internal/contacts"
	"github.com/ashishjh/contactbook/internal/database"
	contactsrepo "github.com/ashishjh/contactbook/internal/database/contacts"
	usersrepo "github.com/ashishjh/contactbook/internal/database/users"
	"github.com/ashishjh/contactbook/internal/graphql"
	http_controllers "github.com/ashishjh/contactbook/internal/http"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		log.Printf("GraphQL endpoint: http://%s:%d/graphql", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting ContactBook v%s", version)

	if cfg.Auth.JWTSecret == "" {
		log.Fatalf("JWT_SECRET is not set. Tokens cannot be issued without a signing secret.")
	}

	db, err := database.NewDatabase(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	issuer := auth.NewTokenIssuer([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenExpiry)

	authService := auth.NewService(usersrepo.NewRepository(db.DB), issuer, cfg.Auth.BcryptCost)
	contactService := contacts.NewService(contactsrepo.NewRepository(db.DB))

	schema, err := graphql.NewSchema(authService, contactService)
	if err != nil {
		log.Fatalf("Failed to build GraphQL schema: %v", err)
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Schema:   schema,
		Issuer:   issuer,
		Database: db,
		Version:  version,
		GraphiQL: true,
	})

	Serve(router, cfg)
}
