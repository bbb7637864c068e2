package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/moto-inventory/internal/auth"
	"github.com/ukydev/moto-inventory/internal/db"
	"github.com/ukydev/moto-inventory/internal/handlers"
	"github.com/ukydev/moto-inventory/internal/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment as-is")
	}

	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "dealership"
	}
	database := client.Database(dbName)

	bikes := &db.MongoCollection{Collection: database.Collection("bikes")}
	parts := &db.MongoCollection{Collection: database.Collection("parts")}
	services := &db.MongoCollection{Collection: database.Collection("services")}
	transports := &db.MongoCollection{Collection: database.Collection("transports")}
	users := &db.MongoUserCollection{Collection: database.Collection("users")}

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("failed to create auth service")
	}

	authHandler := handlers.NewAuthHandler(authService, users)
	bikeHandler := handlers.NewBikeHandler(bikes, parts, services, transports)
	ledgerHandler := handlers.NewLedgerHandler(bikes, parts, services, transports)
	reportHandler := handlers.NewReportHandler(bikes, parts, services, transports)
	authMw := middleware.NewAuthMiddleware(authService)
	limiter := middleware.NewRateLimiter()

	// scoped chains the permission check and the company partition check
	// in front of a company-scoped route.
	scoped := func(permission string, h http.HandlerFunc) http.Handler {
		return authMw.RequirePermission(permission)(middleware.CompanyScope(h))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Credential endpoints are reachable without a token; cap attempts
	// per client to slow down password guessing.
	mux.Handle("POST /api/auth/login", limiter.Limit(10, 60)(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /api/auth/register", limiter.Limit(10, 60)(http.HandlerFunc(authHandler.Register)))
	mux.HandleFunc("GET /api/auth/profile", authHandler.GetProfile)
	mux.HandleFunc("POST /api/auth/password", authHandler.ChangePassword)

	mux.Handle("GET /api/companies/{company}/bikes", scoped("view_bikes", bikeHandler.List))
	mux.Handle("POST /api/companies/{company}/bikes", scoped("manage_bikes", bikeHandler.Create))
	mux.Handle("GET /api/companies/{company}/bikes/{id}", scoped("view_bikes", bikeHandler.Get))
	mux.Handle("PUT /api/companies/{company}/bikes/{id}", scoped("manage_bikes", bikeHandler.Update))
	mux.Handle("DELETE /api/companies/{company}/bikes/{id}", scoped("manage_bikes", bikeHandler.Delete))
	mux.Handle("PUT /api/companies/{company}/bikes/{id}/stage", scoped("update_stage", bikeHandler.UpdateStage))
	mux.Handle("GET /api/companies/{company}/bikes/{id}/snapshot", scoped("view_bikes", bikeHandler.Snapshot))

	mux.Handle("GET /api/companies/{company}/bikes/{id}/{kind}", scoped("view_bikes", ledgerHandler.List))
	mux.Handle("POST /api/companies/{company}/bikes/{id}/{kind}", scoped("manage_costs", ledgerHandler.Create))
	mux.Handle("PUT /api/companies/{company}/bikes/{id}/{kind}/{entry}", scoped("manage_costs", ledgerHandler.Update))
	mux.Handle("DELETE /api/companies/{company}/bikes/{id}/{kind}/{entry}", scoped("manage_costs", ledgerHandler.Delete))

	mux.Handle("GET /api/companies/{company}/reports/portfolio", scoped("view_reports", reportHandler.Portfolio))
	mux.Handle("GET /api/companies/{company}/reports/monthly", scoped("view_reports", reportHandler.Monthly))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithFields(log.Fields{"port": port, "db": dbName}).Info("dealership inventory API listening")
	log.Fatal(http.ListenAndServe(":"+port, authMw.Authenticate(mux)))
}
