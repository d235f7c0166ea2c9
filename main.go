package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/lukeharding/bandstand/config"
	"github.com/lukeharding/bandstand/database"
	"github.com/lukeharding/bandstand/handlers"
	"github.com/lukeharding/bandstand/repository"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	db, err := database.InitGormDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	if err := database.AutoMigrateModels(db); err != nil {
		log.Fatalf("FATAL: Failed to migrate database schema: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("FATAL: Failed to get underlying sql.DB: %v", err)
	}
	defer sqlDB.Close()

	log.Printf("Using database: %s", cfg.DatabasePath)

	r := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)

	venueHandler := &handlers.VenueHandler{Repo: repository.NewGormVenueRepository(db), SQL: sqlDB}
	artistHandler := &handlers.ArtistHandler{Repo: repository.NewGormArtistRepository(db)}
	showHandler := &handlers.ShowHandler{Repo: repository.NewGormShowRepository(db), SQL: sqlDB}

	r.Get("/", handlers.Home)

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", venueHandler.ListVenues)
		r.Post("/search", venueHandler.SearchVenues)
		r.Get("/create", venueHandler.CreateVenueForm)
		r.Post("/create", venueHandler.CreateVenue)
		r.Route("/{venue_id}", func(r chi.Router) {
			r.Get("/", venueHandler.GetVenue)
			r.Delete("/", venueHandler.DeleteVenue)
			r.Get("/edit", venueHandler.EditVenueForm)
			r.Post("/edit", venueHandler.UpdateVenue)
		})
	})

	r.Route("/artists", func(r chi.Router) {
		r.Get("/", artistHandler.ListArtists)
		r.Post("/search", artistHandler.SearchArtists)
		r.Get("/create", artistHandler.CreateArtistForm)
		r.Post("/create", artistHandler.CreateArtist)
		r.Route("/{artist_id}", func(r chi.Router) {
			r.Get("/", artistHandler.GetArtist)
			r.Get("/edit", artistHandler.EditArtistForm)
			r.Post("/edit", artistHandler.UpdateArtist)
		})
	})

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", showHandler.ListShows)
		r.Get("/create", showHandler.CreateShowForm)
		r.Post("/create", showHandler.CreateShow)
	})

	r.NotFound(handlers.NotFound)

	serverAddr := ":" + cfg.Port
	log.Printf("Server listening on %s", serverAddr)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
