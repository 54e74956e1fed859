// README: Entry point; loads config, wires services, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"voyago/internal/ai"
	"voyago/internal/config"
	httptransport "voyago/internal/http"
	"voyago/internal/infra"
	"voyago/internal/maps"
	"voyago/internal/modules/finder"
	"voyago/internal/modules/flight"
	"voyago/internal/modules/itinerary"
	"voyago/internal/modules/plan"
	"voyago/internal/modules/research"
	"voyago/internal/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	llm, err := ai.NewGeminiProvider(ctx, cfg.Keys.Gemini)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer llm.Close()

	searchClient := search.NewClient(cfg.Keys.SerpAPI)

	// Places grounding is optional; the finder degrades to web search alone.
	var placesSvc finder.PlacesDirectory
	if cfg.Keys.Maps != "" {
		svc, err := maps.NewPlacesService(cfg.Keys.Maps)
		if err != nil {
			log.Fatalf("places init: %v", err)
		}
		placesSvc = svc
	}

	flightStore := flight.NewStore(redisClient)
	flightSvc := flight.NewService(searchClient, flightStore, cfg.Plan.Currency, cfg.Plan.FlightLimit)

	researchSvc := research.NewService(llm, searchClient, cfg.Models.Research)
	finderSvc := finder.NewService(llm, searchClient, placesSvc, cfg.Models.Finder)
	itinerarySvc := itinerary.NewService(llm, cfg.Models.Planner)

	planStore := plan.NewStore(dbPool)
	planSvc := plan.NewService(flightSvc, researchSvc, finderSvc, itinerarySvc, planStore)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Plan:   planSvc,
		Flight: flightSvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("voyago listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
