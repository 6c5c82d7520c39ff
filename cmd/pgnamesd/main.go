// Command pgnamesd serves the pgnames codec over HTTP, backed by an
// in-memory or Redis-cached catalog.
package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"flag"

	"github.com/gorilla/mux"

	"github.com/starfield-tools/pgnames/internal/pgcatalog"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	redisAddr := flag.String("redis", "localhost:6379", "Redis address (host:port)")
	useInMemory := flag.Bool("memory", false, "Use in-memory catalog instead of Redis")
	flag.Parse()

	if envPort := os.Getenv("PGNAMES_PORT"); envPort != "" {
		if p, err := strconv.Atoi(envPort); err == nil {
			*port = p
		}
	}
	if envRedis := os.Getenv("PGNAMES_REDIS_ADDR"); envRedis != "" {
		*redisAddr = envRedis
	}
	if envMemory := os.Getenv("PGNAMES_USE_MEMORY"); envMemory != "" {
		*useInMemory = envMemory == "1" || envMemory == "true"
	}

	var catalog pgcatalog.Catalog
	if *useInMemory {
		log.Println("Using in-memory catalog")
		catalog = pgcatalog.NewMemoryCatalog()
	} else {
		log.Printf("Using Redis catalog at %s", *redisAddr)
		redisCatalog, err := pgcatalog.NewRedisCatalog(*redisAddr)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		catalog = redisCatalog
	}
	defer catalog.Close()

	router := mux.NewRouter()
	pgcatalog.NewHTTPHandler(catalog).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(*port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting pgnamesd on port %d", *port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down pgnamesd...")
	if err := srv.Close(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("pgnamesd stopped")
}
