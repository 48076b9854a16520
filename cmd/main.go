package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"best-readers-backend/configs"
	"best-readers-backend/internal/daemon"
	"best-readers-backend/internal/db"
	"best-readers-backend/internal/handlers"
	"best-readers-backend/internal/middleware"
	"best-readers-backend/internal/models"
	"best-readers-backend/internal/utils"
)

func main() {
	cfg := configs.LoadConfig()
	db.Connect(cfg.MongoURI)

	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "BestReaders catalog service is running")
	}).Methods("GET")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "OK")
	}).Methods("GET")

	api := r.PathPrefix("/").Subrouter()
	api.Use(middleware.JSONMiddleware)

	auditCol := db.GetCollection(cfg.DBName, "audit_logs")
	auditLogger := utils.Logger{Collection: auditCol}

	bookHandler := handlers.NewBookHandler(db.GetCollection(cfg.DBName, "books"), auditLogger)

	api.HandleFunc("/all-books", bookHandler.GetAllBooks).Methods("GET")
	api.HandleFunc("/recent-books", bookHandler.GetRecentBooks).Methods("GET")
	api.HandleFunc("/matched-books/{email}", bookHandler.GetMatchedBooks).Methods("GET")
	api.HandleFunc("/singleBook/{id}", bookHandler.GetSingleBook).Methods("GET")
	api.HandleFunc("/add-book", bookHandler.AddBook).Methods("POST")
	api.HandleFunc("/update-book/{id}", bookHandler.UpdateBook).Methods("PATCH")
	api.HandleFunc("/delete-book/{id}", bookHandler.DeleteBook).Methods("DELETE")

	commentHandler := handlers.NewCommentHandler(db.GetCollection(cfg.DBName, "comments"), auditLogger)

	api.HandleFunc("/create-comment", commentHandler.CreateComment).Methods("POST")
	api.HandleFunc("/comments/{id}", commentHandler.GetComments).Methods("GET")

	v := validator.New()
	for _, kind := range models.AllStatusKinds {
		statusHandler := handlers.NewStatusHandler(db.GetCollection(cfg.DBName, string(kind)), kind, v, auditLogger)
		api.HandleFunc("/"+string(kind), statusHandler.MarkStatus).Methods("PATCH")
		api.HandleFunc("/"+string(kind)+"/{email}", statusHandler.GetMarks).Methods("GET")
	}

	statsHandler := handlers.StatsHandler{
		BookCol:     db.GetCollection(cfg.DBName, "books"),
		CommentCol:  db.GetCollection(cfg.DBName, "comments"),
		WishlistCol: db.GetCollection(cfg.DBName, string(models.StatusWishlist)),
		ReadingCol:  db.GetCollection(cfg.DBName, string(models.StatusReading)),
		FinishedCol: db.GetCollection(cfg.DBName, string(models.StatusFinished)),
	}
	api.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	daemonCtx, stopDaemon := context.WithCancel(context.Background())
	exporter := daemon.LogExporter{Coll: auditCol}
	exporter.Start(daemonCtx)

	// CORS wraps the whole router so preflights for method-restricted
	// routes are answered too.
	var server = http.Server{
		Addr:    ":" + cfg.Port,
		Handler: middleware.CORS(r),
	}

	go func() {
		log.Println("Server starting on port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	log.Println("Shutting down gracefully...")
	stopDaemon()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}
	if err := db.Disconnect(ctx); err != nil {
		log.Printf("Mongo disconnect failed: %v", err)
	}
	log.Println("Server shut down.")
}
