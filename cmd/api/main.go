package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"pressengine/cmd/app"
	"pressengine/internal/config"
	handlers "pressengine/internal/handler"
	"pressengine/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	r := mux.NewRouter()

	// setting up routes
	r.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/users/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/users", handler.GetUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", handler.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/role", handler.UpdateUserRole).Methods(http.MethodPut)
	api.HandleFunc("/users/{userId}", handler.ApplyUserAction).Methods(http.MethodPut)

	api.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/pendientes", handler.GetPendingPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/escritor/{authorId}", handler.GetPostsByAuthor).Methods(http.MethodGet)
	api.HandleFunc("/posts/{postId}", handler.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{postId}", handler.ReviewPost).Methods(http.MethodPut)

	api.HandleFunc("/comments", handler.CreateComment).Methods(http.MethodPost)
	api.HandleFunc("/comments", handler.GetComments).Methods(http.MethodGet)
	api.HandleFunc("/comments/{commentId}", handler.DeleteComment).Methods(http.MethodDelete)

	api.HandleFunc("/advertisements", handler.CreateAdvertisement).Methods(http.MethodPost)
	api.HandleFunc("/advertisements", handler.GetAdvertisements).Methods(http.MethodGet)
	api.HandleFunc("/advertisements/{adId}", handler.UpdateAdvertisementStatus).Methods(http.MethodPut)
	api.HandleFunc("/advertisements/{adId}", handler.DeleteAdvertisement).Methods(http.MethodDelete)

	api.HandleFunc("/solicitudes", handler.CreateSolicitud).Methods(http.MethodPost)
	api.HandleFunc("/solicitudes", handler.GetSolicitudes).Methods(http.MethodGet)
	api.HandleFunc("/solicitudes/{solicitudId}", handler.UpdateSolicitudEstado).Methods(http.MethodPut)

	api.HandleFunc("/upload", handler.UploadImage).Methods(http.MethodPost)
	api.HandleFunc("/stats", handler.GetStats).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	server := &http.Server{
		Addr:    addr,
		Handler: handlerChain,
	}

	// Starting the server
	go func() {
		fmt.Printf("Сервер запущен на %s\n", addr)
		fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Ошибка запуска сервера: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Останавливаем сервер...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Ошибка при остановке сервера: %v", err)
	}

	log.Println("Сервер остановлен")
}
