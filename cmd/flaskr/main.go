package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flaskr/internal/auth"
	"flaskr/internal/config"
	"flaskr/internal/database"
	"flaskr/internal/web"
)

func main() {
	var (
		addr = flag.String("addr", ":8080", "The address to listen on.")
		dsn  = flag.String("dsn", "flaskr.db", "The database connection string.")
	)
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO  ", log.Ldate|log.Ltime|log.Lmsgprefix)
	errorLog := log.New(os.Stderr, "ERROR ", log.Ldate|log.Ltime|log.Lshortfile|log.Lmsgprefix)

	cfg := config.Load(*addr, *dsn)

	db, err := database.New(cfg.DSN)
	if err != nil {
		errorLog.Fatal(err)
	}
	defer db.Close()

	if len(flag.Args()) > 0 && flag.Arg(0) == "init-db" {
		if err := database.Init(db); err != nil {
			errorLog.Fatal(err)
		}
		fmt.Println("Initialized the database.")
		return
	}

	if err := database.Migrate(db); err != nil {
		errorLog.Fatal(err)
	}

	if err := auth.InitSessionStore(cfg.SessionKey); err != nil {
		errorLog.Fatal(err)
	}

	authService, err := auth.NewService(cfg.Username, cfg.Password)
	if err != nil {
		errorLog.Fatal(err)
	}

	templates, err := web.ParseTemplates()
	if err != nil {
		errorLog.Fatal(err)
	}

	server := web.NewServer(db, authService, templates)

	srv := &http.Server{
		Addr:         cfg.Addr,
		ErrorLog:     errorLog,
		Handler:      server,
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		s := <-sigint

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		infoLog.Println("shutting down:", s)
		if err := srv.Shutdown(ctx); err != nil {
			errorLog.Printf("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	infoLog.Printf("flaskr listening on %s\n", cfg.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		errorLog.Fatalf("HTTP server ListenAndServe: %v", err)
	}

	<-idleConnsClosed
}
