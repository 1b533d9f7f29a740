package main

import (
	"log"
	"net/http"
	"time"
)

func (app *application) serve() error {
	server := &http.Server{
		Addr:         app.Config.GetServerAddr(),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second, // question generation can take a while
	}

	log.Printf("Starting server on %s", server.Addr)

	return server.ListenAndServe()
}
