package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/go-area-edit/pkg/di"
)

func main() {
	server, cleanup, err := di.InitializeEditorService()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	server.Log.Info("shutting down")

	if err := server.Wait(); err != nil {
		log.Fatal(err)
	}
}
