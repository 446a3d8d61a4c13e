// Command authstub serves the mock auth service over HTTP, so a client
// configured with the http backend has an endpoint to talk to.
package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/dmitrijs2005/tafuta/internal/buildinfo"
	"github.com/dmitrijs2005/tafuta/internal/client/authapi"
	"github.com/dmitrijs2005/tafuta/internal/logging"
	"github.com/dmitrijs2005/tafuta/internal/server/httpapi"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	addr := flag.String("a", "127.0.0.1:8080", "address to listen on")
	flag.Parse()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	mock := authapi.NewMock(logger)
	router := httpapi.NewRouter(mock, logger)

	log.Printf("auth stub listening on %s", *addr)
	if err := http.ListenAndServe(*addr, router); err != nil {
		log.Fatalf("%v", err)
	}
}
