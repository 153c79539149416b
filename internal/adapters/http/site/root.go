// Package site serves a local copy of the static data tree so the service
// can self-host the documents it aggregates.
package site

import (
	"context"
	"errors"
	"net/http"
)

// Error constants
var (
	ErrServe = errors.New("data site serve failed")
)

// Register mounts dir under /data/ on mux. Pointing the data base URL at the
// service's own address then makes it self-contained for local development.
func Register(_ context.Context, mux *http.ServeMux, dir string) {
	if mux == nil {
		panic("mux is nil")
	}

	files := http.FileServer(http.Dir(dir))
	mux.Handle("/data/", http.StripPrefix("/data/", files))
}
