package httpserver

import (
	_ "embed"
	"net/http"
)

//go:embed static/index.html
var indexPage []byte

func servePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexPage)
}
