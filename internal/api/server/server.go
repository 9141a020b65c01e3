package server

import (
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
)

// New wraps the router in an http.Server with sane timeouts. The long
// write timeout leaves room for a retry batch triggered over the API.
func New(addr string, router *ginext.Engine) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      2 * time.Minute,
	}
}
