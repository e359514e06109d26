package server

import (
	"net/http"

	"github.com/switmer/Get-Site-Styles-API/internal/gateway/apikey"
	"github.com/switmer/Get-Site-Styles-API/internal/gateway/handler"
	"github.com/switmer/Get-Site-Styles-API/internal/gateway/middleware"
	"github.com/switmer/Get-Site-Styles-API/internal/gateway/usage"
)

func NewMux(
	analyzeHandler *handler.AnalyzeHandler,
	keys *apikey.Store,
	limiter *middleware.Limiter,
	usageLog *usage.Store,
) http.Handler {
	authed := http.NewServeMux()
	authed.HandleFunc("/v1/analyze", analyzeHandler.HandleAnalyze)
	authed.HandleFunc("/v1/analyze/multi", analyzeHandler.HandleAnalyzeMulti)
	authed.HandleFunc("/v1/analyze/watch", analyzeHandler.HandleWatch)

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/health", handler.HandleHealth)
	mux.Handle("/v1/", middleware.Auth(keys, limiter, usageLog, authed))

	return middleware.CORS(mux)
}
