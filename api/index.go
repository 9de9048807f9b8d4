package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"friendship-offers/config"
	"friendship-offers/internal/app/bootstrap"
	routes "friendship-offers/internal/app/http"
	"friendship-offers/internal/logger"
)

var (
	once    sync.Once
	engine  http.Handler
	initErr error
)

const misconfiguredBody = `{"success":false,"message":"Server misconfigured"}`

// Handler is the Vercel entrypoint. vercel.json rewrites every /api/*
// path here; the gin engine does the routing.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() { engine, initErr = newHandler() })
	if initErr != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(misconfiguredBody))
		return
	}
	engine.ServeHTTP(w, r)
}

// newHandler fails only when the environment can't be parsed or the
// bundled data is broken. Missing mail credentials leave the routes up
// with a sender that always fails.
func newHandler() (http.Handler, error) {
	cfg, err := config.Parse()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	// Functions are short-lived; the cleanup has nothing to run before
	// the instance is frozen.
	deps, _, err := bootstrap.Build(cfg, log)
	if err != nil {
		log.Error("startup failed", zap.Error(err))
		return nil, err
	}
	return routes.NewEngine(deps), nil
}
