package restapi

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bio-registry/part-hub/config"
	"github.com/bio-registry/part-hub/logging"
	"github.com/bio-registry/part-hub/restapi/handlers"
)

// Server exposes the registry API. Identity arrives via the
// X-Registry-User header, verified by the gateway in front of the service.
type Server struct {
	cfg        *config.ServerConfig
	httpServer *http.Server
}

func NewServer(cfg *config.ServerConfig) *Server {
	return &Server{cfg: cfg}
}

func Router() *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(handlers.RequireUser)

	api.Path("/uploads/autoupdate").Methods(http.MethodPost).Handler(handlers.HandleAutoUpdate())
	api.Path("/uploads/pending").Methods(http.MethodGet).Handler(handlers.HandlePendingUploads())
	api.Path("/uploads").Methods(http.MethodGet).Handler(handlers.HandleListUploads())
	api.Path("/uploads/{id:[0-9]+}").Methods(http.MethodGet).Handler(handlers.HandleGetUpload())
	api.Path("/uploads/{id:[0-9]+}").Methods(http.MethodDelete).Handler(handlers.HandleDeleteUpload())
	api.Path("/uploads/{id:[0-9]+}/submit").Methods(http.MethodPut).Handler(handlers.HandleSubmitUpload())
	api.Path("/uploads/{id:[0-9]+}/approve").Methods(http.MethodPut).Handler(handlers.HandleApproveUpload())
	api.Path("/uploads/{id:[0-9]+}/revert").Methods(http.MethodPut).Handler(handlers.HandleRevertUpload())

	api.Path("/entries/selection").Methods(http.MethodPost).Handler(handlers.HandleEntrySelection())
	api.Path("/entries/{identifier}").Methods(http.MethodGet).Handler(handlers.HandleGetEntry())

	api.Path("/preferences").Methods(http.MethodPost).Handler(handlers.HandleSetPreference())
	return router
}

func (s *Server) Start() {
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler: Router(),
	}
	logging.Logger.Infof("serving registry API at %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil {
		logging.Logger.Errorf("failed to listen and serve, err=%s", err.Error())
		panic(err)
	}
}
