package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"scheduling-assistant/config"
	"scheduling-assistant/internal/session"
	"scheduling-assistant/pkg/gcalendar"
	"scheduling-assistant/pkg/gemini"
	"scheduling-assistant/pkg/googleauth"
	"scheduling-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Cross-domain infrastructure
	cfg      *config.Config
	sessions *session.Manager
	gemini   gemini.IGemini
	calendar gcalendar.ICalendar
	identity googleauth.IIdentity
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AppConfig *config.Config
	Sessions  *session.Manager
	Gemini    gemini.IGemini
	Calendar  gcalendar.ICalendar
	Identity  googleauth.IIdentity
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		sessions:    cfg.Sessions,
		gemini:      cfg.Gemini,
		calendar:    cfg.Calendar,
		identity:    cfg.Identity,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.sessions == nil {
		return errors.New("session manager is required")
	}
	if srv.gemini == nil {
		return errors.New("gemini client is required")
	}
	if srv.calendar == nil {
		return errors.New("calendar client is required")
	}
	if srv.identity == nil {
		return errors.New("identity client is required")
	}
	return nil
}
