package httpserver

import (
	"context"

	apptHTTP "scheduling-assistant/internal/appointment/delivery/http"
	apptMemory "scheduling-assistant/internal/appointment/repository/memory"
	apptUC "scheduling-assistant/internal/appointment/usecase"
	asstHTTP "scheduling-assistant/internal/assistant/delivery/http"
	asstMemory "scheduling-assistant/internal/assistant/repository/memory"
	asstUC "scheduling-assistant/internal/assistant/usecase"
	authHTTP "scheduling-assistant/internal/auth/delivery/http"
	authUC "scheduling-assistant/internal/auth/usecase"
	"scheduling-assistant/internal/middleware"
)

// registerDomainRoutes wires repositories, use cases, and handlers for all
// domains under /api/v1.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainMemory.New(...)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, ..., repo)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	mw := middleware.New(srv.l, srv.sessions, srv.cfg.Chat.RateLimitPerMin)

	// Auth domain
	authUseCase := authUC.New(srv.l, srv.identity, srv.sessions)
	authHandler := authHTTP.New(srv.l, authUseCase)
	authHTTP.RegisterRoutes(api, authHandler, mw)
	srv.l.Infof(ctx, "Auth domain registered")

	// Appointment domain
	apptRepo := apptMemory.New(srv.cfg.Session.MaxEntries, srv.cfg.Session.TTL)
	apptUseCase := apptUC.New(
		srv.l,
		srv.calendar,
		apptRepo,
		srv.cfg.Calendar.ID,
		srv.cfg.Calendar.MaxResults,
		srv.cfg.Gemini.Timezone,
	)
	apptHandler := apptHTTP.New(srv.l, apptUseCase)
	apptHTTP.RegisterRoutes(api, apptHandler, mw)
	srv.l.Infof(ctx, "Appointment domain registered")

	// Assistant domain
	asstRepo := asstMemory.New(srv.cfg.Session.MaxEntries, srv.cfg.Session.TTL)
	asstUseCase := asstUC.New(srv.l, srv.gemini, apptUseCase, asstRepo)
	asstHandler := asstHTTP.New(srv.l, asstUseCase)
	asstHTTP.RegisterRoutes(api, asstHandler, mw)
	srv.l.Infof(ctx, "Assistant domain registered")

	return nil
}
