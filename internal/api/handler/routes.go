package handler

import (
	"net/http"
	"time"

	"github.com/HungEzz/surfsui/infrastructure/database/postgres"
	"github.com/HungEzz/surfsui/internal/api/handler/router"
	"github.com/HungEzz/surfsui/internal/usecases/ranking"
)

func Healthcheck(conn postgres.Conn, pingTimeout time.Duration) []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(conn, pingTimeout),
		},
	}
}

func ServiceInfo() []router.Route {
	return []router.Route{
		{
			Path:    "/api",
			Method:  http.MethodGet,
			Handler: ServiceInfoHandler(),
		},
	}
}

func DApps(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/dapps/rankings",
			Method:  http.MethodGet,
			Handler: GetAllRankings(service),
		},
		{
			Path:    "/api/dapps/top",
			Method:  http.MethodGet,
			Handler: GetTopDApps(service),
		},
		{
			Path:    "/api/dapps/top/:limit",
			Method:  http.MethodGet,
			Handler: GetTopDApps(service),
		},
		{
			Path:    "/api/dapps/by-category/:category",
			Method:  http.MethodGet,
			Handler: GetDAppsByCategory(service),
		},
		{
			Path:    "/api/dapps/stats",
			Method:  http.MethodGet,
			Handler: GetStats(service),
		},
	}
}
