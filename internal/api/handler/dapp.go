package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/HungEzz/surfsui/internal/domain"
	"github.com/HungEzz/surfsui/internal/usecases/ranking"
	"github.com/HungEzz/surfsui/pkg/apiErrors"
	"github.com/HungEzz/surfsui/pkg/log"
)

// GetAllRankings serves the complete ranking snapshot in rank order.
func GetAllRankings(service ranking.RankingService) http.Handler {
	return handle(func(w http.ResponseWriter, r *http.Request) error {
		rankings, total, err := service.AllRankings(r.Context())
		if err != nil {
			return err
		}

		log.ForContext(r.Context()).WithField("count", total).Info("dapps: retrieved all rankings")

		writeSuccess(w, rankings, withTotal(total))
		return nil
	})
}

// GetTopDApps serves the first N rows by rank. The :limit segment is
// optional and defaults to 10; anything non-numeric or outside [1,50] is
// rejected before the service is called.
func GetTopDApps(service ranking.RankingService) http.Handler {
	return handle(func(w http.ResponseWriter, r *http.Request) error {
		limit := ranking.DefaultTopLimit

		if raw := httprouter.ParamsFromContext(r.Context()).ByName("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return apiErrors.Validation(
					apiErrors.CodeInvalidLimit,
					fmt.Sprintf("limit must be an integer, got '%s'", raw),
				)
			}
			limit = parsed
		}

		rankings, total, err := service.TopDApps(r.Context(), limit)
		if err != nil {
			return err
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"limit": limit,
			"count": total,
		}).Info("dapps: retrieved top dapps")

		writeSuccess(w, rankings, withTotal(total))
		return nil
	})
}

// GetDAppsByCategory validates the category against the closed enum before
// anything reaches the store, then lets the service distinguish a category
// missing from the data (404) from one with zero current rows (empty 200).
func GetDAppsByCategory(service ranking.RankingService) http.Handler {
	return handle(func(w http.ResponseWriter, r *http.Request) error {
		raw := httprouter.ParamsFromContext(r.Context()).ByName("category")

		category, ok := domain.ParseCategory(raw)
		if !ok {
			return apiErrors.Validation(
				apiErrors.CodeInvalidCategory,
				fmt.Sprintf("category must be one of: %s", joinCategories()),
			)
		}

		rankings, total, err := service.DAppsByCategory(r.Context(), category)
		if err != nil {
			return err
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"category": category.String(),
			"count":    total,
		}).Info("dapps: retrieved dapps by category")

		writeSuccess(w, rankings, withTotal(total))
		return nil
	})
}

// GetStats serves the aggregate statistics overview.
func GetStats(service ranking.RankingService) http.Handler {
	return handle(func(w http.ResponseWriter, r *http.Request) error {
		stats, err := service.Stats(r.Context())
		if err != nil {
			return err
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"total_dapps": stats.TotalDApps,
			"total_users": stats.TotalActiveUsers1H,
		}).Info("dapps: retrieved stats")

		writeSuccess(w, stats, nil)
		return nil
	})
}

func joinCategories() string {
	names := make([]string, 0, len(domain.BackendCategories))
	for _, c := range domain.BackendCategories {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
