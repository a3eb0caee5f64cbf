// Package repository implements data access for the dapp_rankings store.
package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/HungEzz/surfsui/infrastructure/database/postgres"
	"github.com/HungEzz/surfsui/internal/domain"
	"github.com/HungEzz/surfsui/pkg/apiErrors"
	"github.com/HungEzz/surfsui/pkg/log"
)

const dappRankingsTable = "dapp_rankings"

// rankingColumns is the canonical projection of every ranking query.
var rankingColumns = []string{
	"rank_position",
	"package_id",
	"dapp_name",
	"dau_1h",
	"dapp_type",
	"last_update",
}

type DAppRankingRepository interface {
	GetAllRankings(ctx context.Context) ([]domain.DAppRanking, error)
	GetTopDApps(ctx context.Context, limit int) ([]domain.DAppRanking, error)
	GetDAppsByCategory(ctx context.Context, category string) ([]domain.DAppRanking, error)
	GetStats(ctx context.Context) (*domain.DAppStats, error)
	CategoryExists(ctx context.Context, category string) (bool, error)
}

type dappRankingRepository struct {
	conn postgres.Conn
}

func NewDAppRankingRepository(conn postgres.Conn) DAppRankingRepository {
	return &dappRankingRepository{
		conn: conn,
	}
}

func (r *dappRankingRepository) GetAllRankings(ctx context.Context) ([]domain.DAppRanking, error) {
	queryBuilder := squirrel.
		Select(rankingColumns...).
		From(dappRankingsTable).
		OrderBy("rank_position ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryRankings(ctx, queryBuilder, "Failed to retrieve DApp rankings")
}

func (r *dappRankingRepository) GetTopDApps(ctx context.Context, limit int) ([]domain.DAppRanking, error) {
	queryBuilder := squirrel.
		Select(rankingColumns...).
		From(dappRankingsTable).
		OrderBy("rank_position ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryRankings(ctx, queryBuilder, "Failed to retrieve top DApps")
}

func (r *dappRankingRepository) GetDAppsByCategory(ctx context.Context, category string) ([]domain.DAppRanking, error) {
	queryBuilder := squirrel.
		Select(rankingColumns...).
		From(dappRankingsTable).
		Where(squirrel.Eq{"dapp_type": category}).
		OrderBy("dau_1h DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryRankings(ctx, queryBuilder, "Failed to retrieve DApps for category")
}

func (r *dappRankingRepository) queryRankings(
	ctx context.Context,
	queryBuilder squirrel.SelectBuilder,
	failureMessage string,
) ([]domain.DAppRanking, error) {
	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, apiErrors.Internal(err, failureMessage)
	}

	start := time.Now()
	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		r.logQueryError(ctx, sqlQuery, start, err)
		return nil, classifyStoreError(err, failureMessage)
	}
	defer rows.Close()

	rankings := make([]domain.DAppRanking, 0)
	for rows.Next() {
		ranking, err := scanRanking(rows)
		if err != nil {
			r.logQueryError(ctx, sqlQuery, start, err)
			return nil, apiErrors.Store(err, failureMessage)
		}
		rankings = append(rankings, *ranking)
	}
	if err := rows.Err(); err != nil {
		r.logQueryError(ctx, sqlQuery, start, err)
		return nil, classifyStoreError(err, failureMessage)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"duration_ms": time.Since(start).Milliseconds(),
		"rows":        len(rankings),
	}).Debug("rankings query executed")

	return rankings, nil
}

func (r *dappRankingRepository) GetStats(ctx context.Context) (*domain.DAppStats, error) {
	const failureMessage = "Failed to retrieve DApp statistics"

	agg, err := r.queryAggregates(ctx)
	if err != nil {
		return nil, classifyStoreError(err, failureMessage)
	}

	top, err := r.queryTopDApp(ctx)
	if err != nil {
		return nil, classifyStoreError(err, failureMessage)
	}

	counts, err := r.queryCategoryCounts(ctx)
	if err != nil {
		return nil, classifyStoreError(err, failureMessage)
	}

	return buildStats(agg, top, counts, time.Now()), nil
}

// aggregateRow holds count(*), sum(dau_1h) and max(last_update) over the table.
type aggregateRow struct {
	totalDApps       int
	totalActiveUsers int64
	lastUpdated      sql.NullTime
}

// topRow is the rank-ascending first row, nil on an empty table.
type topRow struct {
	name  string
	dau1h int64
	typ   string
}

type categoryCount struct {
	category string
	count    int
}

func (r *dappRankingRepository) queryAggregates(ctx context.Context) (aggregateRow, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(dau_1h), 0)",
			"MAX(last_update)",
		).
		From(dappRankingsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return aggregateRow{}, err
	}

	start := time.Now()
	var agg aggregateRow
	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(
		&agg.totalDApps,
		&agg.totalActiveUsers,
		&agg.lastUpdated,
	)
	if err != nil {
		r.logQueryError(ctx, sqlQuery, start, err)
		return aggregateRow{}, err
	}

	return agg, nil
}

func (r *dappRankingRepository) queryTopDApp(ctx context.Context) (*topRow, error) {
	sqlQuery, args, err := squirrel.
		Select("dapp_name", "dau_1h", "dapp_type").
		From(dappRankingsTable).
		OrderBy("rank_position ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var top topRow
	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&top.name, &top.dau1h, &top.typ)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logQueryError(ctx, sqlQuery, start, err)
		return nil, err
	}

	return &top, nil
}

func (r *dappRankingRepository) queryCategoryCounts(ctx context.Context) ([]categoryCount, error) {
	sqlQuery, args, err := squirrel.
		Select("dapp_type", "COUNT(*) AS count").
		From(dappRankingsTable).
		GroupBy("dapp_type").
		OrderBy("count DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		r.logQueryError(ctx, sqlQuery, start, err)
		return nil, err
	}
	defer rows.Close()

	counts := make([]categoryCount, 0)
	for rows.Next() {
		var c categoryCount
		if err := rows.Scan(&c.category, &c.count); err != nil {
			r.logQueryError(ctx, sqlQuery, start, err)
			return nil, err
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		r.logQueryError(ctx, sqlQuery, start, err)
		return nil, err
	}

	return counts, nil
}

// buildStats folds the three aggregate results into the stats entity,
// applying the empty-table sentinels.
func buildStats(agg aggregateRow, top *topRow, counts []categoryCount, now time.Time) *domain.DAppStats {
	stats := &domain.DAppStats{
		TotalDApps:         agg.totalDApps,
		TotalActiveUsers1H: agg.totalActiveUsers,
		TopDApp: domain.TopDApp{
			Name:  "N/A",
			DAU1H: 0,
			Type:  domain.CategoryUnknown.String(),
		},
		Categories:  make(map[string]int, len(counts)),
		LastUpdated: formatTimestamp(now),
	}

	if agg.lastUpdated.Valid {
		stats.LastUpdated = formatTimestamp(agg.lastUpdated.Time)
	}

	if top != nil {
		stats.TopDApp = domain.TopDApp{
			Name:  top.name,
			DAU1H: top.dau1h,
			Type:  top.typ,
		}
	}

	for _, c := range counts {
		stats.Categories[c.category] = c.count
	}

	return stats
}

func (r *dappRankingRepository) CategoryExists(ctx context.Context, category string) (bool, error) {
	sqlQuery, args, err := squirrel.
		Select().
		Column(squirrel.Expr("EXISTS(SELECT 1 FROM dapp_rankings WHERE dapp_type = ?)", category)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	start := time.Now()
	var exists bool
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&exists); err != nil {
		r.logQueryError(ctx, sqlQuery, start, err)
		return false, classifyStoreError(err, "Failed to check category existence")
	}

	return exists, nil
}

func scanRanking(rows *sql.Rows) (*domain.DAppRanking, error) {
	var (
		ranking    domain.DAppRanking
		lastUpdate time.Time
	)

	err := rows.Scan(
		&ranking.Rank,
		&ranking.PackageID,
		&ranking.DAppName,
		&ranking.DAU1H,
		&ranking.DAppType,
		&lastUpdate,
	)
	if err != nil {
		return nil, err
	}

	ranking.LastUpdate = formatTimestamp(lastUpdate)
	return &ranking, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func (r *dappRankingRepository) logQueryError(ctx context.Context, sqlQuery string, start time.Time, err error) {
	log.ForContext(ctx).WithFields(log.Fields{
		"query":       sqlQuery,
		"duration_ms": time.Since(start).Milliseconds(),
	}).WithError(err).Error("dapp rankings query failed")
}

// classifyStoreError tags the failure kind where it happens instead of
// matching on message text later. Connection-level failures map to 503,
// everything else stays a 500 store error.
func classifyStoreError(err error, message string) *apiErrors.Error {
	if apiErr, ok := err.(*apiErrors.Error); ok {
		return apiErr
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return apiErrors.Unavailable(err, message)
	}

	return apiErrors.Store(err, message)
}
