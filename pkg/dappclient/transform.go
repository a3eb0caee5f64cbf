package dappclient

import (
	"github.com/HungEzz/surfsui/internal/domain"
)

// DApp is the display-ready shape consumed by the dashboard. Account holds
// the hourly active-user count, which the dashboard presents as activity.
type DApp struct {
	Rank    int             `json:"rank"`
	Name    string          `json:"name"`
	Account int64           `json:"account"`
	Type    domain.Category `json:"type"`
}

// TransformDApp converts a raw ranking row into its display shape. index is
// the zero-based position of the row in the response and backs the rank
// fallback for rows without a stored rank.
func TransformDApp(row domain.DAppRanking, index int) DApp {
	rank := row.Rank
	if rank <= 0 {
		rank = index + 1
	}

	return DApp{
		Rank:    rank,
		Name:    row.DAppName,
		Account: row.DAU1H,
		Type:    domain.MapDisplayCategory(row.DAppType),
	}
}

// TransformDApps converts a full response preserving order.
func TransformDApps(rows []domain.DAppRanking) []DApp {
	dapps := make([]DApp, 0, len(rows))
	for i, row := range rows {
		dapps = append(dapps, TransformDApp(row, i))
	}
	return dapps
}
