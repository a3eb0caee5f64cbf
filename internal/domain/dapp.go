package domain

// DAppRanking is a single row of the dapp_rankings snapshot as exposed by the
// API. LastUpdate carries the store timestamp already converted to an
// ISO-8601 string, so the JSON shape matches the wire contract exactly.
type DAppRanking struct {
	Rank       int    `json:"rank"`
	PackageID  string `json:"package_id"`
	DAppName   string `json:"dapp_name"`
	DAU1H      int64  `json:"dau_1h"`
	DAppType   string `json:"dapp_type"`
	LastUpdate string `json:"last_update"`
}

// TopDApp summarizes the best ranked row inside DAppStats.
type TopDApp struct {
	Name  string `json:"name"`
	DAU1H int64  `json:"dau_1h"`
	Type  string `json:"type"`
}

// DAppStats is derived on demand from the rankings table, never persisted.
type DAppStats struct {
	TotalDApps         int            `json:"total_dapps"`
	TotalActiveUsers1H int64          `json:"total_active_users_1h"`
	TopDApp            TopDApp        `json:"top_dapp"`
	Categories         map[string]int `json:"categories"`
	LastUpdated        string         `json:"last_updated"`
}

// HealthStatus is the liveness contract of the service, doubling as the
// container health probe body.
type HealthStatus struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)
