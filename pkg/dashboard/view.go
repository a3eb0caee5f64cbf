// Package dashboard is the presentation engine behind the terminal rankings
// view: filtering, fixed-size pagination and the fetch state machine, kept
// free of any rendering concerns so it can be tested directly.
package dashboard

import (
	"context"
	"strings"
	"sync"

	"github.com/HungEzz/surfsui/internal/domain"
	"github.com/HungEzz/surfsui/pkg/dappclient"
)

const (
	// PageSize is the number of rows per page, split across two sections.
	PageSize    = 10
	SectionSize = 5
)

// Page is one renderable page of rankings. Trending holds the first half,
// DeFiProtocols the second; either may be short or empty on the last page.
type Page struct {
	Trending      []dappclient.DApp
	DeFiProtocols []dappclient.DApp
	Number        int
	TotalPages    int
	TotalItems    int
}

// Filter keeps the rows whose name contains term, case-insensitively. A term
// that is empty after trimming keeps everything.
func Filter(dapps []dappclient.DApp, term string) []dappclient.DApp {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return dapps
	}

	filtered := make([]dappclient.DApp, 0, len(dapps))
	for _, dapp := range dapps {
		if strings.Contains(strings.ToLower(dapp.Name), needle) {
			filtered = append(filtered, dapp)
		}
	}
	return filtered
}

// BuildPage slices one page out of dapps. Pages are 1-based; a page past the
// end yields empty sections, not an error.
func BuildPage(dapps []dappclient.DApp, number int) Page {
	if number < 1 {
		number = 1
	}

	totalItems := len(dapps)
	totalPages := (totalItems + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (number - 1) * PageSize
	if start > totalItems {
		start = totalItems
	}
	end := start + PageSize
	if end > totalItems {
		end = totalItems
	}
	rows := dapps[start:end]

	split := SectionSize
	if split > len(rows) {
		split = len(rows)
	}

	return Page{
		Trending:      rows[:split],
		DeFiProtocols: rows[split:],
		Number:        number,
		TotalPages:    totalPages,
		TotalItems:    totalItems,
	}
}

// Fetcher is the slice of the API client the view needs.
type Fetcher interface {
	AllRankings(ctx context.Context) ([]domain.DAppRanking, error)
}

// View holds the dashboard state: the last fetched snapshot, the active
// search term and the current page. All methods are safe for concurrent use.
//
// Refresh carries a token so that when refreshes overlap, only the newest
// one may publish its result; responses arriving out of order are dropped.
type View struct {
	mu          sync.Mutex
	fetcher     Fetcher
	dapps       []dappclient.DApp
	searchTerm  string
	currentPage int
	fetchToken  uint64
	loaded      bool
	lastErr     error
}

func NewView(fetcher Fetcher) *View {
	return &View{
		fetcher:     fetcher,
		currentPage: 1,
	}
}

// Refresh fetches a fresh snapshot. If a newer Refresh started while this
// one was in flight, the stale result is discarded and no state changes.
func (v *View) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.fetchToken++
	token := v.fetchToken
	v.mu.Unlock()

	rows, err := v.fetcher.AllRankings(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if token != v.fetchToken {
		return nil
	}

	if err != nil {
		// Keep the previous snapshot so the user can retry from data.
		v.lastErr = err
		return err
	}

	v.dapps = dappclient.TransformDApps(rows)
	v.loaded = true
	v.lastErr = nil
	return nil
}

// Search installs a new term and resets to the first page, but only when the
// term actually changed.
func (v *View) Search(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if term == v.searchTerm {
		return
	}
	v.searchTerm = term
	v.currentPage = 1
}

func (v *View) SearchTerm() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.searchTerm
}

// SetPage moves to the given 1-based page, clamped to the filtered total.
func (v *View) SetPage(number int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	totalPages := BuildPage(Filter(v.dapps, v.searchTerm), 1).TotalPages
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}
	v.currentPage = number
}

func (v *View) CurrentPage() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.currentPage
}

// Page renders the current page of the filtered snapshot.
func (v *View) Page() Page {
	v.mu.Lock()
	defer v.mu.Unlock()
	return BuildPage(Filter(v.dapps, v.searchTerm), v.currentPage)
}

// Loaded reports whether at least one fetch has succeeded.
func (v *View) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loaded
}

// Err returns the error of the most recent completed fetch, nil after a
// success.
func (v *View) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastErr
}
