// Command dashboard is a terminal viewer for the rankings API: it pages
// through the current snapshot, filters by name and prints the aggregate
// stats.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/HungEzz/surfsui/internal/config"
	"github.com/HungEzz/surfsui/pkg/dappclient"
	"github.com/HungEzz/surfsui/pkg/dashboard"
	"github.com/HungEzz/surfsui/pkg/utils"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	client := dappclient.NewClient(
		cfg.Dashboard.APIBaseURL,
		dappclient.WithTimeout(cfg.Dashboard.RequestTimeout),
	)

	ctx := context.Background()

	view := dashboard.NewView(client)
	if err := view.Refresh(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to load rankings")
	}

	search := dashboard.NewSearchInput(view.Search)
	defer search.Stop()

	renderPage(view.Page(), view.SearchTerm())
	printHelp()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "q":
			return
		case line == "n":
			view.SetPage(view.CurrentPage() + 1)
		case line == "p":
			view.SetPage(view.CurrentPage() - 1)
		case line == "r":
			if err := view.Refresh(ctx); err != nil {
				logrus.WithError(err).Error("refresh failed, showing last snapshot")
			}
		case line == "s":
			printStats(ctx, client)
			continue
		case line == "h":
			printHelp()
			continue
		case strings.HasPrefix(line, "/"):
			search.Type(strings.TrimPrefix(line, "/"))
			search.Enter()
		default:
			if number, err := strconv.Atoi(line); err == nil {
				view.SetPage(number)
			} else {
				printHelp()
				continue
			}
		}

		renderPage(view.Page(), view.SearchTerm())
	}
}

func renderPage(page dashboard.Page, term string) {
	if page.TotalItems == 0 {
		if term != "" {
			fmt.Printf("No results for %q\n", term)
		} else {
			fmt.Println("No DApps available")
		}
		return
	}

	fmt.Printf("\nPage %d/%d (%d dapps", page.Number, page.TotalPages, page.TotalItems)
	if term != "" {
		fmt.Printf(", filter %q", term)
	}
	fmt.Println(")")

	renderSection("Trending", page.Trending)
	renderSection("Top DeFi Protocols", page.DeFiProtocols)
}

func renderSection(title string, dapps []dappclient.DApp) {
	if len(dapps) == 0 {
		return
	}

	fmt.Printf("\n  %s\n", title)
	for _, dapp := range dapps {
		fmt.Printf("  %3d. %-28s %8d users/h  [%s]\n", dapp.Rank, dapp.Name, dapp.Account, dapp.Type)
	}
}

func printStats(ctx context.Context, client dappclient.Client) {
	stats, err := client.Stats(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch stats")
		return
	}
	fmt.Println(utils.PrettyJson(stats))
}

func printHelp() {
	fmt.Println(`
Commands:
  n        next page
  p        previous page
  <num>    jump to page
  /<term>  filter by name (empty /: clear)
  r        refresh data
  s        show stats
  h        help
  q        quit`)
}
