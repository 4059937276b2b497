package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/google/subcommands"

	"cryptodash/internal/app"
	"cryptodash/internal/coinfilter"
	"cryptodash/internal/format"
	"cryptodash/internal/market"
	"cryptodash/internal/pagination"
	"cryptodash/internal/scheduler"
	"cryptodash/internal/services"
)

type coinsCmd struct {
	page    int
	perPage int
	search  string
	change  string
	sort    string
}

func (*coinsCmd) Name() string     { return "coins" }
func (*coinsCmd) Synopsis() string { return "list coins by market cap" }
func (*coinsCmd) Usage() string {
	return `cryptodash coins [-page N] [-per-page N] [-search <text>] [-change all|positive|negative] [-sort <key>]

  Lists one page of coins ordered by market cap, then filters the page by a
  case-insensitive name or symbol search and by the sign of the 24h change.
  Sort keys: market_cap_desc, market_cap_asc, price_desc, price_asc,
  change_desc, change_asc, name_asc, name_desc.
`
}

func (p *coinsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.page, "page", 1, "Page number.")
	f.IntVar(&p.perPage, "per-page", 0, "Coins per page (default from PER_PAGE).")
	f.StringVar(&p.search, "search", "", "Name or symbol substring.")
	f.StringVar(&p.change, "change", string(coinfilter.ChangeAll), "24h change filter: all, positive or negative.")
	f.StringVar(&p.sort, "sort", string(coinfilter.DefaultSort), "Sort key.")
}

func (p *coinsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	change, ok := coinfilter.ParseChangeFilter(p.change)
	if !ok {
		return usageError(f, fmt.Sprintf("unknown change filter %q", p.change))
	}
	sort, ok := coinfilter.ParseSortKey(p.sort)
	if !ok {
		return usageError(f, fmt.Sprintf("unknown sort key %q", p.sort))
	}
	if p.page < 1 || p.perPage < 0 || p.perPage > pagination.MaxPerPage {
		return usageError(f, "page must be at least 1 and per-page between 1 and 250")
	}

	return withApp(ctx, func(ctx context.Context, a *app.App) error {
		page, err := a.Coins.ListCoins(ctx,
			pagination.PageRequest{Page: p.page, PerPage: p.perPage},
			coinfilter.Query{Search: p.search, Change: change, Sort: sort},
		)
		if err != nil {
			return err
		}
		printMarkdown(renderCoins(page, a.Gateway.Currency()))
		return nil
	})
}

type trendingCmd struct{}

func (*trendingCmd) Name() string     { return "trending" }
func (*trendingCmd) Synopsis() string { return "list trending coins" }
func (*trendingCmd) Usage() string {
	return `cryptodash trending

  Lists the most searched coins of the last 24 hours.
`
}

func (*trendingCmd) SetFlags(*flag.FlagSet) {}

func (*trendingCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(ctx, func(ctx context.Context, a *app.App) error {
		coins, err := a.Coins.GetTrending(ctx)
		if err != nil {
			return err
		}
		printMarkdown(renderTrending(coins))
		return nil
	})
}

type coinCmd struct{}

func (*coinCmd) Name() string     { return "coin" }
func (*coinCmd) Synopsis() string { return "show the detail of a coin (login required)" }
func (*coinCmd) Usage() string {
	return `cryptodash coin <id>

  Shows price, 24h range, market cap and description of a coin, e.g.
  "cryptodash coin bitcoin".
`
}

func (*coinCmd) SetFlags(*flag.FlagSet) {}

func (*coinCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(f, "expected exactly one coin id")
	}
	id := strings.ToLower(f.Arg(0))

	return withApp(ctx, func(ctx context.Context, a *app.App) error {
		if err := requireSession(a); err != nil {
			return err
		}
		detail, err := a.Coins.GetCoin(ctx, id)
		if err != nil {
			return err
		}
		printMarkdown(renderCoin(detail))
		return nil
	})
}

type historyCmd struct {
	timeframe string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the price history of a coin (login required)" }
func (*historyCmd) Usage() string {
	return `cryptodash history [-timeframe 24h|7d|30d|1y] <id>

  Shows the price series of a coin over the timeframe.
`
}

func (p *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.timeframe, "timeframe", string(market.DefaultTimeframe), "Timeframe: 24h, 7d, 30d or 1y.")
}

func (p *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(f, "expected exactly one coin id")
	}
	id := strings.ToLower(f.Arg(0))

	timeframe := market.Timeframe(p.timeframe)
	known := false
	for _, tf := range market.Timeframes() {
		known = known || tf == timeframe
	}
	if !known {
		return usageError(f, fmt.Sprintf("unknown timeframe %q", p.timeframe))
	}

	return withApp(ctx, func(ctx context.Context, a *app.App) error {
		if err := requireSession(a); err != nil {
			return err
		}
		points, err := a.Coins.GetHistory(ctx, id, timeframe)
		if err != nil {
			return err
		}
		printMarkdown(renderHistory(id, string(timeframe), points, a.Gateway.Currency()))
		return nil
	})
}

type watchCmd struct {
	interval time.Duration
	top      int
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "refresh market data and the portfolio periodically" }
func (*watchCmd) Usage() string {
	return `cryptodash watch [-interval 30s] [-top 5]

  Reloads the coin list and trending coins every interval and prints the top
  coins and the portfolio value, until interrupted. With
  LIVE_PORTFOLIO_PRICES=true the portfolio uses the refreshed prices.
`
}

func (p *watchCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&p.interval, "interval", 0, "Refresh interval (default from REFRESH_INTERVAL).")
	f.IntVar(&p.top, "top", 5, "Number of coins to print.")
}

func (p *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.top < 1 {
		return usageError(f, "top must be at least 1")
	}
	if p.interval < 0 {
		return usageError(f, "interval must not be negative")
	}

	return withApp(ctx, func(ctx context.Context, a *app.App) error {
		interval := a.Config.RefreshInterval
		if p.interval > 0 {
			interval = p.interval
		}
		currency := a.Gateway.Currency()

		job := a.RefreshJob(func(r services.RefreshResult) {
			snap := a.Coins.Snapshot()
			summary := a.Portfolio.GetSummary(ctx)

			var b strings.Builder
			fmt.Fprintf(&b, "[%s] ", time.Now().Format(time.TimeOnly))
			for i, c := range snap.Coins {
				if i == p.top {
					break
				}
				fmt.Fprintf(&b, "%s %s %s  ", strings.ToUpper(c.Symbol), format.Price(c.CurrentPrice, currency), format.PercentFloat(c.PriceChangePercentage24h))
			}
			fmt.Fprintf(&b, "| portfolio %s (%s)", format.Money(summary.TotalValue, currency), format.Percent(summary.TotalProfitLossPercentage))
			fmt.Println(b.String())
		})

		sched := scheduler.New(a.Log())
		if err := sched.AddJob("@every "+interval.String(), job); err != nil {
			return err
		}
		if err := sched.RunNow(job); err != nil {
			fmt.Println("refresh failed:", err)
		}
		sched.Start()
		defer sched.Stop()

		<-ctx.Done()
		return nil
	})
}
