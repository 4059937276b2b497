package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"cryptodash/internal/app"
	"cryptodash/internal/coinfilter"
	"cryptodash/internal/format"
	"cryptodash/internal/forms"
	"cryptodash/internal/pagination"
)

type portfolioCmd struct {
	live bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "show holdings, totals and allocation" }
func (*portfolioCmd) Usage() string {
	return `cryptodash portfolio [-live]

  Shows every holding with its value and profit/loss, the portfolio totals
  and each holding's share of the total value. With -live the current prices
  come from the market instead of the stored ones.
`
}

func (p *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.live, "live", false, "Use current market prices.")
}

func (p *portfolioCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(ctx, func(ctx context.Context, a *app.App) error {
		if p.live {
			page, err := a.Coins.ListCoins(ctx, pagination.PageRequest{PerPage: pagination.MaxPerPage}, coinfilter.Query{})
			if err != nil {
				return err
			}
			a.Portfolio.SyncPrices(ctx, page.Data)
		}

		printMarkdown(renderPortfolio(
			a.Portfolio.GetItems(ctx),
			a.Portfolio.GetSummary(ctx),
			a.Portfolio.GetAllocation(ctx),
			a.Gateway.Currency(),
		))
		return nil
	})
}

var errInvalidItem = errors.New("invalid item")

type addCmd struct {
	input forms.ItemInput
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "check and submit a new portfolio item" }
func (*addCmd) Usage() string {
	return `cryptodash add -name <name> -symbol <symbol> -quantity <n> -price <purchase price>

  Validates the item the way the add-item form does and submits it. The item
  is not saved: the command reports the result and returns to the portfolio.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.input.Name, "name", "", "Coin name, e.g. Bitcoin.")
	f.StringVar(&p.input.Symbol, "symbol", "", "Coin symbol, e.g. BTC.")
	f.StringVar(&p.input.Quantity, "quantity", "", "Quantity bought.")
	f.StringVar(&p.input.PurchasePrice, "price", "", "Purchase price per coin.")
}

func (p *addCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if verrs := forms.Validate(p.input); len(verrs) > 0 {
		printMarkdown(renderFieldErrors(verrs))
		fmt.Fprintln(os.Stderr, errInvalidItem)
		return subcommands.ExitFailure
	}

	return withApp(ctx, func(ctx context.Context, a *app.App) error {
		redirected := make(chan string, 1)
		flow := forms.NewFlow(
			forms.WithDelays(a.Config.SubmitDelay, a.Config.RedirectDelay),
			forms.WithRedirect(func(target string) { redirected <- target }),
		)
		defer flow.Cancel()

		if err := flow.Fill(p.input); err != nil {
			return err
		}
		fmt.Printf("Total value: %s\n", format.Money(decimal.RequireFromString(flow.TotalValue()), a.Gateway.Currency()))
		fmt.Println("Submitting...")

		sub, err := flow.Submit(ctx)
		var verrs forms.ValidationErrors
		if errors.As(err, &verrs) {
			printMarkdown(renderFieldErrors(verrs))
			return errInvalidItem
		}
		if err != nil {
			return err
		}

		fmt.Printf("Added %s (%s), not saved. Returning to %s in %s.\n",
			sub.Item.Name, sub.Item.Symbol, sub.RedirectTo, sub.RedirectAfter)

		select {
		case <-redirected:
		case <-ctx.Done():
			return nil
		}

		printMarkdown(renderPortfolio(
			a.Portfolio.GetItems(ctx),
			a.Portfolio.GetSummary(ctx),
			a.Portfolio.GetAllocation(ctx),
			a.Gateway.Currency(),
		))
		return nil
	})
}
