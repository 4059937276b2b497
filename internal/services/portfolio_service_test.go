package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"cryptodash/internal/forms"
	"cryptodash/internal/models"
	"cryptodash/internal/testutil"
)

func newTestPortfolioService() PortfolioServicer {
	return NewPortfolioService(10*time.Millisecond, time.Hour, zap.NewNop().Sugar())
}

func TestPortfolioService_Reads(t *testing.T) {
	svc := newTestPortfolioService()
	ctx := context.Background()

	items := svc.GetItems(ctx)
	if len(items) != 5 {
		t.Fatalf("expected 5 holdings, got %d", len(items))
	}
	testutil.AssertDecimal(t, "bitcoin total value", items[0].TotalValue, "26000")

	summary := svc.GetSummary(ctx)
	testutil.AssertDecimal(t, "total value", summary.TotalValue, "37550")
	testutil.AssertDecimal(t, "total invested", summary.TotalInvested, "32750")
	testutil.AssertDecimal(t, "total profit/loss", summary.TotalProfitLoss, "4800")

	allocation := svc.GetAllocation(ctx)
	if len(allocation) != 5 {
		t.Fatalf("expected 5 slices, got %d", len(allocation))
	}
	testutil.AssertDecimal(t, "bitcoin share", allocation[0].Percentage.Round(2), "69.24")
}

func TestPortfolioService_SyncPrices(t *testing.T) {
	svc := newTestPortfolioService()
	ctx := context.Background()

	coins := []models.Coin{
		{ID: "bitcoin", CurrentPrice: 60000},
		{ID: "dogecoin", CurrentPrice: 0.1},
	}
	if n := svc.SyncPrices(ctx, coins); n != 1 {
		t.Errorf("expected 1 holding updated, got %d", n)
	}

	items := svc.GetItems(ctx)
	testutil.AssertDecimal(t, "bitcoin price", items[0].CurrentPrice, "60000")
	testutil.AssertDecimal(t, "bitcoin total value", items[0].TotalValue, "30000")
	testutil.AssertDecimal(t, "ethereum price", items[1].CurrentPrice, "3200")
}

func TestPortfolioService_ValidateItem(t *testing.T) {
	svc := newTestPortfolioService()

	t.Run("valid", func(t *testing.T) {
		v := svc.ValidateItem(forms.ItemInput{Name: "Bitcoin", Symbol: "BTC", Quantity: "0.5", PurchasePrice: "45000"})
		if !v.Valid || len(v.Errors) != 0 {
			t.Errorf("expected valid input, got %+v", v.Errors)
		}
		if v.Errors == nil {
			t.Error("expected an empty error list rather than nil")
		}
		if v.TotalValue != "22500.00" {
			t.Errorf("expected total value 22500.00, got %s", v.TotalValue)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		v := svc.ValidateItem(forms.ItemInput{Name: "Bitcoin", Symbol: "btc!", Quantity: "1", PurchasePrice: "0.005"})
		if v.Valid {
			t.Fatal("expected invalid input")
		}
		if _, ok := v.Errors.For(forms.FieldSymbol); !ok {
			t.Error("expected a symbol error")
		}
		if fe, ok := v.Errors.For(forms.FieldPurchasePrice); !ok || fe.Rule != "minPrice" {
			t.Errorf("expected a minPrice error, got %+v", fe)
		}
	})
}

func TestPortfolioService_SubmitItem(t *testing.T) {
	svc := newTestPortfolioService()

	t.Run("accepted", func(t *testing.T) {
		sub, err := svc.SubmitItem(context.Background(), forms.ItemInput{Name: "Solana", Symbol: "SOL", Quantity: "10", PurchasePrice: "120"})
		testutil.AssertNoError(t, err)

		if sub.RedirectTo != forms.RedirectTarget {
			t.Errorf("expected redirect to %s, got %s", forms.RedirectTarget, sub.RedirectTo)
		}
		if sub.TotalValue != "1200.00" {
			t.Errorf("expected total value 1200.00, got %s", sub.TotalValue)
		}
		if sub.RedirectAfter != time.Hour {
			t.Errorf("expected redirect delay 1h, got %v", sub.RedirectAfter)
		}
		if len(svc.GetItems(context.Background())) != 5 {
			t.Error("a submission must not be persisted")
		}
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := svc.SubmitItem(context.Background(), forms.ItemInput{})

		var verrs forms.ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("expected ValidationErrors, got %v", err)
		}
		if len(verrs) != len(forms.Fields) {
			t.Errorf("expected one error per field, got %d", len(verrs))
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		slow := NewPortfolioService(time.Hour, time.Hour, zap.NewNop().Sugar())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := slow.SubmitItem(ctx, forms.ItemInput{Name: "Solana", Symbol: "SOL", Quantity: "10", PurchasePrice: "120"})
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected deadline exceeded, got %v", err)
		}
	})
}
