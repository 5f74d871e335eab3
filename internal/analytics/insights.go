package analytics

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	InsightSaving          = "Great job! You're saving money."
	InsightNotSaving       = "Careful! Your expenses match or exceed your income."
	InsightBiggestCategory = "Your biggest expense category is %s."
	InsightExcellentRate   = "Excellent savings rate!"
	InsightImproveRate     = "Consider improving your savings rate."

	RecommendTrackSpending   = "Track your spending patterns regularly."
	RecommendMonthlyBudget   = "Set monthly budget goals."
	RecommendReviewExpensive = "Review and optimize high-expense categories."
)

var (
	hundred          = decimal.NewFromInt(100)
	excellentSavings = decimal.NewFromInt(30)
)

// Totals summarises a set of transactions for the stats tiles and insights.
type Totals struct {
	Income      float64 `json:"income"`
	Expense     float64 `json:"expense"`
	Balance     float64 `json:"balance"`
	SavingsRate float64 `json:"savingsRate" doc:"Percent of income kept, one decimal"`
	Count       int     `json:"count"`
}

type exactTotals struct {
	income  decimal.Decimal
	expense decimal.Decimal
	count   int
}

// Sums are exact so the result does not depend on the order of txs.
func sumTotals(txs []Transaction) exactTotals {
	var t exactTotals
	for _, tx := range txs {
		switch tx.Type {
		case Income:
			t.income = t.income.Add(decimal.NewFromFloat(tx.Amount))
		case Expense:
			t.expense = t.expense.Add(decimal.NewFromFloat(tx.Amount))
		default:
			continue
		}
		t.count++
	}
	return t
}

func (t exactTotals) balance() decimal.Decimal {
	return t.income.Sub(t.expense)
}

// savingsRate is balance/income in percent rounded to one decimal, or zero
// without income.
func (t exactTotals) savingsRate() decimal.Decimal {
	if !t.income.IsPositive() {
		return decimal.Zero
	}
	return t.balance().Div(t.income).Mul(hundred).Round(1)
}

func ComputeTotals(txs []Transaction) Totals {
	t := sumTotals(txs)
	return Totals{
		Income:      t.income.InexactFloat64(),
		Expense:     t.expense.InexactFloat64(),
		Balance:     t.balance().InexactFloat64(),
		SavingsRate: t.savingsRate().InexactFloat64(),
		Count:       t.count,
	}
}

// DeriveInsights returns, in order: a saving observation, the biggest expense
// category when there is one, and a savings rate remark when the rate is
// positive.
func DeriveInsights(txs []Transaction) []string {
	t := sumTotals(txs)

	insights := make([]string, 0, 3)
	if t.balance().IsPositive() {
		insights = append(insights, InsightSaving)
	} else {
		insights = append(insights, InsightNotSaving)
	}

	if name, ok := biggestExpenseCategory(txs); ok {
		insights = append(insights, fmt.Sprintf(InsightBiggestCategory, name))
	}

	rate := t.savingsRate()
	switch {
	case rate.GreaterThan(excellentSavings):
		insights = append(insights, InsightExcellentRate)
	case rate.IsPositive():
		insights = append(insights, InsightImproveRate)
	}

	return insights
}

// biggestExpenseCategory breaks ties on the category name.
func biggestExpenseCategory(txs []Transaction) (string, bool) {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != Expense {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(decimal.NewFromFloat(tx.Amount))
	}

	var (
		best      string
		bestTotal decimal.Decimal
		found     bool
	)
	for name, total := range totals {
		switch {
		case !found, total.GreaterThan(bestTotal):
		case total.Equal(bestTotal) && strings.Compare(name, best) < 0:
		default:
			continue
		}
		best, bestTotal, found = name, total, true
	}
	return best, found
}

func DeriveRecommendations(txs []Transaction) []string {
	recommendations := []string{RecommendTrackSpending, RecommendMonthlyBudget}
	for _, tx := range txs {
		if tx.Type == Expense {
			recommendations = append(recommendations, RecommendReviewExpensive)
			break
		}
	}
	return recommendations
}
