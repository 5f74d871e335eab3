package analytics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func exampleTransactions(t *testing.T) []Transaction {
	t.Helper()
	return []Transaction{
		newTx(t, 100, Income, "SALARY", "2024-01-05"),
		newTx(t, 40, Expense, "FOOD", "2024-01-10"),
	}
}

func mixedTransactions(t *testing.T) []Transaction {
	t.Helper()
	return []Transaction{
		newTx(t, 1200.50, Income, "SALARY", "2024-02-01"),
		newTx(t, 45.25, Expense, "FOOD", "2024-02-03"),
		newTx(t, 600, Expense, "RENT", "2024-02-01"),
		newTx(t, 300.10, Income, "BUSINESS", "2024-02-14"),
		newTx(t, 12.75, Expense, "FOOD", "2024-02-20"),
		newTx(t, 80, Expense, "TRAVEL", "2024-02-20"),
		newTx(t, 99.99, Income, "SALARY", "2024-02-28"),
	}
}

func totalOf(txs []Transaction, txType TransactionType) float64 {
	total := 0.0
	for _, tx := range txs {
		if tx.Type == txType {
			total += tx.Amount
		}
	}
	return total
}

// -- CategoryTotals tests --

func TestCategoryTotals_FirstAppearanceOrder(t *testing.T) {
	txs := []Transaction{
		newTx(t, 10, Expense, "RENT", "2024-01-01"),
		newTx(t, 5, Expense, "FOOD", "2024-01-02"),
		newTx(t, 50, Income, "SALARY", "2024-01-03"),
		newTx(t, 7, Expense, "RENT", "2024-01-04"),
	}

	breakdown := CategoryTotals(txs, DefaultVisibility())

	assert.Equal(t, []CategoryTotal{{Name: "RENT", Value: 17}, {Name: "FOOD", Value: 5}}, breakdown.Expense)
	assert.Equal(t, []CategoryTotal{{Name: "SALARY", Value: 50}}, breakdown.Income)
	assert.True(t, breakdown.HasData())
}

func TestCategoryTotals_SumsMatchTypeTotals(t *testing.T) {
	txs := mixedTransactions(t)
	breakdown := CategoryTotals(txs, DefaultVisibility())

	incomeSum, expenseSum := 0.0, 0.0
	for _, c := range breakdown.Income {
		incomeSum += c.Value
	}
	for _, c := range breakdown.Expense {
		expenseSum += c.Value
	}

	assert.InDelta(t, totalOf(txs, Income), incomeSum, 1e-9)
	assert.InDelta(t, totalOf(txs, Expense), expenseSum, 1e-9)
}

func TestCategoryTotals_RespectsVisibility(t *testing.T) {
	txs := mixedTransactions(t)

	onlyExpense := CategoryTotals(txs, Visibility{ShowExpense: true})
	assert.Nil(t, onlyExpense.Income)
	assert.Len(t, onlyExpense.Expense, 3)

	none := CategoryTotals(txs, Visibility{})
	assert.False(t, none.HasData())
}

func TestCategoryTotals_Empty(t *testing.T) {
	breakdown := CategoryTotals(nil, DefaultVisibility())
	assert.Empty(t, breakdown.Income)
	assert.Empty(t, breakdown.Expense)
	assert.False(t, breakdown.HasData())
}

// -- RunningBalance tests --

func TestRunningBalance_Example(t *testing.T) {
	points := RunningBalance(exampleTransactions(t), DefaultVisibility())

	assert.Equal(t, []BalancePoint{
		{Date: "2024-01-05", Balance: 100},
		{Date: "2024-01-10", Balance: 60},
	}, points)
}

func TestRunningBalance_SortsByDate(t *testing.T) {
	txs := []Transaction{
		newTx(t, 40, Expense, "FOOD", "2024-01-10"),
		newTx(t, 100, Income, "SALARY", "2024-01-05"),
	}

	points := RunningBalance(txs, DefaultVisibility())
	assert.Equal(t, "2024-01-05", points[0].Date)
	assert.Equal(t, 60.0, points[1].Balance)
}

func TestRunningBalance_FinalEqualsIncomeMinusExpense(t *testing.T) {
	txs := mixedTransactions(t)
	points := RunningBalance(txs, DefaultVisibility())

	assert.Len(t, points, len(txs))
	assert.InDelta(t, totalOf(txs, Income)-totalOf(txs, Expense), points[len(points)-1].Balance, 1e-9)
}

func TestRunningBalance_HiddenSeriesKeepsPointCount(t *testing.T) {
	txs := mixedTransactions(t)

	incomeOnly := RunningBalance(txs, Visibility{ShowIncome: true})
	assert.Len(t, incomeOnly, len(txs))
	assert.InDelta(t, totalOf(txs, Income), incomeOnly[len(incomeOnly)-1].Balance, 1e-9)

	expenseOnly := RunningBalance(txs, Visibility{ShowExpense: true})
	assert.Len(t, expenseOnly, len(txs))
	assert.InDelta(t, -totalOf(txs, Expense), expenseOnly[len(expenseOnly)-1].Balance, 1e-9)
}

func TestRunningBalance_StableOnEqualDates(t *testing.T) {
	txs := []Transaction{
		newTx(t, 10, Income, "A", "2024-01-01"),
		newTx(t, 3, Expense, "B", "2024-01-01"),
		newTx(t, 5, Income, "C", "2024-01-01"),
	}

	points := RunningBalance(txs, DefaultVisibility())
	assert.Equal(t, []float64{10, 7, 12}, []float64{points[0].Balance, points[1].Balance, points[2].Balance})
}

func TestRunningBalance_BothHiddenOrEmpty(t *testing.T) {
	assert.Empty(t, RunningBalance(mixedTransactions(t), Visibility{}))
	assert.Empty(t, RunningBalance(nil, DefaultVisibility()))
}

// -- Insights tests --

func TestDeriveInsights_Example(t *testing.T) {
	insights := DeriveInsights(exampleTransactions(t))

	assert.Equal(t, []string{
		InsightSaving,
		"Your biggest expense category is FOOD.",
		InsightExcellentRate,
	}, insights)
}

func TestDeriveInsights_Empty(t *testing.T) {
	assert.Equal(t, []string{InsightNotSaving}, DeriveInsights(nil))
	assert.Equal(t, Totals{}, ComputeTotals(nil))
}

func TestDeriveInsights_ModerateSavingsRate(t *testing.T) {
	txs := []Transaction{
		newTx(t, 100, Income, "SALARY", "2024-01-01"),
		newTx(t, 70, Expense, "RENT", "2024-01-02"),
	}

	// exactly 30% is not above the threshold
	assert.Equal(t, []string{
		InsightSaving,
		"Your biggest expense category is RENT.",
		InsightImproveRate,
	}, DeriveInsights(txs))
}

func TestDeriveInsights_Overspending(t *testing.T) {
	txs := []Transaction{
		newTx(t, 100, Income, "SALARY", "2024-01-01"),
		newTx(t, 150, Expense, "TRAVEL", "2024-01-02"),
	}

	assert.Equal(t, []string{
		InsightNotSaving,
		"Your biggest expense category is TRAVEL.",
	}, DeriveInsights(txs))
}

func TestDeriveInsights_TiesBreakOnName(t *testing.T) {
	txs := []Transaction{
		newTx(t, 20, Expense, "RENT", "2024-01-01"),
		newTx(t, 20, Expense, "FOOD", "2024-01-02"),
	}

	insights := DeriveInsights(txs)
	assert.Contains(t, insights, "Your biggest expense category is FOOD.")
}

func TestDeriveInsights_OrderIndependent(t *testing.T) {
	txs := mixedTransactions(t)
	want := DeriveInsights(txs)
	wantTotals := ComputeTotals(txs)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]Transaction(nil), txs...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		assert.Equal(t, want, DeriveInsights(shuffled))
		assert.Equal(t, wantTotals, ComputeTotals(shuffled))
	}
}

func TestComputeTotals(t *testing.T) {
	totals := ComputeTotals(exampleTransactions(t))

	assert.Equal(t, Totals{Income: 100, Expense: 40, Balance: 60, SavingsRate: 60, Count: 2}, totals)
}

func TestComputeTotals_RoundsSavingsRate(t *testing.T) {
	txs := []Transaction{
		newTx(t, 3, Income, "SALARY", "2024-01-01"),
		newTx(t, 2, Expense, "FOOD", "2024-01-01"),
	}

	assert.Equal(t, 33.3, ComputeTotals(txs).SavingsRate)
}

func TestDeriveRecommendations(t *testing.T) {
	assert.Equal(t, []string{RecommendTrackSpending, RecommendMonthlyBudget}, DeriveRecommendations(nil))

	onlyIncome := []Transaction{newTx(t, 1, Income, "SALARY", "2024-01-01")}
	assert.Len(t, DeriveRecommendations(onlyIncome), 2)

	assert.Equal(t, []string{
		RecommendTrackSpending,
		RecommendMonthlyBudget,
		RecommendReviewExpensive,
	}, DeriveRecommendations(exampleTransactions(t)))
}
