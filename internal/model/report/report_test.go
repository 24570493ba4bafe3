package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	types "github.com/sukhendu-chakraborty/telegram-expense-bot/internal/model/bottypes"
)

func Test_FormatRecords_ShouldKeepOrderAndSum(t *testing.T) {
	recs := []types.ExpenseRecord{
		{UserID: 123, Date: "2024-01-05", Item: "Coffee", Amount: 50},
		{UserID: 123, Date: "2024-01-05", Item: "Lunch box", Amount: 120},
	}

	text, total := FormatRecords(recs)

	assert.Equal(t, "2024-01-05 - Coffee - ₹50\n2024-01-05 - Lunch box - ₹120", text)
	assert.Equal(t, int64(170), total)
}

func Test_FormatRecords_ShouldReturnEmptyOnNoRecords(t *testing.T) {
	text, total := FormatRecords(nil)

	assert.Equal(t, "", text)
	assert.Equal(t, int64(0), total)
}

func Test_GroupByMonth_ShouldSumPerMonthAndSortAscending(t *testing.T) {
	// Записи специально перемешаны: порядок выдачи хранилища не гарантируется.
	recs := []types.ExpenseRecord{
		{Date: "2024-02-11", Item: "Tea", Amount: 7},
		{Date: "2024-01-05", Item: "Coffee", Amount: 10},
		{Date: "2024-01-20", Item: "Snacks", Amount: 5},
	}

	totals, total := GroupByMonth(recs)

	assert.Equal(t, []types.MonthTotal{
		{Month: "2024-01", Sum: 15},
		{Month: "2024-02", Sum: 7},
	}, totals)
	assert.Equal(t, int64(22), total)
}

func Test_GroupByMonth_SumOfGroupsEqualsTotal(t *testing.T) {
	recs := []types.ExpenseRecord{
		{Date: "2023-12-31", Amount: 1},
		{Date: "2024-01-01", Amount: 2},
		{Date: "2024-01-31", Amount: 3},
		{Date: "2024-11-15", Amount: 4},
	}

	totals, total := GroupByMonth(recs)

	var groupSum int64
	for _, mt := range totals {
		groupSum += mt.Sum
	}
	assert.Equal(t, total, groupSum)
	assert.Equal(t, int64(10), total)
}

func Test_FormatMonthTotals_ShouldRenderLines(t *testing.T) {
	totals := []types.MonthTotal{
		{Month: "2024-01", Sum: 15},
		{Month: "2024-02", Sum: 7},
	}

	text := FormatMonthTotals(totals)

	assert.Equal(t, "2024-01 - ₹15\n2024-02 - ₹7", text)
}
