// Package report - Формирование сводок по записям журнала расходов.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/helpers/timeutils"
	types "github.com/sukhendu-chakraborty/telegram-expense-bot/internal/model/bottypes"
)

// FormatRecords Форматирование записей в текст отчета (дневной, недельный, месячный отчеты).
// Каждая запись выводится строкой "дата - покупка - сумма" в порядке получения,
// итог - сумма всех записей. Пустой вход дает пустой текст и нулевой итог:
// различение "нет данных" выполняет вызывающая сторона.
func FormatRecords(recs []types.ExpenseRecord) (string, int64) {
	var res strings.Builder
	var total int64
	for ind, rec := range recs {
		if ind > 0 {
			res.WriteString("\n")
		}
		res.WriteString(fmt.Sprintf("%v - %v - ₹%v", rec.Date, rec.Item, rec.Amount))
		total += rec.Amount
	}
	return res.String(), total
}

// GroupByMonth Группировка записей по месяцам для годового отчета.
// Ключ группы - первые 7 символов даты (YYYY-MM). Группы возвращаются
// отсортированными по ключу по возрастанию: для дат с ведущими нулями
// лексикографический порядок совпадает с хронологическим.
func GroupByMonth(recs []types.ExpenseRecord) ([]types.MonthTotal, int64) {
	monthSums := map[string]int64{}
	var total int64
	for _, rec := range recs {
		monthSums[timeutils.MonthKey(rec.Date)] += rec.Amount
		total += rec.Amount
	}

	totals := make([]types.MonthTotal, 0, len(monthSums))
	for month, sum := range monthSums {
		totals = append(totals, types.MonthTotal{Month: month, Sum: sum})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Month < totals[j].Month
	})
	return totals, total
}

// FormatMonthTotals Форматирование месячных итогов в текст годового отчета.
func FormatMonthTotals(totals []types.MonthTotal) string {
	var res strings.Builder
	for ind, mt := range totals {
		if ind > 0 {
			res.WriteString("\n")
		}
		res.WriteString(fmt.Sprintf("%v - ₹%v", mt.Month, mt.Sum))
	}
	return res.String()
}
