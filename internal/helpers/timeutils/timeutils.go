// Package timeutils Хелпер для операций с датами отчетных периодов.
package timeutils

import "time"

// DateLayout Формат хранения дат в записях о расходах.
// Ведущие нули обязательны: на них опирается префиксный отбор записей за месяц и год.
const DateLayout = "2006-01-02"

// FormatDate Функция возвращает дату в формате хранения (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekRange Функция возвращает границы отчетной недели: [t - 6 дней, t] включительно.
// Например, при t = "2022-10-16" функция вернет "2022-10-10" и "2022-10-16".
func WeekRange(t time.Time) (from string, to string) {
	return FormatDate(t.AddDate(0, 0, -6)), FormatDate(t)
}

// MonthPrefix Функция возвращает префикс дат текущего месяца указанной даты (YYYY-MM).
func MonthPrefix(t time.Time) string {
	return t.Format("2006-01")
}

// YearPrefix Функция возвращает префикс дат текущего года указанной даты (YYYY).
func YearPrefix(t time.Time) string {
	return t.Format("2006")
}

// MonthKey Функция возвращает ключ месяца (YYYY-MM) из даты в формате хранения.
func MonthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
