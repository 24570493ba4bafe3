package bottypes

// Тип для записей о расходах.
// Date хранится строкой в формате YYYY-MM-DD (с ведущими нулями),
// поэтому лексикографический порядок дат совпадает с хронологическим.
type ExpenseRecord struct {
	UserID int64  `db:"user_id" bson:"user_id" json:"user_id"`
	Date   string `db:"date" bson:"date" json:"date"`
	Item   string `db:"item" bson:"item" json:"item"`
	Amount int64  `db:"amount" bson:"amount" json:"amount"`
}

// Тип для строк годового отчета (итог по месяцу).
type MonthTotal struct {
	Month string // Месяц в формате YYYY-MM.
	Sum   int64  // Сумма расходов за месяц.
}

// Типы для описания состава кнопок телеграм сообщения.
// Кнопка сообщения.
type TgInlineButton struct {
	DisplayName string
	Value       string
}

// Строка с кнопками сообщения.
type TgRowButtons []TgInlineButton
