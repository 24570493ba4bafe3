// Package db - Работа с хранилищами (базой данных).
package db

// Работа с журналом расходов в PostgreSQL.

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/helpers/dbutils"
	types "github.com/sukhendu-chakraborty/telegram-expense-bot/internal/model/bottypes"
)

// ExpenseRecordDB - Тип, принимающий структуру строк журнала расходов.
type ExpenseRecordDB struct {
	UserID int64  `db:"tg_id"`
	Date   string `db:"date"`
	Item   string `db:"item"`
	Amount int64  `db:"amount"`
}

// ExpenseStorage - Тип для хранилища записей о расходах.
type ExpenseStorage struct {
	db *sqlx.DB
}

// NewExpenseStorage - Инициализация хранилища записей о расходах.
// db - *sqlx.DB - ссылка на подключение к БД.
func NewExpenseStorage(db *sqlx.DB) *ExpenseStorage {
	return &ExpenseStorage{
		db: db,
	}
}

// InsertUser Добавление пользователя в базу данных (если еще не существует).
func (storage *ExpenseStorage) InsertUser(ctx context.Context, userID int64, userName string) error {
	// Запрос на добавление данных.
	const sqlString = `
		INSERT INTO users (tg_id, name)
			VALUES ($1, $2)
			 ON CONFLICT (tg_id) DO NOTHING;`

	// Выполнение запроса на добавление данных.
	if _, err := dbutils.Exec(ctx, storage.db, sqlString, userID, userName); err != nil {
		return err
	}
	return nil
}

// InsertExpenseRecord Добавление записи о расходе (в транзакции с регистрацией пользователя).
// Записи только добавляются: путей обновления и удаления в журнале нет.
func (storage *ExpenseStorage) InsertExpenseRecord(ctx context.Context, rec types.ExpenseRecord, userName string) error {
	// Запуск транзакции.
	err := dbutils.RunTx(ctx, storage.db,
		// Функция, выполняемая внутри транзакции.
		// Если функция вернет ошибку, произойдет откат транзакции.
		func(tx *sqlx.Tx) error {
			return insertExpenseRecordTx(ctx, tx, rec, userName)
		})
	if err != nil {
		return errors.Wrap(err, "Insert expense record error")
	}
	return nil
}

// GetExpensesByDate Получение записей пользователя за конкретную дату (дневной отчет).
func (storage *ExpenseStorage) GetExpensesByDate(ctx context.Context, userID int64, date string) ([]types.ExpenseRecord, error) {
	// Отбор записей по пользователю на указанную дату.
	const sqlString = `
		SELECT u.tg_id, r.date, r.item, r.amount
		FROM expenses AS r
			INNER JOIN users AS u
				ON r.user_id = u.id
		WHERE u.tg_id = $1 AND r.date = $2;`

	return storage.selectRecords(ctx, sqlString, userID, date)
}

// GetExpensesByDateRange Получение записей пользователя за период [from, to] включительно (недельный отчет).
func (storage *ExpenseStorage) GetExpensesByDateRange(ctx context.Context, userID int64, from string, to string) ([]types.ExpenseRecord, error) {
	// Отбор записей по пользователю за указанный диапазон дат.
	// Сравнение строковое: даты с ведущими нулями упорядочены лексикографически.
	const sqlString = `
		SELECT u.tg_id, r.date, r.item, r.amount
		FROM expenses AS r
			INNER JOIN users AS u
				ON r.user_id = u.id
		WHERE u.tg_id = $1 AND r.date BETWEEN $2 AND $3;`

	return storage.selectRecords(ctx, sqlString, userID, from, to)
}

// GetExpensesByPrefix Получение записей пользователя по префиксу даты:
// YYYY-MM - месячный отчет, YYYY - годовой отчет.
func (storage *ExpenseStorage) GetExpensesByPrefix(ctx context.Context, userID int64, prefix string) ([]types.ExpenseRecord, error) {
	// Отбор записей по пользователю по префиксу даты.
	const sqlString = `
		SELECT u.tg_id, r.date, r.item, r.amount
		FROM expenses AS r
			INNER JOIN users AS u
				ON r.user_id = u.id
		WHERE u.tg_id = $1 AND r.date LIKE $2 || '%';`

	return storage.selectRecords(ctx, sqlString, userID, prefix)
}

// selectRecords Выполнение запроса выборки и преобразование строк БД в записи о расходах.
// Порядок записей в результате не гарантируется: сортирует вызывающая сторона при необходимости.
func (storage *ExpenseStorage) selectRecords(ctx context.Context, sqlString string, args ...any) ([]types.ExpenseRecord, error) {
	var recs []ExpenseRecordDB
	// Выполнение запроса на выборку данных (запись в переменную recs).
	if err := dbutils.Select(ctx, storage.db, &recs, sqlString, args...); err != nil {
		return nil, errors.Wrap(err, "Get expense records error")
	}

	result := make([]types.ExpenseRecord, len(recs))
	for ind, rec := range recs {
		result[ind] = types.ExpenseRecord{
			UserID: rec.UserID,
			Date:   rec.Date,
			Item:   rec.Item,
			Amount: rec.Amount,
		}
	}
	return result, nil
}

// insertExpenseRecordTx Функция добавления записи о расходе, выполняемая внутри транзакции (tx).
func insertExpenseRecordTx(ctx context.Context, tx *sqlx.Tx, rec types.ExpenseRecord, userName string) error {
	// Регистрация пользователя при первой записи.
	const sqlUser = `
		INSERT INTO users (tg_id, name)
			VALUES ($1, $2)
			 ON CONFLICT (tg_id) DO NOTHING;`

	if _, err := dbutils.Exec(ctx, tx, sqlUser, rec.UserID, userName); err != nil {
		// Ошибка выполнения запроса (вызовет откат транзакции).
		return err
	}

	// Запрос на добавление записи. Ограничений уникальности нет: дубликаты допустимы.
	const sqlRecord = `
		INSERT INTO expenses (user_id, date, item, amount)
			(SELECT id, :date, :item, :amount FROM users WHERE users.tg_id = :tg_id);`

	// Именованные параметры запроса.
	args := map[string]any{
		"tg_id":  rec.UserID,
		"date":   rec.Date,
		"item":   rec.Item,
		"amount": rec.Amount,
	}

	// Запуск на выполнение запроса с именованными параметрами.
	if _, err := dbutils.NamedExec(ctx, tx, sqlRecord, args); err != nil {
		// Ошибка выполнения запроса (вызовет откат транзакции).
		return err
	}
	return nil
}
