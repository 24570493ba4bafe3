package db

import (
	"context"
	"reflect"
	"regexp"
	"testing"

	"github.com/pkg/errors"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"

	types "github.com/sukhendu-chakraborty/telegram-expense-bot/internal/model/bottypes"
)

func Test_ExpenseStorage_InsertUser(t *testing.T) {

	ctx := context.Background()
	db, mock, err := sqlxmock.Newx()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	s := NewExpenseStorage(db)

	tests := []struct {
		name     string
		s        *ExpenseStorage
		userID   int64
		userName string
		mock     func()
		wantErr  bool
	}{
		{
			name:     "Должно быть без ошибок",
			s:        s,
			userID:   15236,
			userName: "test user name",
			mock: func() {
				mock.ExpectExec("INSERT INTO users").
					WithArgs(15236, "test user name").WillReturnResult(sqlxmock.NewResult(0, 0))
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()
			err := tt.s.InsertUser(ctx, tt.userID, tt.userName)
			if (err != nil) != tt.wantErr {
				t.Errorf("Не совпало ожидание ошибки: InsertUser() error new = %v, wantErr %v", err, tt.wantErr)
				return
			}
		})
	}
}

func Test_ExpenseStorage_InsertExpenseRecord(t *testing.T) {

	ctx := context.Background()
	db, mock, err := sqlxmock.Newx()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	s := NewExpenseStorage(db)

	rec := types.ExpenseRecord{
		UserID: 15236,
		Date:   "2024-02-11",
		Item:   "Coffee",
		Amount: 50,
	}

	tests := []struct {
		name    string
		s       *ExpenseStorage
		rec     types.ExpenseRecord
		mock    func()
		wantErr bool
	}{
		{
			name: "Тест 1. Должно быть без ошибок (запись добавлена в транзакции).",
			s:    s,
			rec:  rec,
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO users").
					WithArgs(rec.UserID, "test user name").WillReturnResult(sqlxmock.NewResult(0, 0))
				mock.ExpectExec("INSERT INTO expenses").
					WithArgs(rec.Date, rec.Item, rec.Amount, rec.UserID).WillReturnResult(sqlxmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			wantErr: false,
		},
		{
			name: "Тест 2. Ошибка добавления записи (откат транзакции).",
			s:    s,
			rec:  rec,
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO users").
					WithArgs(rec.UserID, "test user name").WillReturnResult(sqlxmock.NewResult(0, 0))
				mock.ExpectExec("INSERT INTO expenses").
					WithArgs(rec.Date, rec.Item, rec.Amount, rec.UserID).
					WillReturnError(errors.New("db is down"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()
			err := tt.s.InsertExpenseRecord(ctx, tt.rec, "test user name")
			if (err != nil) != tt.wantErr {
				t.Errorf("Не совпало ожидание ошибки: InsertExpenseRecord() error new = %v, wantErr %v", err, tt.wantErr)
				return
			}
		})
	}
}

func Test_ExpenseStorage_GetExpensesByDate(t *testing.T) {

	ctx := context.Background()
	db, mock, err := sqlxmock.Newx()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	s := NewExpenseStorage(db)

	tests := []struct {
		name    string
		s       *ExpenseStorage
		userID  int64
		date    string
		mock    func()
		want    []types.ExpenseRecord
		wantErr bool
	}{
		{
			name:   "Тест 1. Должно быть без ошибок (записи на дату найдены).",
			s:      s,
			userID: 15236,
			date:   "2024-02-11",
			mock: func() {
				rows := sqlxmock.NewRows([]string{"tg_id", "date", "item", "amount"}).
					AddRow(15236, "2024-02-11", "Coffee", 50).
					AddRow(15236, "2024-02-11", "Lunch", 120)
				mock.ExpectQuery("SELECT u.tg_id, r.date, r.item, r.amount").
					WithArgs(15236, "2024-02-11").WillReturnRows(rows)
			},
			want: []types.ExpenseRecord{
				{UserID: 15236, Date: "2024-02-11", Item: "Coffee", Amount: 50},
				{UserID: 15236, Date: "2024-02-11", Item: "Lunch", Amount: 120},
			},
			wantErr: false,
		},
		{
			name:   "Тест 2. Должно быть без ошибок (записей на дату нет).",
			s:      s,
			userID: 15236,
			date:   "2024-02-12",
			mock: func() {
				rows := sqlxmock.NewRows([]string{"tg_id", "date", "item", "amount"})
				mock.ExpectQuery("SELECT u.tg_id, r.date, r.item, r.amount").
					WithArgs(15236, "2024-02-12").WillReturnRows(rows)
			},
			want:    []types.ExpenseRecord{},
			wantErr: false,
		},
		{
			name:   "Тест 3. Ошибка хранилища.",
			s:      s,
			userID: 15236,
			date:   "2024-02-11",
			mock: func() {
				mock.ExpectQuery("SELECT u.tg_id, r.date, r.item, r.amount").
					WithArgs(15236, "2024-02-11").WillReturnError(errors.New("db is down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()
			got, err := tt.s.GetExpensesByDate(ctx, tt.userID, tt.date)
			if (err != nil) != tt.wantErr {
				t.Errorf("Не совпало ожидание ошибки: GetExpensesByDate() error new = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Не совпало ожидание получаемого значения: GetExpensesByDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_ExpenseStorage_GetExpensesByDateRange(t *testing.T) {

	ctx := context.Background()
	db, mock, err := sqlxmock.Newx()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	s := NewExpenseStorage(db)

	tests := []struct {
		name    string
		s       *ExpenseStorage
		userID  int64
		from    string
		to      string
		mock    func()
		want    []types.ExpenseRecord
		wantErr bool
	}{
		{
			name:   "Тест 1. Должно быть без ошибок (границы периода включаются).",
			s:      s,
			userID: 15236,
			from:   "2024-02-05",
			to:     "2024-02-11",
			mock: func() {
				rows := sqlxmock.NewRows([]string{"tg_id", "date", "item", "amount"}).
					AddRow(15236, "2024-02-05", "Taxi", 300).
					AddRow(15236, "2024-02-11", "Coffee", 50)
				mock.ExpectQuery(regexp.QuoteMeta("r.date BETWEEN $2 AND $3")).
					WithArgs(15236, "2024-02-05", "2024-02-11").WillReturnRows(rows)
			},
			want: []types.ExpenseRecord{
				{UserID: 15236, Date: "2024-02-05", Item: "Taxi", Amount: 300},
				{UserID: 15236, Date: "2024-02-11", Item: "Coffee", Amount: 50},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()
			got, err := tt.s.GetExpensesByDateRange(ctx, tt.userID, tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Errorf("Не совпало ожидание ошибки: GetExpensesByDateRange() error new = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Не совпало ожидание получаемого значения: GetExpensesByDateRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_ExpenseStorage_GetExpensesByPrefix(t *testing.T) {

	ctx := context.Background()
	db, mock, err := sqlxmock.Newx()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	s := NewExpenseStorage(db)

	tests := []struct {
		name    string
		s       *ExpenseStorage
		userID  int64
		prefix  string
		mock    func()
		want    []types.ExpenseRecord
		wantErr bool
	}{
		{
			name:   "Тест 1. Месячный префикс YYYY-MM.",
			s:      s,
			userID: 15236,
			prefix: "2024-02",
			mock: func() {
				rows := sqlxmock.NewRows([]string{"tg_id", "date", "item", "amount"}).
					AddRow(15236, "2024-02-01", "Rent", 9000).
					AddRow(15236, "2024-02-11", "Coffee", 50)
				mock.ExpectQuery(regexp.QuoteMeta("r.date LIKE $2 || '%'")).
					WithArgs(15236, "2024-02").WillReturnRows(rows)
			},
			want: []types.ExpenseRecord{
				{UserID: 15236, Date: "2024-02-01", Item: "Rent", Amount: 9000},
				{UserID: 15236, Date: "2024-02-11", Item: "Coffee", Amount: 50},
			},
			wantErr: false,
		},
		{
			name:   "Тест 2. Годовой префикс YYYY.",
			s:      s,
			userID: 15236,
			prefix: "2024",
			mock: func() {
				rows := sqlxmock.NewRows([]string{"tg_id", "date", "item", "amount"}).
					AddRow(15236, "2024-01-15", "Book", 400).
					AddRow(15236, "2024-02-11", "Coffee", 50)
				mock.ExpectQuery(regexp.QuoteMeta("r.date LIKE $2 || '%'")).
					WithArgs(15236, "2024").WillReturnRows(rows)
			},
			want: []types.ExpenseRecord{
				{UserID: 15236, Date: "2024-01-15", Item: "Book", Amount: 400},
				{UserID: 15236, Date: "2024-02-11", Item: "Coffee", Amount: 50},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()
			got, err := tt.s.GetExpensesByPrefix(ctx, tt.userID, tt.prefix)
			if (err != nil) != tt.wantErr {
				t.Errorf("Не совпало ожидание ошибки: GetExpensesByPrefix() error new = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Не совпало ожидание получаемого значения: GetExpensesByPrefix() = %v, want %v", got, tt.want)
			}
		})
	}
}
