// Package mongodb - Работа с журналом расходов в MongoDB.
package mongodb

// Альтернативный бэкенд хранения: документы вида {user_id, date, item, amount}.

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/logger"
	types "github.com/sukhendu-chakraborty/telegram-expense-bot/internal/model/bottypes"
)

const collectionName = "expenses"

// ExpenseStorage - Тип для хранилища записей о расходах в MongoDB.
type ExpenseStorage struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewExpenseStorage - Инициализация хранилища записей о расходах.
// Подключение выполняется с ограниченным числом попыток через фиксированный интервал:
// после исчерпания попыток возвращается последняя ошибка и процесс стартовать не должен.
func NewExpenseStorage(ctx context.Context, uri string, database string, attempts int, interval time.Duration) (*ExpenseStorage, error) {
	if attempts < 1 {
		attempts = 1
	}
	var client *mongo.Client
	var err error
	for i := 1; i <= attempts; i++ {
		client, err = connect(ctx, uri)
		if err == nil {
			return &ExpenseStorage{
				client:     client,
				collection: client.Database(database).Collection(collectionName),
			}, nil
		}
		logger.Warn("Ошибка соединения с MongoDB", "attempt", i, "of", attempts, "err", err)
		if i < attempts {
			time.Sleep(interval)
		}
	}
	return nil, errors.Wrap(err, "prepare mongodb connection")
}

// connect Одна попытка подключения с проверкой доступности сервера.
func connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// Close Отключение от базы данных.
func (storage *ExpenseStorage) Close(ctx context.Context) error {
	return storage.client.Disconnect(ctx)
}

// InsertExpenseRecord Добавление записи о расходе.
// Записи только добавляются, дубликаты допустимы. Имя пользователя
// не сохраняется: документ уже содержит идентификатор пользователя.
func (storage *ExpenseStorage) InsertExpenseRecord(ctx context.Context, rec types.ExpenseRecord, _ string) error {
	_, err := storage.collection.InsertOne(ctx, bson.M{
		"user_id": rec.UserID,
		"date":    rec.Date,
		"item":    rec.Item,
		"amount":  rec.Amount,
	})
	if err != nil {
		return errors.Wrap(err, "Insert expense record error")
	}
	return nil
}

// GetExpensesByDate Получение записей пользователя за конкретную дату (дневной отчет).
func (storage *ExpenseStorage) GetExpensesByDate(ctx context.Context, userID int64, date string) ([]types.ExpenseRecord, error) {
	return storage.find(ctx, bson.M{"user_id": userID, "date": date})
}

// GetExpensesByDateRange Получение записей пользователя за период [from, to] включительно (недельный отчет).
func (storage *ExpenseStorage) GetExpensesByDateRange(ctx context.Context, userID int64, from string, to string) ([]types.ExpenseRecord, error) {
	return storage.find(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lte": to},
	})
}

// GetExpensesByPrefix Получение записей пользователя по префиксу даты:
// YYYY-MM - месячный отчет, YYYY - годовой отчет.
func (storage *ExpenseStorage) GetExpensesByPrefix(ctx context.Context, userID int64, prefix string) ([]types.ExpenseRecord, error) {
	return storage.find(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$regex": "^" + prefix},
	})
}

// find Выполнение запроса выборки и чтение курсора в записи о расходах.
// Порядок записей в результате не гарантируется: сортирует вызывающая сторона при необходимости.
func (storage *ExpenseStorage) find(ctx context.Context, filter bson.M) ([]types.ExpenseRecord, error) {
	cursor, err := storage.collection.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "Get expense records error")
	}
	defer cursor.Close(ctx)

	var recs []types.ExpenseRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, errors.Wrap(err, "Decode expense records error")
	}
	return recs, nil
}
