// Package storage - Выбор бэкенда хранения журнала расходов по конфигурации.
package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/helpers/dbutils"
	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/logger"
	types "github.com/sukhendu-chakraborty/telegram-expense-bot/internal/model/bottypes"
	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/model/db"
	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/model/mongodb"
)

// Ledger Интерфейс журнала расходов, единый для всех бэкендов.
type Ledger interface {
	InsertExpenseRecord(ctx context.Context, rec types.ExpenseRecord, userName string) error
	GetExpensesByDate(ctx context.Context, userID int64, date string) ([]types.ExpenseRecord, error)
	GetExpensesByDateRange(ctx context.Context, userID int64, from string, to string) ([]types.ExpenseRecord, error)
	GetExpensesByPrefix(ctx context.Context, userID int64, prefix string) ([]types.ExpenseRecord, error)
}

// CleanupFunc Функция освобождения ресурсов выбранного бэкенда.
type CleanupFunc func(ctx context.Context) error

// Config Параметры создания бэкенда.
type Config struct {
	Driver             string        // postgres или mongo (по умолчанию postgres).
	ConnectionStringDB string        // Строка подключения PostgreSQL.
	MongoURI           string        // Строка подключения MongoDB.
	MongoDatabase      string        // Имя базы данных MongoDB.
	ConnectAttempts    int           // Количество попыток подключения на старте.
	ConnectInterval    time.Duration // Интервал между попытками.
}

// NewLedger Создание журнала расходов по заданной конфигурации.
func NewLedger(ctx context.Context, cfg Config) (Ledger, CleanupFunc, error) {
	switch cfg.Driver {
	case "", "postgres":
		return newPostgresLedger(cfg)
	case "mongo":
		return newMongoLedger(ctx, cfg)
	default:
		return nil, nil, errors.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

func newPostgresLedger(cfg Config) (Ledger, CleanupFunc, error) {
	dbconn, err := dbutils.NewDBConnect(cfg.ConnectionStringDB, cfg.ConnectAttempts, cfg.ConnectInterval)
	if err != nil {
		return nil, nil, err
	}
	// Применение недостающих миграций схемы.
	if err := db.RunMigrations(dbconn); err != nil {
		return nil, nil, err
	}
	logger.Info("Хранилище инициализировано", "driver", "postgres")
	cleanup := func(context.Context) error {
		return dbconn.Close()
	}
	return db.NewExpenseStorage(dbconn), cleanup, nil
}

func newMongoLedger(ctx context.Context, cfg Config) (Ledger, CleanupFunc, error) {
	database := cfg.MongoDatabase
	if database == "" {
		database = "expense_bot"
	}
	mongoStorage, err := mongodb.NewExpenseStorage(ctx, cfg.MongoURI, database, cfg.ConnectAttempts, cfg.ConnectInterval)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Хранилище инициализировано", "driver", "mongo", "database", database)
	return mongoStorage, mongoStorage.Close, nil
}
