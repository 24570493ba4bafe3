package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/cache"
	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/clients/tg"
	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/config"
	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/helpers/kafka"
	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/logger"
	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/metrics"
	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/model/messages"
	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/model/storage"
	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/tracing"
)

// Параметры по умолчанию (могут быть изменены через config)
var (
	storageDriver      = "postgres"        // Хранилище журнала расходов: postgres или mongo.
	connectionStringDB = ""                // Строка подключения к базе данных PostgreSQL.
	mongoURI           = ""                // Строка подключения к MongoDB.
	mongoDatabase      = "expense_bot"     // Имя базы данных MongoDB.
	transportMode      = "polling"         // Режим получения сообщений: polling или webhook.
	webhookURL         = ""                // Внешний URL приложения для режима webhook.
	listenAddr         = "0.0.0.0:5000"    // Адрес HTTP-сервера для режима webhook.
	kafkaTopic         = "expenses"        // Наименование топика Kafka для событий о расходах.
	brokersList        []string            // Список адресов брокеров сообщений (пустой - события отключены).
	reportCacheSize    = 100               // Размер LRU-кэша отчетов.
	connectAttempts    = 5                 // Количество попыток подключения к хранилищу на старте.
	connectInterval    = 3 * time.Second   // Интервал между попытками подключения.
)

func main() {

	logger.Info("Старт приложения")

	ctx := context.Background()

	config, err := config.New()
	if err != nil {
		logger.Fatal("Ошибка получения файла конфигурации:", "err", err)
	}

	// Изменение параметров по умолчанию из заданной конфигурации.
	setConfigSettings(config.GetConfig())

	// Оборачивание в Middleware функции обработки сообщения для метрик и трейсинга.
	tgProcessingFuncHandler := tg.HandlerFunc(tg.ProcessingMessages)
	tgProcessingFuncHandler = metrics.MetricsMiddleware(tgProcessingFuncHandler)
	tgProcessingFuncHandler = tracing.TracingMiddleware(tgProcessingFuncHandler)

	// Инициализация телеграм клиента.
	tgClient, err := tg.New(config, tgProcessingFuncHandler)
	if err != nil {
		logger.Fatal("Ошибка инициализации ТГ-клиента:", "err", err)
	}

	ctx, cancel := signal.NotifyContext(ctx,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	defer cancel()

	// Инициализация журнала расходов (подключение к выбранному хранилищу
	// с ограниченным числом попыток; при неудаче процесс не стартует).
	ledger, cleanup, err := storage.NewLedger(ctx, storage.Config{
		Driver:             storageDriver,
		ConnectionStringDB: connectionStringDB,
		MongoURI:           mongoURI,
		MongoDatabase:      mongoDatabase,
		ConnectAttempts:    connectAttempts,
		ConnectInterval:    connectInterval,
	})
	if err != nil {
		logger.Fatal("Ошибка подключения к хранилищу:", "err", err)
	}
	defer func() {
		if err := cleanup(ctx); err != nil {
			logger.Error("Ошибка освобождения хранилища:", "err", err)
		}
	}()

	// Инициализация кэша для кэширования отчетов пользователей.
	cacheLRU := cache.NewLRU(reportCacheSize)

	// Инициализация основной модели.
	// Кафка для событий о расходах опциональна: недоступный брокер не мешает работе бота.
	var msgModel *messages.Model
	if len(brokersList) > 0 {
		kafkaProducer, err := kafka.NewSyncProducer(brokersList, kafkaTopic)
		if err != nil {
			logger.Warn("Кафка недоступна, события о расходах отключены:", "err", err)
			msgModel = messages.New(ctx, tgClient, ledger, cacheLRU, nil)
		} else {
			msgModel = messages.New(ctx, tgClient, ledger, cacheLRU, kafkaProducer)
		}
	} else {
		msgModel = messages.New(ctx, tgClient, ledger, cacheLRU, nil)
	}

	// Запуск ТГ-клиента в выбранном режиме.
	if transportMode == "webhook" {
		if err := tgClient.ListenWebhook(webhookURL, listenAddr, msgModel); err != nil {
			logger.Fatal("Ошибка запуска webhook:", "err", err)
		}
	} else {
		tgClient.ListenUpdates(msgModel)
	}

	logger.Info("Завершение приложения")
}

// Замена параметров по умолчанию параметрами из конфиг.файла.
func setConfigSettings(config config.Config) {
	if config.StorageDriver != "" {
		storageDriver = config.StorageDriver
	}
	if config.ConnectionStringDB != "" {
		connectionStringDB = config.ConnectionStringDB
	}
	if config.MongoURI != "" {
		mongoURI = config.MongoURI
	}
	if config.MongoDatabase != "" {
		mongoDatabase = config.MongoDatabase
	}
	if config.TransportMode != "" {
		transportMode = config.TransportMode
	}
	if config.WebhookURL != "" {
		webhookURL = config.WebhookURL
	}
	if config.ListenAddr != "" {
		listenAddr = config.ListenAddr
	}
	if config.KafkaTopic != "" {
		kafkaTopic = config.KafkaTopic
	}
	if len(config.BrokersList) > 0 {
		brokersList = config.BrokersList
	}
	if config.ReportCacheSize > 0 {
		reportCacheSize = config.ReportCacheSize
	}
	if config.ConnectAttempts > 0 {
		connectAttempts = config.ConnectAttempts
	}
	if config.ConnectIntervalSec > 0 {
		connectInterval = time.Duration(config.ConnectIntervalSec) * time.Second
	}
}
