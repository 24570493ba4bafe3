// Сервис аудита: читает поток событий о расходах из кафки и пишет их в лог.
package main

import (
	"context"
	"encoding/json"
	"os/signal"
	"syscall"

	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/config"
	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/helpers/kafka"
	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/logger"
	types "github.com/sukhendu-chakraborty/telegram-expense-bot/internal/model/bottypes"
)

// Параметры по умолчанию (могут быть изменены через config)
var (
	kafkaTopic  = "expenses"                  // Наименование топика Kafka.
	brokersList = []string{"localhost:9092"}  // Список адресов брокеров сообщений (адрес Kafka).
)

func main() {

	logger.Info("[Audit service] Старт приложения")

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	defer cancel()

	config, err := config.New()
	if err != nil {
		logger.Fatal("[Audit service] Ошибка получения файла конфигурации:", "err", err)
	}

	// Изменение параметров по умолчанию из заданной конфигурации.
	setConfigSettings(config.GetConfig())

	// Инициализация кафки для получения сообщений из очереди.
	kafkaConsumer, err := kafka.NewConsumer(ctx, brokersList, kafkaTopic)
	if err != nil {
		logger.Fatal("[Audit service] Ошибка инициализации кафки:", "err", err)
	}

	// Запуск чтения сообщений из очереди.
	if err := kafkaConsumer.RunConsume(logExpenseEvent); err != nil {
		logger.Fatal("[Audit service] Ошибка чтения кафки:", "err", err)
	}

	<-ctx.Done()
	logger.Info("[Audit service] Завершение приложения")
}

// setConfigSettings Замена параметров по умолчанию параметрами из конфиг.файла.
func setConfigSettings(config config.Config) {
	if config.KafkaTopic != "" {
		kafkaTopic = config.KafkaTopic
	}
	if len(config.BrokersList) > 0 {
		brokersList = config.BrokersList
	}
}

// logExpenseEvent Обработка одного события о расходе из кафки.
// Некорректное событие логируется и пропускается: оно не должно
// блокировать чтение остального потока.
func logExpenseEvent(_ context.Context, key string, value string) error {
	if key == "" || value == "" {
		logger.Error("[Audit service] Сообщение кафка содержит пустой ключ или значение.")
		return nil
	}
	var rec types.ExpenseRecord
	if err := json.Unmarshal([]byte(value), &rec); err != nil {
		logger.Error("[Audit service] Сообщение кафка содержит некорректное событие.", "err", err)
		return nil
	}
	logger.Info("[Audit service] Расход записан",
		"user_id", rec.UserID,
		"date", rec.Date,
		"item", rec.Item,
		"amount", rec.Amount)
	return nil
}
