package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/logger"
)

const configFile = "data/config.yaml"

type Config struct {
	Token              string   `yaml:"token"`              // Токен бота в телеграме.
	StorageDriver      string   `yaml:"StorageDriver"`      // Хранилище записей: postgres или mongo.
	ConnectionStringDB string   `yaml:"ConnectionStringDB"` // Строка подключения к базе данных PostgreSQL.
	MongoURI           string   `yaml:"MongoURI"`           // Строка подключения к MongoDB.
	MongoDatabase      string   `yaml:"MongoDatabase"`      // Имя базы данных MongoDB.
	TransportMode      string   `yaml:"TransportMode"`      // Режим получения сообщений: polling или webhook.
	WebhookURL         string   `yaml:"WebhookURL"`         // Внешний URL приложения для режима webhook.
	ListenAddr         string   `yaml:"ListenAddr"`         // Адрес HTTP-сервера для режима webhook.
	KafkaTopic         string   `yaml:"KafkaTopic"`         // Наименование топика Kafka для событий о расходах.
	BrokersList        []string `yaml:"BrokersList"`        // Список адресов брокеров сообщений (адрес Kafka).
	ReportCacheSize    int      `yaml:"ReportCacheSize"`    // Размер LRU-кэша отчетов.
	ConnectAttempts    int      `yaml:"ConnectAttempts"`    // Количество попыток подключения к хранилищу на старте.
	ConnectIntervalSec int      `yaml:"ConnectIntervalSec"` // Интервал между попытками подключения (в секундах).
}

type Service struct {
	config Config
}

// New Чтение файла конфигурации с наложением переменных окружения поверх.
// Файл .env (если присутствует) загружается в окружение до чтения переменных.
func New() (*Service, error) {
	s := &Service{}

	rawYAML, err := os.ReadFile(configFile)
	if err != nil {
		logger.Error("Ошибка reading config file", "err", err)
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		logger.Error("Ошибка parsing yaml", "err", err)
		return nil, errors.Wrap(err, "parsing yaml")
	}

	s.applyEnv()

	return s, nil
}

// applyEnv Замена параметров конфигурации значениями из переменных окружения.
// Перекрытие через окружение позволяет деплоить без правки конфиг-файла.
func (s *Service) applyEnv() {
	// Ошибка отсутствия .env не является проблемой: переменные могут быть заданы окружением напрямую.
	_ = godotenv.Load()

	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		s.config.Token = v
	}
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		s.config.StorageDriver = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		s.config.ConnectionStringDB = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		s.config.MongoURI = v
	}
	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		s.config.WebhookURL = v
		s.config.TransportMode = "webhook"
	}
	if v := os.Getenv("PORT"); v != "" {
		s.config.ListenAddr = "0.0.0.0:" + v
	}
}

func (s *Service) Token() string {
	return s.config.Token
}

func (s *Service) GetConfig() Config {
	return s.config
}
