// Package logger Обертка над zap для логирования во всем приложении.
package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
)

// Глобальная переменная логгера (sugared-вариант для key/value пар).
var sugar *zap.SugaredLogger

// init Инициализация логгера.
// init будет выполнен один раз, независимо от количества импортов в разных местах приложения.
// Режим задается переменной окружения LOG_MODE (prod - продакшен, иначе - разработка).
func init() {
	var localLogger *zap.Logger
	var err error
	if os.Getenv("LOG_MODE") == "prod" {
		localLogger, err = zap.NewProduction()
	} else {
		localLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("Ошибка инициализации логгера zap", err)
	}
	sugar = localLogger.Sugar()
}

// Fatal - запись в лог, уровень Fatal.
func Fatal(msg string, keysAndValues ...interface{}) {
	sugar.Fatalw(msg, keysAndValues...)
}

// Error - запись в лог, уровень Error.
func Error(msg string, keysAndValues ...interface{}) {
	sugar.Errorw(msg, keysAndValues...)
}

// Warn - запись в лог, уровень Warn.
func Warn(msg string, keysAndValues ...interface{}) {
	sugar.Warnw(msg, keysAndValues...)
}

// Info - запись в лог, уровень Info.
func Info(msg string, keysAndValues ...interface{}) {
	sugar.Infow(msg, keysAndValues...)
}

// Debug - запись в лог, уровень Debug.
func Debug(msg string, keysAndValues ...interface{}) {
	sugar.Debugw(msg, keysAndValues...)
}
