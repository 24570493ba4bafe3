package metrics

import (
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/clients/tg"
	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/logger"
	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/model/messages"
)

type TgHandler interface {
	RunFunc(tgUpdate tgbotapi.Update, c *tg.Client, msgModel *messages.Model)
}

// Метрики.
var (
	MessagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tg",
		Subsystem: "messages",
		Name:      "messages_total", // Общее количество сообщений.
	})
	SummaryResponseTime = promauto.NewSummary(prometheus.SummaryOpts{
		Namespace: "tg",
		Subsystem: "messages",
		Name:      "summary_response_time_seconds", // Время обработки сообщений.
		Objectives: map[float64]float64{
			0.5:  0.1,
			0.9:  0.01,
			0.99: 0.001,
		},
	})
	HistogramResponseTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tg",
			Subsystem: "messages",
			Name:      "histogram_response_time_seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"cmd"},
	)
)

var labels []string

func init() {
	labels = []string{"start", "today", "week", "month", "year"}
	// Для просмотра значений метрик по адресу http://127.0.0.1:8080/metrics
	// Метрики обслуживает собственный mux: пути webhook-сервера бота сюда не попадают.
	logger.Info("Старт сервиса метрик.")
	go func() {
		err := http.ListenAndServe("0.0.0.0:8080", newMetricsMux())
		if err != nil {
			logger.Error("Metrics public error", "err", err)
		}
	}()
}

// newMetricsMux Маршрутизация HTTP-сервера метрик: единственный путь /metrics.
func newMetricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// MetricsMiddleware Функция сбора метрик.
func MetricsMiddleware(next tg.HandlerFunc) tg.HandlerFunc {

	handler := tg.HandlerFunc(func(tgUpdate tgbotapi.Update, c *tg.Client, msgModel *messages.Model) {

		// Подсчет количества сообщений.
		MessagesTotal.Inc()

		// Сохранение времени начала обработки сообщения.
		startTime := time.Now()
		// Выполнение процесса обработки сообщения.
		next.RunFunc(tgUpdate, c, msgModel)
		// Расчет продолжительности обработки сообщения.
		duration := time.Since(startTime)

		// Сохранение метрик продолжительности обработки.
		SummaryResponseTime.Observe(duration.Seconds())

		// Определение команды для сохранения в метрике.
		// Текст без команды считается попыткой записать расход.
		cmd := "expense"
		msg := ""
		if tgUpdate.Message == nil {
			if tgUpdate.CallbackQuery != nil {
				msg = tgUpdate.CallbackQuery.Data
			}
		} else {
			msg = tgUpdate.Message.Text
		}
		if strings.HasPrefix(msg, "/") {
			cmd = "none"
			for _, lbl := range labels {
				if msg == "/"+lbl {
					cmd = lbl
					break
				}
			}
		}
		HistogramResponseTime.
			WithLabelValues(cmd).
			Observe(duration.Seconds())

	})

	return handler
}
