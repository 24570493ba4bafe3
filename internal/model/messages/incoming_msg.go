package messages

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/helpers/timeutils"
	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/logger"
	types "github.com/sukhendu-chakraborty/telegram-expense-bot/internal/model/bottypes"
	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/model/report"
)

// Область "Константы и переменные": начало.

const (
	txtStart = "👋 Hi, *%v*! I'm your Expense Tracker Bot.\n\n" +
		"Send me your expenses like this:\n`Coffee 50`\nand I'll keep a record.\n\n" +
		"Commands:\n/today - Today's expenses\n/week - Last 7 days\n/month - Current month\n/year - Current year"
	txtUnknownCommand = "Unknown command. Send /start to see what I can do."
	txtFormatHint     = "⚠️ Format: Item Amount\nExample: Lunch 120"
	txtStorageError   = "😔 Could not save or read your data right now. Please try again."
	txtRecorded       = "✅ Recorded: %v - ₹%v"
	txtTotal          = "💰 *Total: ₹%v*"

	txtEmptyToday = "📭 No expenses today."
	txtEmptyWeek  = "📭 No expenses in the last 7 days."
	txtEmptyMonth = "📭 No expenses this month."
	txtEmptyYear  = "📭 No expenses this year."

	txtHeaderToday = "📅 *Today's Expenses:*"
	txtHeaderWeek  = "📅 *Last 7 Days Expenses:*"
	txtHeaderYear  = "📅 *Yearly Expenses (%v):*"
	// Заголовок месячного отчета содержит название месяца, например "January 2024".
	txtHeaderMonth = "📅 *%v Expenses:*"
)

// Кнопки отчетов, отображаемые после /start.
var btnStart = []types.TgRowButtons{
	{types.TgInlineButton{DisplayName: "Today", Value: "/today"}, types.TgInlineButton{DisplayName: "Last 7 days", Value: "/week"}},
	{types.TgInlineButton{DisplayName: "This month", Value: "/month"}, types.TgInlineButton{DisplayName: "This year", Value: "/year"}},
}

// Сумма расхода - последний токен строки, только цифры.
// Знак минуса или дробная часть делают токен нечисловым, запись отклоняется.
var amountRegexp = regexp.MustCompile(`^\d+$`)

// Область "Константы и переменные": конец.

// Область "Внешний интерфейс": начало.

// MessageSender Интерфейс для работы с сообщениями.
type MessageSender interface {
	SendMessage(text string, userID int64) error
	ShowInlineButtons(text string, buttons []types.TgRowButtons, userID int64) error
}

// ExpenseStorage Интерфейс для работы с журналом расходов.
type ExpenseStorage interface {
	InsertExpenseRecord(ctx context.Context, rec types.ExpenseRecord, userName string) error
	GetExpensesByDate(ctx context.Context, userID int64, date string) ([]types.ExpenseRecord, error)
	GetExpensesByDateRange(ctx context.Context, userID int64, from string, to string) ([]types.ExpenseRecord, error)
	GetExpensesByPrefix(ctx context.Context, userID int64, prefix string) ([]types.ExpenseRecord, error)
}

// LRUCache Интерфейс для работы с кэшем отчетов.
type LRUCache interface {
	Add(key string, value any)
	Get(key string) any
	Remove(key string)
}

// kafkaProducer Интерфейс для отправки событий о расходах в кафку.
type kafkaProducer interface {
	SendMessage(key string, value string) (partition int32, offset int64, err error)
	GetTopic() string
}

// Intent Распознанное намерение входящего сообщения (замкнутое множество).
type Intent string

const (
	IntentStart      Intent = "start"
	IntentToday      Intent = "today"
	IntentWeek       Intent = "week"
	IntentMonth      Intent = "month"
	IntentYear       Intent = "year"
	IntentAddExpense Intent = "add-expense"
	IntentUnknown    Intent = "unknown"
)

// ClassifyIntent Классификация входящего текста в одно из намерений.
// Любой текст без ведущего "/" считается попыткой записать расход.
func ClassifyIntent(text string) Intent {
	switch strings.TrimSpace(text) {
	case "/start":
		return IntentStart
	case "/today":
		return IntentToday
	case "/week":
		return IntentWeek
	case "/month":
		return IntentMonth
	case "/year":
		return IntentYear
	}
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return IntentUnknown
	}
	return IntentAddExpense
}

// Model Модель бота (клиент, журнал расходов, кэш отчетов, продюсер событий).
type Model struct {
	ctx           context.Context
	tgClient      MessageSender  // Клиент.
	ledger        ExpenseStorage // Журнал расходов.
	reportCache   LRUCache       // Кэш сформированных отчетов.
	kafkaProducer kafkaProducer  // Кафка (может быть nil - события отключены).
	dispatch      map[Intent]func(*Model, Message) error
	now           func() time.Time // Источник текущего времени (подменяется в тестах).
}

// New Генерация сущности для хранения клиента ТГ, журнала расходов и кэша отчетов.
func New(ctx context.Context, tgClient MessageSender, ledger ExpenseStorage, reportCache LRUCache, kafka kafkaProducer) *Model {
	m := &Model{
		ctx:           ctx,
		tgClient:      tgClient,
		ledger:        ledger,
		reportCache:   reportCache,
		kafkaProducer: kafka,
		now:           time.Now,
	}
	// Таблица диспетчеризации по намерениям.
	m.dispatch = map[Intent]func(*Model, Message) error{
		IntentStart:      (*Model).sendStart,
		IntentToday:      (*Model).sendTodayReport,
		IntentWeek:       (*Model).sendWeekReport,
		IntentMonth:      (*Model).sendMonthReport,
		IntentYear:       (*Model).sendYearReport,
		IntentAddExpense: (*Model).addExpense,
	}
	return m
}

// Message Структура сообщения для обработки.
type Message struct {
	Text            string
	UserID          int64
	UserName        string
	UserDisplayName string
	IsCallback      bool
	CallbackMsgID   string
}

func (s *Model) GetCtx() context.Context {
	return s.ctx
}

func (s *Model) SetCtx(ctx context.Context) {
	s.ctx = ctx
}

// IncomingMessage Обработка входящего сообщения: классификация и диспетчеризация.
// Любая ошибка обработки остается в рамках одного сообщения и не роняет процесс.
func (s *Model) IncomingMessage(msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(s.ctx, "IncomingMessage")
	s.ctx = ctx
	defer span.Finish()

	intent := ClassifyIntent(msg.Text)
	span.SetTag("intent", string(intent))

	handler, ok := s.dispatch[intent]
	if !ok {
		// Отправка ответа по умолчанию.
		return s.tgClient.SendMessage(txtUnknownCommand, msg.UserID)
	}
	return handler(s, msg)
}

// Область "Внешний интерфейс": конец.

// Область "Служебные функции": начало.

// Область "Запись расхода": начало.

// parseExpenseLine Парсинг строки "покупка сумма".
// Строка разбивается по пробельным символам: последний токен - сумма (только цифры),
// остальные токены - название покупки, склеенное одиночными пробелами.
func parseExpenseLine(line string) (item string, amount int64, err error) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return "", 0, errors.New("expected at least two tokens")
	}
	last := parts[len(parts)-1]
	if !amountRegexp.MatchString(last) {
		return "", 0, errors.New("amount token is not all-digit")
	}
	amount, err = strconv.ParseInt(last, 10, 64)
	if err != nil {
		return "", 0, errors.Wrap(err, "parse amount")
	}
	item = strings.Join(parts[:len(parts)-1], " ")
	return item, amount, nil
}

// addExpense Разбор строки расхода и добавление записи в журнал.
func (s *Model) addExpense(msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(s.ctx, "addExpense")
	s.ctx = ctx
	defer span.Finish()

	item, amount, err := parseExpenseLine(msg.Text)
	if err != nil {
		// Некорректный ввод: подсказка формата, запись не создается.
		return s.tgClient.SendMessage(txtFormatHint, msg.UserID)
	}

	rec := types.ExpenseRecord{
		UserID: msg.UserID,
		Date:   timeutils.FormatDate(s.now()),
		Item:   item,
		Amount: amount,
	}
	if err := s.ledger.InsertExpenseRecord(s.ctx, rec, msg.UserName); err != nil {
		logger.Error("Ошибка сохранения записи", "err", err)
		// Хранилище недоступно: просьба повторить позже, обработчик не падает.
		return s.tgClient.SendMessage(txtStorageError, msg.UserID)
	}

	// Сброс кэша отчетов пользователя: новая запись меняет все периоды.
	s.invalidateReportCache(msg.UserID)

	// Отправка события о расходе в кафку (если включена).
	s.publishExpenseEvent(rec)

	// Ответ пользователю об успешном сохранении.
	return s.tgClient.SendMessage(fmt.Sprintf(txtRecorded, rec.Item, rec.Amount), msg.UserID)
}

// publishExpenseEvent Отправка события о новой записи в кафку (fire-and-forget).
func (s *Model) publishExpenseEvent(rec types.ExpenseRecord) {
	if s.kafkaProducer == nil {
		return
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		logger.Error("Ошибка сериализации события", "err", err)
		return
	}
	p, o, err := s.kafkaProducer.SendMessage(strconv.FormatInt(rec.UserID, 10), string(payload))
	if err != nil {
		// Событие вспомогательное: ошибка отправки не влияет на ответ пользователю.
		logger.Error("Ошибка отправки события в кафку", "err", err)
		return
	}
	logger.Debug("Событие о расходе отправлено", "topic", s.kafkaProducer.GetTopic(), "partition", p, "offset", o)
}

// Область "Запись расхода": конец.

// Область "Формирование отчетов": начало.

// sendStart Отправка приветствия с подсказкой формата и кнопками отчетов.
func (s *Model) sendStart(msg Message) error {
	displayName := msg.UserDisplayName
	if len(displayName) == 0 {
		displayName = msg.UserName
	}
	return s.tgClient.ShowInlineButtons(fmt.Sprintf(txtStart, displayName), btnStart, msg.UserID)
}

// sendTodayReport Отчет за сегодняшнюю дату.
func (s *Model) sendTodayReport(msg Message) error {
	return s.sendListReport(msg, "today", timeutils.FormatDate(s.now()), txtHeaderToday, txtEmptyToday,
		func(ctx context.Context) ([]types.ExpenseRecord, error) {
			return s.ledger.GetExpensesByDate(ctx, msg.UserID, timeutils.FormatDate(s.now()))
		})
}

// sendWeekReport Отчет за последние 7 дней (включая сегодня).
// Отчетная неделя однозначно определяется своей правой границей (сегодня).
func (s *Model) sendWeekReport(msg Message) error {
	return s.sendListReport(msg, "week", timeutils.FormatDate(s.now()), txtHeaderWeek, txtEmptyWeek,
		func(ctx context.Context) ([]types.ExpenseRecord, error) {
			from, to := timeutils.WeekRange(s.now())
			return s.ledger.GetExpensesByDateRange(ctx, msg.UserID, from, to)
		})
}

// sendMonthReport Отчет за текущий месяц (префиксный отбор YYYY-MM).
func (s *Model) sendMonthReport(msg Message) error {
	header := fmt.Sprintf(txtHeaderMonth, s.now().Format("January 2006"))
	return s.sendListReport(msg, "month", timeutils.MonthPrefix(s.now()), header, txtEmptyMonth,
		func(ctx context.Context) ([]types.ExpenseRecord, error) {
			return s.ledger.GetExpensesByPrefix(ctx, msg.UserID, timeutils.MonthPrefix(s.now()))
		})
}

// sendListReport Общая часть дневного/недельного/месячного отчетов:
// кэш, выборка, различение пустого результата, форматирование, ответ.
func (s *Model) sendListReport(msg Message, periodKey string, periodStamp string, header string, emptyText string,
	query func(ctx context.Context) ([]types.ExpenseRecord, error)) error {

	span, ctx := opentracing.StartSpanFromContext(s.ctx, "sendListReport")
	span.SetTag("period", periodKey)
	s.ctx = ctx
	defer span.Finish()

	// Попытка получить сформированный отчет из кэша.
	cacheKey := reportCacheKey(msg.UserID, periodKey, periodStamp)
	if answerText, ok := s.cachedReport(cacheKey); ok {
		return s.tgClient.SendMessage(answerText, msg.UserID)
	}

	recs, err := query(s.ctx)
	if err != nil {
		logger.Error("Ошибка получения данных отчета", "err", err)
		return s.tgClient.SendMessage(txtStorageError, msg.UserID)
	}

	// Пустой результат - не ошибка, а отдельный исход.
	if len(recs) == 0 {
		return s.tgClient.SendMessage(emptyText, msg.UserID)
	}

	text, total := report.FormatRecords(recs)
	answerText := fmt.Sprintf("%v\n%v\n\n%v", header, text, fmt.Sprintf(txtTotal, total))
	s.reportCache.Add(cacheKey, answerText)
	return s.tgClient.SendMessage(answerText, msg.UserID)
}

// sendYearReport Годовой отчет: группировка по месяцам с сортировкой по ключу YYYY-MM.
func (s *Model) sendYearReport(msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(s.ctx, "sendYearReport")
	s.ctx = ctx
	defer span.Finish()

	yearPrefix := timeutils.YearPrefix(s.now())

	cacheKey := reportCacheKey(msg.UserID, "year", yearPrefix)
	if answerText, ok := s.cachedReport(cacheKey); ok {
		return s.tgClient.SendMessage(answerText, msg.UserID)
	}

	recs, err := s.ledger.GetExpensesByPrefix(s.ctx, msg.UserID, yearPrefix)
	if err != nil {
		logger.Error("Ошибка получения данных отчета", "err", err)
		return s.tgClient.SendMessage(txtStorageError, msg.UserID)
	}
	if len(recs) == 0 {
		return s.tgClient.SendMessage(txtEmptyYear, msg.UserID)
	}

	totals, total := report.GroupByMonth(recs)
	answerText := fmt.Sprintf("%v\n%v\n\n%v",
		fmt.Sprintf(txtHeaderYear, yearPrefix),
		report.FormatMonthTotals(totals),
		fmt.Sprintf(txtTotal, total))
	s.reportCache.Add(cacheKey, answerText)
	return s.tgClient.SendMessage(answerText, msg.UserID)
}

// Область "Формирование отчетов": конец.

// Область "Кэш отчетов": начало.

// reportCacheKey Ключ кэша отчетов: идентификатор пользователя + период + граница периода.
// Граница (дата, YYYY-MM или YYYY) входит в ключ, чтобы после смены даты
// отчет прошлого периода не был доступен по новому ключу, а старые записи
// естественно вытеснялись из LRU.
func reportCacheKey(userID int64, periodKey string, periodStamp string) string {
	return strconv.FormatInt(userID, 10) + periodKey + periodStamp
}

// cachedReport Попытка получить сформированный отчет из кэша.
func (s *Model) cachedReport(cacheKey string) (string, bool) {
	cacheValue := s.reportCache.Get(cacheKey)
	if cacheValue == nil {
		return "", false
	}
	answerText, ok := cacheValue.(string)
	if !ok {
		logger.Error("Ошибка приведения значения кэша к строке.")
		return "", false
	}
	return answerText, true
}

// invalidateReportCache Сброс закэшированных отчетов пользователя.
// Новая запись попадает только в текущие периоды, поэтому сбрасываются
// их ключи; отчеты прошлых периодов остаются и вытесняются LRU.
func (s *Model) invalidateReportCache(userID int64) {
	now := s.now()
	s.reportCache.Remove(reportCacheKey(userID, "today", timeutils.FormatDate(now)))
	s.reportCache.Remove(reportCacheKey(userID, "week", timeutils.FormatDate(now)))
	s.reportCache.Remove(reportCacheKey(userID, "month", timeutils.MonthPrefix(now)))
	s.reportCache.Remove(reportCacheKey(userID, "year", timeutils.YearPrefix(now)))
}

// Область "Кэш отчетов": конец.

// Область "Служебные функции": конец.
