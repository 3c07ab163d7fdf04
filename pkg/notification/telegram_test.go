package notification

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/raykavin/dexscout/pkg/core"
	"github.com/raykavin/dexscout/pkg/logger/zerolog"
	"github.com/stretchr/testify/require"
)

const testToken = "123456:TEST"

// fakeBotAPI records sendMessage payloads and fails the calls listed in failOn.
type fakeBotAPI struct {
	mu       sync.Mutex
	payloads []map[string]string
	paths    []string
	failOn   map[int]bool
}

func (f *fakeBotAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	payload := map[string]string{}
	_ = json.NewDecoder(r.Body).Decode(&payload)
	f.paths = append(f.paths, r.URL.Path)
	f.payloads = append(f.payloads, payload)

	w.Header().Set("Content-Type", "application/json")
	if f.failOn[len(f.payloads)] {
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
		return
	}

	w.Write([]byte(`{"ok":true,"result":{"message_id":` + strconv.Itoa(len(f.payloads)) +
		`,"date":1700000000,"chat":{"id":42,"type":"private"},"text":"ok"}}`))
}

func newTestTelegram(t *testing.T, api *fakeBotAPI, chatID string) *Telegram {
	t.Helper()

	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	telegram, err := NewTelegram(
		core.TelegramSettings{Token: testToken, ChatID: chatID},
		zerolog.NewNop(),
		WithAPIURL(server.URL),
		WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)
	return telegram
}

// countingNotifier stops accepting records after failAt deliveries.
type countingNotifier struct {
	sent   []core.Record
	failAt int
}

func (c *countingNotifier) Notify(record core.Record) error {
	if len(c.sent)+1 == c.failAt {
		return &core.DeliveryError{Token: record.Name, Err: errors.New("rate limited")}
	}
	c.sent = append(c.sent, record)
	return nil
}

func TestFormatMessage(t *testing.T) {
	record := core.Record{Name: "FooCoin", ContractAddress: "0xABC", Description: "Price: 1.00 USD, Volume: 2.00"}
	require.Equal(t, "Token: FooCoin\nCA: 0xABC\nDescription: Price: 1.00 USD, Volume: 2.00", FormatMessage(record))
}

func TestNewTelegram_MissingConfiguration(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	_, err := NewTelegram(core.TelegramSettings{ChatID: "42"}, zerolog.NewNop(), WithAPIURL(server.URL))

	var configErr *core.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	require.Equal(t, []string{core.EnvTelegramToken}, configErr.Missing)
	require.Zero(t, calls)

	_, err = NewTelegram(core.TelegramSettings{Token: testToken}, zerolog.NewNop(), WithAPIURL(server.URL))
	require.Equal(t, core.KindConfiguration, core.KindOf(err))
	require.Zero(t, calls)
}

func TestTelegram_Notify(t *testing.T) {
	api := &fakeBotAPI{}
	telegram := newTestTelegram(t, api, "42")

	err := telegram.Notify(core.Record{Name: "FooCoin", ContractAddress: "0xABC", Description: "Price: 1.00 USD, Volume: 2.00"})
	require.NoError(t, err)

	require.Len(t, api.payloads, 1)
	require.Equal(t, "/bot"+testToken+"/sendMessage", api.paths[0])
	require.Equal(t, "42", api.payloads[0]["chat_id"])
	require.Equal(t, "Token: FooCoin\nCA: 0xABC\nDescription: Price: 1.00 USD, Volume: 2.00", api.payloads[0]["text"])
	require.Empty(t, api.payloads[0]["parse_mode"])
}

func TestTelegram_NotifyChannelUsername(t *testing.T) {
	api := &fakeBotAPI{}
	telegram := newTestTelegram(t, api, "@dexalerts")

	require.NoError(t, telegram.Notify(core.Record{Name: "FooCoin"}))
	require.Equal(t, "@dexalerts", api.payloads[0]["chat_id"])
}

func TestTelegram_NotifyDeliveryError(t *testing.T) {
	api := &fakeBotAPI{failOn: map[int]bool{1: true}}
	telegram := newTestTelegram(t, api, "42")

	err := telegram.Notify(core.Record{Name: "FooCoin"})

	var deliveryErr *core.DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	require.Equal(t, "FooCoin", deliveryErr.Token)
	require.Contains(t, err.Error(), "chat not found")
}

func TestTelegram_NotifyUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	telegram, err := NewTelegram(core.TelegramSettings{Token: testToken, ChatID: "42"}, zerolog.NewNop(), WithAPIURL(url))
	require.NoError(t, err)

	err = telegram.Notify(core.Record{Name: "FooCoin"})
	require.Equal(t, core.KindDelivery, core.KindOf(err))
	require.NotContains(t, err.Error(), testToken)
}

func TestTelegram_NotifyUnreachableHidesToken(t *testing.T) {
	const secret = "123456:SECRET"

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	telegram, err := NewTelegram(core.TelegramSettings{Token: secret, ChatID: "42"}, zerolog.NewNop(), WithAPIURL(url))
	require.NoError(t, err)

	err = telegram.Notify(core.Record{Name: "FooCoin"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to send telegram message for FooCoin")
	require.NotContains(t, err.Error(), secret)
	require.NotContains(t, err.Error(), "/bot")
}

func TestTelegram_RedactToken(t *testing.T) {
	telegram := &Telegram{token: testToken}

	err := telegram.redact(errors.New("proxy rejected /bot" + testToken + "/sendMessage"))
	require.Equal(t, "proxy rejected /bot<redacted>/sendMessage", err.Error())

	cause := errors.New("chat not found")
	require.Same(t, cause, telegram.redact(cause))
}

func TestNotifyAll_StopsAtFirstFailure(t *testing.T) {
	records := core.Records{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"}}
	notifier := &countingNotifier{failAt: 2}

	sent, err := NotifyAll(notifier, records)
	require.Equal(t, core.KindDelivery, core.KindOf(err))
	require.Equal(t, 1, sent)
	require.Equal(t, core.Records{{Name: "A"}}, core.Records(notifier.sent))
}

func TestNotifyAll_InOrder(t *testing.T) {
	api := &fakeBotAPI{failOn: map[int]bool{2: true}}
	telegram := newTestTelegram(t, api, "42")

	records := core.Records{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	sent, err := NotifyAll(telegram, records)
	require.Error(t, err)
	require.Equal(t, 1, sent)

	// the failing second call is the last one the API sees
	require.Len(t, api.payloads, 2)
	require.Contains(t, api.payloads[0]["text"], "Token: A")
	require.Contains(t, api.payloads[1]["text"], "Token: B")
}

func TestNotifyAll_Empty(t *testing.T) {
	notifier := &countingNotifier{}
	sent, err := NotifyAll(notifier, nil)
	require.NoError(t, err)
	require.Zero(t, sent)
	require.Empty(t, notifier.sent)
}
