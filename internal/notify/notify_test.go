package notify

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/adapter/sms"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/config"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

type senderStub struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (s *senderStub) Send(ctx context.Context, to, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, to+": "+body)
	return s.err
}

type sinkStub struct {
	mu  sync.Mutex
	got []model.Notification
	err error
}

func (s *sinkStub) Deliver(ctx context.Context, n model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, n)
	return s.err
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestSMSSinkOnlyTextsRecipients(t *testing.T) {
	sender := &senderStub{}
	sink := SMSSink{Sender: sender}

	require.NoError(t, sink.Deliver(context.Background(), model.Notification{Message: "operator only"}))
	require.NoError(t, sink.Deliver(context.Background(), model.Notification{Message: "ready", Recipient: "+1555"}))
	assert.Equal(t, []string{"+1555: ready"}, sender.sent)
}

func TestLogSinkUsesSeverity(t *testing.T) {
	var buf bytes.Buffer
	sink := LogSink{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	require.NoError(t, sink.Deliver(context.Background(), model.Notification{Title: "Rack conflict", Message: "A1", Severity: model.SeverityError}))
	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"msg":"Rack conflict"`)
}

func TestDispatcherDeliversQueuedNotificationsOnStop(t *testing.T) {
	first, second := &sinkStub{}, &sinkStub{err: errors.New("boom")}
	d := NewDispatcher(8, discard(), first, second)

	d.Notify(context.Background(), model.Notification{Title: "a"})
	d.Start()
	d.Notify(context.Background(), model.Notification{Title: "b"})
	d.Stop()

	assert.Len(t, first.got, 2)
	assert.Len(t, second.got, 2)

	d.Notify(context.Background(), model.Notification{Title: "late"})
	assert.Len(t, first.got, 2)
	d.Stop()
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	var buf bytes.Buffer
	sink := &sinkStub{}
	d := NewDispatcher(1, slog.New(slog.NewJSONHandler(&buf, nil)), sink)

	d.Notify(context.Background(), model.Notification{Title: "kept"})
	d.Notify(context.Background(), model.Notification{Title: "dropped"})
	assert.True(t, strings.Contains(buf.String(), "queue full"))

	d.Start()
	d.Stop()
	require.Len(t, sink.got, 1)
	assert.Equal(t, "kept", sink.got[0].Title)
}

func TestDispatcherToleratesDisabledSMS(t *testing.T) {
	var buf bytes.Buffer
	d := NewDispatcher(4, slog.New(slog.NewJSONHandler(&buf, nil)), SMSSink{Sender: sms.NopSender{}})
	d.Start()
	d.Notify(context.Background(), model.Notification{Title: "ready", Recipient: "+1555"})
	d.Stop()
	assert.NotContains(t, buf.String(), "delivery failed")
}

func TestNewDispatcherFromConfig(t *testing.T) {
	sender := &senderStub{}
	d := newDispatcher(dispatcherParams{Config: &config.Config{NotifyQueueSize: 2}, Logger: discard(), Sender: sender})
	assert.Equal(t, 2, cap(d.queue))
	assert.Len(t, d.sinks, 2)

	d.Start()
	d.Notify(context.Background(), model.Notification{Title: "ready", Message: "pick up", Recipient: "+1555"})
	d.Stop()
	assert.Equal(t, []string{"+1555: pick up"}, sender.sent)
}
