package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homescripts/internal/domain"
)

type published struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	sent   []published
	err    error
	closed bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func newTestPublisher(ch *fakeChannel) *RabbitMQ {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &RabbitMQ{
		channel:    ch,
		exchange:   "homescripts",
		routingKey: "events",
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        func() time.Time { return at },
	}
}

func TestPublishArticle(t *testing.T) {
	ch := &fakeChannel{}
	pub := newTestPublisher(ch)

	err := pub.PublishArticle(context.Background(), &domain.ArchivedArticle{
		NewsID:   "k10012345",
		Title:    "Test",
		HTMLPath: "/srv/news/x/k10012345.html",
	})
	require.NoError(t, err)
	require.Len(t, ch.sent, 1)

	sent := ch.sent[0]
	assert.Equal(t, "homescripts", sent.exchange)
	assert.Equal(t, "events", sent.key)
	assert.Equal(t, EventArticleArchived, sent.msg.Type)
	assert.Equal(t, "application/json", sent.msg.ContentType)
	assert.Equal(t, uint8(amqp.Persistent), sent.msg.DeliveryMode)

	var msg ArticleMessage
	require.NoError(t, json.Unmarshal(sent.msg.Body, &msg))
	assert.Equal(t, EventArticleArchived, msg.Event)
	assert.Equal(t, "k10012345", msg.Article.NewsID)
	assert.False(t, msg.Timestamp.IsZero())
}

func TestPublishChanges(t *testing.T) {
	ch := &fakeChannel{}
	pub := newTestPublisher(ch)

	err := pub.PublishChanges(context.Background(), []domain.RecordChange{
		{Domain: "example.com", RecordID: "1", RR: "@", NewValue: "2.2.2.2"},
		{Domain: "example.com", RecordID: "2", RR: "www", NewValue: "2.2.2.2"},
	})
	require.NoError(t, err)
	require.Len(t, ch.sent, 2)

	var msg RecordMessage
	require.NoError(t, json.Unmarshal(ch.sent[1].msg.Body, &msg))
	assert.Equal(t, EventRecordUpdated, msg.Event)
	assert.Equal(t, "www", msg.Change.RR)
}

func TestPublish_Error(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	pub := newTestPublisher(ch)

	err := pub.PublishChanges(context.Background(), []domain.RecordChange{{RecordID: "1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), EventRecordUpdated)
}

func TestClose(t *testing.T) {
	ch := &fakeChannel{}
	require.NoError(t, newTestPublisher(ch).Close())
	assert.True(t, ch.closed)
}
