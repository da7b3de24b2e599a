package jetstream

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchos/curve-engine/internal/domain"
	"github.com/launchos/curve-engine/internal/logger"
	"github.com/launchos/curve-engine/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestPublisher(t *testing.T) (*publisher, *mocks.MockJetStream, *mocks.MockJSON) {
	ctrl := gomock.NewController(t)
	js := mocks.NewMockJetStream(ctrl)
	jsonAdapter := mocks.NewMockJSON(ctrl)

	return &publisher{
		js:         js,
		streamName: "CURVE_EVENTS",
		json:       jsonAdapter,
	}, js, jsonAdapter
}

func buyEvent(curveID string) *domain.CurveEvent {
	wallet := "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"
	return &domain.CurveEvent{
		EventID:   ulid.Make().String(),
		CurveID:   curveID,
		EventType: domain.EventTypeBuy,
		Wallet:    &wallet,
		Keys:      3,
		Timestamp: time.Now().UTC(),
	}
}

func TestPublishEvent(t *testing.T) {
	p, js, jsonAdapter := newTestPublisher(t)

	event := buyEvent("0b9a8a35-3a35-4e9c-9e1a-6c3e6b540001")
	payload := []byte(`{"event_type":"buy"}`)

	jsonAdapter.EXPECT().Marshal(event).Return(payload, nil)
	js.EXPECT().
		Publish(gomock.Any(), "curves.0b9a8a35-3a35-4e9c-9e1a-6c3e6b540001.buy", payload).
		Return(&jetstream.PubAck{Stream: "CURVE_EVENTS"}, nil)

	err := p.PublishEvent(context.Background(), event)
	require.NoError(t, err)
}

func TestPublishEventMarshalError(t *testing.T) {
	p, _, jsonAdapter := newTestPublisher(t)

	event := buyEvent("0b9a8a35-3a35-4e9c-9e1a-6c3e6b540001")
	jsonAdapter.EXPECT().Marshal(event).Return(nil, errors.New("boom"))

	err := p.PublishEvent(context.Background(), event)
	assert.ErrorContains(t, err, "failed to marshal event")
}

func TestPublishEventPublishError(t *testing.T) {
	p, js, jsonAdapter := newTestPublisher(t)

	event := buyEvent("0b9a8a35-3a35-4e9c-9e1a-6c3e6b540001")
	payload := []byte(`{}`)

	jsonAdapter.EXPECT().Marshal(event).Return(payload, nil)
	js.EXPECT().
		Publish(gomock.Any(), gomock.Any(), payload).
		Return(nil, errors.New("stream unavailable"))

	err := p.PublishEvent(context.Background(), event)
	assert.ErrorContains(t, err, "failed to publish event")
}

func TestBuildSubject(t *testing.T) {
	tests := []struct {
		name      string
		eventType domain.EventType
		expected  string
	}{
		{"buy", domain.EventTypeBuy, "curves.abc.buy"},
		{"sell", domain.EventTypeSell, "curves.abc.sell"},
		{"launch", domain.EventTypeLaunch, "curves.abc.launch"},
		{"freeze", domain.EventTypeFreeze, "curves.abc.freeze"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &domain.CurveEvent{CurveID: "abc", EventType: tt.eventType}
			assert.Equal(t, tt.expected, buildSubject(event))
		})
	}
}
