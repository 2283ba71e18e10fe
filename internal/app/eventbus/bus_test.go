package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPublishDeliversInRegistrationOrder(t *testing.T) {
	bus := New(zap.NewNop(), nil)

	var order []string
	bus.Subscribe(TopicTripGenerated, func(payload any) {
		order = append(order, "first")
	})
	bus.Subscribe(TopicTripGenerated, func(payload any) {
		order = append(order, "second")
	})

	bus.Publish(TopicTripGenerated, "payload")
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestPublishPayloadReachesEverySubscriber(t *testing.T) {
	bus := New(zap.NewNop(), nil)

	var got []any
	for i := 0; i < 3; i++ {
		bus.Subscribe(TopicMessageSent, func(payload any) {
			got = append(got, payload)
		})
	}

	bus.Publish(TopicMessageSent, 42)
	require.Len(t, got, 3)
	for _, p := range got {
		assert.Equal(t, 42, p)
	}
}

func TestUnsubscribeRemovesExactlyOneRegistration(t *testing.T) {
	bus := New(zap.NewNop(), nil)

	var a, b int
	unsubA := bus.Subscribe(TopicAppReady, func(any) { a++ })
	bus.Subscribe(TopicAppReady, func(any) { b++ })

	bus.Publish(TopicAppReady, nil)
	unsubA()
	bus.Publish(TopicAppReady, nil)

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)

	// second call is a no-op
	unsubA()
	bus.Publish(TopicAppReady, nil)
	assert.Equal(t, 1, a)
	assert.Equal(t, 3, b)
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := New(zap.NewNop(), nil)
	assert.NotPanics(t, func() {
		bus.Publish(TopicAppError, "nobody listening")
	})
}

func TestPanickingHandlerDoesNotStopDelivery(t *testing.T) {
	bus := New(zap.NewNop(), nil)

	var delivered bool
	bus.Subscribe(TopicAppLoading, func(any) { panic("boom") })
	bus.Subscribe(TopicAppLoading, func(any) { delivered = true })

	assert.NotPanics(t, func() {
		bus.Publish(TopicAppLoading, true)
	})
	assert.True(t, delivered)
}

func TestSubscriberSeesOnlyItsTopic(t *testing.T) {
	bus := New(zap.NewNop(), nil)

	var calls int
	bus.Subscribe(TopicLocationSelected, func(any) { calls++ })

	bus.Publish(TopicLocationsUpdated, nil)
	bus.Publish(TopicActiveDayChanged, nil)
	assert.Zero(t, calls)

	bus.Publish(TopicLocationSelected, nil)
	assert.Equal(t, 1, calls)
}

type recordingMirror struct {
	events []Event
}

func (m *recordingMirror) Broadcast(topic Topic, payload any) {
	m.events = append(m.events, Event{Topic: topic, Payload: payload})
}

func TestMirrorReceivesEveryPublish(t *testing.T) {
	mirror := &recordingMirror{}
	bus := New(zap.NewNop(), mirror)

	bus.Publish(TopicTripGenerated, "trip")
	bus.Publish(TopicAppReady, nil)

	require.Len(t, mirror.events, 2)
	assert.Equal(t, TopicTripGenerated, mirror.events[0].Topic)
	assert.Equal(t, "trip", mirror.events[0].Payload)
	assert.Equal(t, TopicAppReady, mirror.events[1].Topic)
}

func TestClear(t *testing.T) {
	bus := New(zap.NewNop(), nil)

	var calls int
	bus.Subscribe(TopicAppError, func(any) { calls++ })

	bus.Clear(TopicAppError)
	bus.Publish(TopicAppError, nil)
	assert.Zero(t, calls)
}
