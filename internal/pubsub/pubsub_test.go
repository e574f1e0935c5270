package pubsub

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeting struct {
	Text string `json:"text"`
}

var testGreeting = NewEvent[greeting]("test.greeting", "A greeting was sent")

func TestWatermillBridge_PublishSubscribe(t *testing.T) {
	bus := NewWatermillBridge()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	require.NoError(t, bus.Subscribe(ctx, "test.raw", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	}))

	require.NoError(t, bus.Publish(ctx, Message{
		Topic:    "test.raw",
		Payload:  []byte("hello"),
		Metadata: map[string]string{"request_id": "abc"},
	}))

	select {
	case msg := <-received:
		assert.Equal(t, "test.raw", msg.Topic)
		assert.Equal(t, "hello", string(msg.Payload))
		assert.Equal(t, "abc", msg.Metadata["request_id"])
		_, hasTopicKey := msg.Metadata[metaKeyTopic]
		assert.False(t, hasTopicKey, "reserved keys should not leak into metadata")
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}
}

func TestTypedEvent(t *testing.T) {
	bus := NewWatermillBridge()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu  sync.Mutex
		got []greeting
	)
	require.NoError(t, Subscribe(ctx, bus, testGreeting, func(ctx context.Context, g greeting) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, g)
		return nil
	}))

	require.NoError(t, Publish(ctx, bus, testGreeting, greeting{Text: "hi"}))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1 && got[0].Text == "hi"
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, "test.greeting", testGreeting.Name())
	assert.Equal(t, "A greeting was sent", testGreeting.Description())
}
