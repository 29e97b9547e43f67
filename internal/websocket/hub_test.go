package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"pathfinder-be/internal/dto"
	"pathfinder-be/internal/pkg/logger"
	"pathfinder-be/pkg/datastore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub, id string) *Client {
	return &Client{Hub: hub, Id: id, Send: make(chan []byte, 8)}
}

func receive(t *testing.T, c *Client) dto.ReadyFrame {
	t.Helper()
	select {
	case data, ok := <-c.Send:
		require.True(t, ok, "send channel closed")
		var frame dto.ReadyFrame
		require.NoError(t, json.Unmarshal(data, &frame))
		return frame
	case <-time.After(time.Second):
		t.Fatal("no frame received")
		return dto.ReadyFrame{}
	}
}

func TestHubBroadcastsReadyToConnectedClients(t *testing.T) {
	hub := NewHub(logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	early := newTestClient(hub, "early")
	require.True(t, hub.Register(early))
	assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.BroadcastReady(dto.ReadyFrame{
		Degraded: []datastore.DatasetName{datastore.DatasetExams},
		Stats:    datastore.QuickStats{TotalStreams: 3},
	})

	frame := receive(t, early)
	assert.Equal(t, "ready", frame.Type)
	assert.Equal(t, []datastore.DatasetName{datastore.DatasetExams}, frame.Degraded)
	assert.Equal(t, 3, frame.Stats.TotalStreams)
}

func TestHubSendsReadyOnLateRegistration(t *testing.T) {
	hub := NewHub(logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	hub.BroadcastReady(dto.ReadyFrame{})
	hub.BroadcastReady(dto.ReadyFrame{Stats: datastore.QuickStats{TotalStreams: 99}})

	late := newTestClient(hub, "late")
	require.True(t, hub.Register(late))

	frame := receive(t, late)
	assert.Equal(t, 0, frame.Stats.TotalStreams, "only the first broadcast counts")
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub(logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	c := newTestClient(hub, "gone")
	require.True(t, hub.Register(c))
	hub.Unregister(c)

	select {
	case _, ok := <-c.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHubStoppedDoesNotBlockClients(t *testing.T) {
	hub := NewHub(logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	c := newTestClient(hub, "open")
	require.True(t, hub.Register(c))
	cancel()
	<-stopped

	_, ok := <-c.Send
	assert.False(t, ok, "stopping the hub closes client channels")

	returned := make(chan bool)
	go func() {
		hub.Unregister(c)
		returned <- hub.Register(newTestClient(hub, "late"))
	}()

	select {
	case registered := <-returned:
		assert.False(t, registered)
	case <-time.After(time.Second):
		t.Fatal("register/unregister blocked after the hub stopped")
	}
}
