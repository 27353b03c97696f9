package handlers_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/on-the-ground/localchan/effects/internal/handlers"
	effectmodel "github.com/on-the-ground/localchan/effects/model"
	"github.com/stretchr/testify/assert"
)

func TestFireAndForgetHandler_BasicExecution(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan componentEvent, 1)

	handler := handlers.NewFireAndForgetHandler(
		ctx,
		effectmodel.NewEffectScopeConfig(10, 1),
		func(_ context.Context, msg componentEvent) {
			received <- msg
		},
		func() {},
	)
	defer handler.Close()

	handler.FireAndForgetEffect(ctx, componentEvent{seq: 7, component: "search"})

	select {
	case msg := <-received:
		assert.Equal(t, componentEvent{seq: 7, component: "search"}, msg)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for handler")
	}
}

func TestFireAndForgetHandler_CancelledSenderDoesNotEnqueue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	called := make(chan int, 3)
	block := make(chan struct{})
	handler := handlers.NewFireAndForgetHandler(
		ctx,
		effectmodel.NewEffectScopeConfig(1, 1),
		func(_ context.Context, msg componentEvent) {
			called <- msg.seq
			<-block
		},
		func() {},
	)
	defer handler.Close()

	// busy worker plus a full buffer leave only ctx.Done selectable
	handler.FireAndForgetEffect(ctx, componentEvent{seq: 1})
	assert.Equal(t, 1, <-called)
	handler.FireAndForgetEffect(ctx, componentEvent{seq: 2})

	senderCtx, senderCancel := context.WithCancel(ctx)
	senderCancel()
	handler.FireAndForgetEffect(senderCtx, componentEvent{seq: 3})

	close(block)
	assert.Equal(t, 2, <-called)

	select {
	case seq := <-called:
		t.Fatalf("handler should not run for a cancelled sender, got %d", seq)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestFireAndForgetHandler_CloseRunsTeardownOnce(t *testing.T) {
	ctx := context.Background()
	teardowns := 0

	handler := handlers.NewFireAndForgetHandler(
		ctx,
		effectmodel.NewEffectScopeConfig(1, 2),
		func(context.Context, componentEvent) {},
		func() { teardowns++ },
	)

	handler.Close()
	handler.Close()
	assert.Equal(t, 1, teardowns)
	assert.NotEmpty(t, handler.EffectId)

	assert.NotPanics(t, func() {
		handler.FireAndForgetEffect(ctx, componentEvent{seq: 1, component: "results"})
	})
}

func TestFireAndForgetHandler_SendRacingCloseIsDropped(t *testing.T) {
	ctx := context.Background()

	handler := handlers.NewFireAndForgetHandler(
		ctx,
		effectmodel.NewEffectScopeConfig(1, 2),
		func(context.Context, componentEvent) {},
		func() {},
	)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seq int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				handler.FireAndForgetEffect(ctx, componentEvent{seq: seq*50 + j, component: "search"})
			}
		}(i)
	}
	handler.Close()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("senders blocked after Close")
	}
}
