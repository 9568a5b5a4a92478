package outbox

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkerReadsConfig(t *testing.T) {
	viper.Set("rabbitmq.outbox.poll_interval_seconds", 5)
	viper.Set("rabbitmq.outbox.batch_size", 25)
	viper.Set("rabbitmq.outbox.retry_interval_seconds", 7)
	defer func() {
		viper.Set("rabbitmq.outbox.poll_interval_seconds", 0)
		viper.Set("rabbitmq.outbox.batch_size", 0)
		viper.Set("rabbitmq.outbox.retry_interval_seconds", 0)
	}()

	w := NewWorker(nil, nil)

	assert.Equal(t, 5*time.Second, w.pollInterval)
	assert.Equal(t, 25, w.batchSize)
	assert.Equal(t, 7*time.Second, w.retryInterval)
}

func TestNewWorkerDefaults(t *testing.T) {
	viper.Set("rabbitmq.outbox.poll_interval_seconds", 0)
	viper.Set("rabbitmq.outbox.batch_size", 0)
	viper.Set("rabbitmq.outbox.retry_interval_seconds", 0)

	w := NewWorker(nil, nil)

	assert.Equal(t, 10*time.Second, w.pollInterval)
	assert.Equal(t, 100, w.batchSize)
	assert.Equal(t, 30*time.Second, w.retryInterval)
}

func TestStopTerminatesStart(t *testing.T) {
	viper.Set("rabbitmq.outbox.poll_interval_seconds", 0)
	viper.Set("rabbitmq.outbox.batch_size", 0)
	viper.Set("rabbitmq.outbox.retry_interval_seconds", 0)

	w := NewWorker(nil, nil)

	done := make(chan struct{})
	go func() {
		w.Start(context.Background())
		close(done)
	}()

	w.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "worker did not stop")
	}
}
