package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// WorkerHandlers bundles the consumers wired at the composition root.
type WorkerHandlers struct {
	Pedidos *PedidoWorker
	Email   *EmailWorker
}

// StartWorkerPool launches numWorkers goroutines consuming the event bus and
// the email queue. Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, busName string, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, busName, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, busName string, id int) {
	busKey := BusKey(busName)
	queues := []string{busKey, QueueEmail}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			queue, raw := result[0], result[1]
			switch queue {
			case busKey:
				handlers.Pedidos.Process(ctx, raw)
			case QueueEmail:
				var job Job
				if err := json.Unmarshal([]byte(raw), &job); err != nil {
					log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
					continue
				}
				handlers.Email.Process(ctx, job.Payload)
			}
		}
	}
}
