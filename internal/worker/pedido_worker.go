package worker

// pedido_worker.go
// Consumes PedidoCreado events from the bus and starts one execution of the
// external fulfillment workflow per order. The execution name is derived
// from the order id and the trigger time, computed once per event so retries
// target the same execution.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/infra"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxIntentosEjecucion = 3

// PedidoWorker hands created orders to the workflow orchestrator and then
// enqueues the customer confirmation email.
type PedidoWorker struct {
	orquestador *infra.OrquestadorClient
	cb          *infra.CircuitBreaker
	dispatcher  *Dispatcher
	rdb         *redis.Client
	busName     string
}

func NewPedidoWorker(
	orquestador *infra.OrquestadorClient,
	cb *infra.CircuitBreaker,
	dispatcher *Dispatcher,
	rdb *redis.Client,
	busName string,
) *PedidoWorker {
	return &PedidoWorker{
		orquestador: orquestador,
		cb:          cb,
		dispatcher:  dispatcher,
		rdb:         rdb,
		busName:     busName,
	}
}

// Process handles one bus envelope:
//  1. Decode the event and the order inside its Detail
//  2. Start the fulfillment execution "pedido-{pedido_id}-{unix}" through the
//     circuit breaker, with exponential backoff (max 3 attempts)
//  3. On success, enqueue the order-confirmation email (best-effort)
//  4. On exhaustion, move the event to the DLQ
func (w *PedidoWorker) Process(ctx context.Context, raw string) {
	var evento Evento
	if err := json.Unmarshal([]byte(raw), &evento); err != nil {
		log.Error().Err(err).Msg("pedido_worker: invalid event envelope")
		return
	}
	if evento.DetailType != DetailTypePedidoCreado {
		log.Warn().Str("detail_type", evento.DetailType).Msg("pedido_worker: unexpected event type, skipping")
		return
	}

	var pedido model.Pedido
	if err := json.Unmarshal(evento.Detail, &pedido); err != nil {
		log.Error().Err(err).Msg("pedido_worker: invalid order detail")
		return
	}

	nombre := fmt.Sprintf("pedido-%s-%d", pedido.PedidoID, time.Now().UTC().Unix())

	var lastErr error
	for intento := 1; intento <= maxIntentosEjecucion; intento++ {
		lastErr = w.cb.Execute(func() error {
			resp, err := w.orquestador.IniciarEjecucion(ctx, infra.EjecucionRequest{
				Nombre: nombre,
				Input:  evento.Detail,
			})
			if err != nil {
				return err
			}
			log.Info().
				Str("pedido_id", pedido.PedidoID).
				Str("ejecucion", resp.EjecucionARN).
				Msg("pedido_worker: fulfillment execution started")
			return nil
		})
		if lastErr == nil {
			break
		}
		log.Warn().
			Err(lastErr).
			Str("pedido_id", pedido.PedidoID).
			Int("intento", intento).
			Msg("pedido_worker: execution start failed")
		if intento < maxIntentosEjecucion {
			// 1s, 2s, 4s
			time.Sleep(time.Duration(1<<(intento-1)) * time.Second)
		}
	}
	if lastErr != nil {
		SendToDLQ(ctx, w.rdb, BusKey(w.busName), "pedido_creado", evento.Detail, lastErr.Error(), maxIntentosEjecucion)
		return
	}

	// Confirmation email is best-effort too: a full email queue never blocks
	// fulfillment.
	emailJob := EmailJobPayload{
		ToEmail: pedido.UsuarioCorreo,
		Subject: "Tu pedido está en proceso",
		Body: fmt.Sprintf(
			"Hola! Recibimos tu pedido %s y ya estamos trabajando en él. Lo enviaremos a: %s.",
			pedido.PedidoID, pedido.Direccion),
	}
	if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
		log.Error().Err(err).Str("pedido_id", pedido.PedidoID).Msg("pedido_worker: failed to enqueue email")
	}
}
