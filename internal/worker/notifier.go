package worker

import (
	"context"
	"encoding/json"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/model"

	"github.com/redis/go-redis/v9"
)

const (
	// EventSource tags every event published by this backend.
	EventSource = "chinawok.pedidos"
	// DetailTypePedidoCreado is the one event type the fulfillment side
	// subscribes to.
	DetailTypePedidoCreado = "PedidoCreado"
)

// Evento is the bus envelope: {Source, DetailType, Detail, EventBusName}.
type Evento struct {
	Source       string          `json:"Source"`
	DetailType   string          `json:"DetailType"`
	Detail       json.RawMessage `json:"Detail"`
	EventBusName string          `json:"EventBusName"`
}

// BusKey is the Redis list backing a named event bus.
func BusKey(busName string) string { return "bus:" + busName }

// Notifier publishes order-creation events onto the Redis event bus.
// It implements service.NotificadorPedidos: the error is returned to the
// caller, which logs and discards it — publishing never fails an already
// persisted order.
type Notifier struct {
	rdb     *redis.Client
	busName string
}

func NewNotifier(rdb *redis.Client, busName string) *Notifier {
	return &Notifier{rdb: rdb, busName: busName}
}

// PublicarPedidoCreado serializes the full persisted order as the event
// detail and pushes one envelope onto the bus.
func (n *Notifier) PublicarPedidoCreado(ctx context.Context, pedido *model.Pedido) error {
	detail, err := json.Marshal(pedido)
	if err != nil {
		return err
	}
	evento := Evento{
		Source:       EventSource,
		DetailType:   DetailTypePedidoCreado,
		Detail:       detail,
		EventBusName: n.busName,
	}
	encoded, err := json.Marshal(evento)
	if err != nil {
		return err
	}
	return n.rdb.LPush(ctx, BusKey(n.busName), encoded).Err()
}
