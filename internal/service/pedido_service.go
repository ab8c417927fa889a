package service

import (
	"context"
	"time"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/apierror"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/dto"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/model"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// tiempoProcesamiento is the processing allowance for the initial state
// window: enough for the validation pipeline plus the event hand-off.
const tiempoProcesamiento = 2500 * time.Millisecond

// NotificadorPedidos publishes the creation event that triggers external
// fulfillment. The error return is deliberate: publishing is best-effort and
// the caller decides to log-and-continue — a bus failure never rolls back a
// persisted order.
type NotificadorPedidos interface {
	PublicarPedidoCreado(ctx context.Context, pedido *model.Pedido) error
}

type PedidoService interface {
	Crear(ctx context.Context, req dto.CrearPedidoRequest) (*model.Pedido, error)
	Obtener(ctx context.Context, localID, pedidoID string) (*model.Pedido, error)
	ListarPorLocal(ctx context.Context, localID string) ([]model.Pedido, error)
	Actualizar(ctx context.Context, req dto.ActualizarPedidoRequest) (*model.Pedido, error)
	Eliminar(ctx context.Context, localID, pedidoID string) error
}

type pedidoService struct {
	repo        repository.PedidoRepository
	verificador VerificadorService
	notificador NotificadorPedidos
}

func NewPedidoService(
	repo repository.PedidoRepository,
	verificador VerificadorService,
	notificador NotificadorPedidos,
) PedidoService {
	return &pedidoService{repo: repo, verificador: verificador, notificador: notificador}
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// Assembles a new order:
//  1. Cross-entity checks in fixed order (local → usuario → stock → combos);
//     any failure aborts before any write.
//  2. Mint a fresh pedido_id; default the state history to one active
//     "procesando" window when the caller supplied none.
//  3. Normalize decimal fields, persist, then best-effort publish the
//     PedidoCreado event.
//
// Stock is verified, never reserved: two concurrent creations can both pass
// the check and oversell. Retries mint a new id, so they create duplicates.
func (s *pedidoService) Crear(ctx context.Context, req dto.CrearPedidoRequest) (*model.Pedido, error) {
	productos := lineasProductoFromDTO(req.Productos)
	combos := lineasComboFromDTO(req.Combos)

	if err := s.verificador.VerificarLocal(ctx, req.LocalID); err != nil {
		return nil, err
	}
	if _, err := s.verificador.VerificarUsuarioPagable(ctx, req.UsuarioCorreo); err != nil {
		return nil, err
	}
	if len(productos) > 0 {
		if err := s.verificador.VerificarStock(ctx, req.LocalID, productos); err != nil {
			return nil, err
		}
	}
	if len(combos) > 0 {
		if err := s.verificador.VerificarCombos(ctx, req.LocalID, combos); err != nil {
			return nil, err
		}
	}

	pedido := &model.Pedido{
		LocalID:                req.LocalID,
		PedidoID:               uuid.NewString(),
		UsuarioCorreo:          req.UsuarioCorreo,
		Productos:              productos,
		Combos:                 combos,
		Costo:                  req.Costo.Round(2),
		Direccion:              req.Direccion,
		FechaEntregaAproximada: req.FechaEntregaAproximada,
	}

	if req.Estado == nil || req.HistorialEstados == nil {
		inicio := time.Now().UTC()
		pedido.Estado = model.EstadoProcesando
		pedido.HistorialEstados = model.HistorialEstados{{
			Estado:     model.EstadoProcesando,
			HoraInicio: inicio,
			HoraFin:    inicio.Add(tiempoProcesamiento),
			Activo:     true,
			Empleado:   nil,
		}}
	} else {
		// Creation is the one place a caller-supplied history (including full
		// employee snapshots) is accepted verbatim.
		pedido.Estado = *req.Estado
		pedido.HistorialEstados = historialFromCreateDTO(req.HistorialEstados)
	}

	if err := s.repo.PutOne(ctx, pedido); err != nil {
		return nil, apierror.Unexpected(err)
	}

	// Best-effort hand-off to fulfillment. The order is already committed;
	// a bus failure is logged and absorbed, never surfaced to the caller.
	if err := s.notificador.PublicarPedidoCreado(ctx, pedido); err != nil {
		log.Error().
			Err(err).
			Str("local_id", pedido.LocalID).
			Str("pedido_id", pedido.PedidoID).
			Msg("no se pudo publicar el evento PedidoCreado")
	}

	return pedido, nil
}

func (s *pedidoService) Obtener(ctx context.Context, localID, pedidoID string) (*model.Pedido, error) {
	if localID == "" {
		return nil, apierror.MissingKey("Parámetro requerido: local_id")
	}
	if pedidoID == "" {
		return nil, apierror.MissingKey("Parámetro requerido: pedido_id")
	}
	p, err := s.repo.GetOne(ctx, localID, pedidoID)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, apierror.EntityNotFound("Pedido no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}
	return p, nil
}

func (s *pedidoService) ListarPorLocal(ctx context.Context, localID string) ([]model.Pedido, error) {
	if localID == "" {
		return nil, apierror.MissingKey("Parámetro requerido: local_id")
	}
	pedidos, err := s.repo.QueryByLocal(ctx, localID)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	return pedidos, nil
}

// ── Actualizar ────────────────────────────────────────────────────────────────
// Applies a sparse field patch to a stored order:
//   - keys required, order must exist, local re-verified
//   - the STORED usuario_correo (never a caller value) is re-verified payable
//   - new product/combo lines re-run the stock/combo checks
//   - a supplied history is rewritten record by record: employee refs carry
//     only a dni and are resolved against the directory; one unresolved dni
//     aborts the whole update with no partial write
//   - named top-level attributes are replaced wholesale via the gateway
//
// State progression is deliberately NOT validated against the current state,
// and nothing enforces a single activo=true record; callers own the history
// they write.
func (s *pedidoService) Actualizar(ctx context.Context, req dto.ActualizarPedidoRequest) (*model.Pedido, error) {
	if req.LocalID == "" || req.PedidoID == "" {
		return nil, apierror.MissingKey("Se requieren local_id y pedido_id")
	}
	if !req.TieneCambios() {
		return nil, apierror.Validation("No se proporcionaron campos para actualizar", "")
	}

	existente, err := s.repo.GetOne(ctx, req.LocalID, req.PedidoID)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, apierror.EntityNotFound("Pedido no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}

	if err := s.verificador.VerificarLocal(ctx, req.LocalID); err != nil {
		return nil, err
	}
	if _, err := s.verificador.VerificarUsuarioPagable(ctx, existente.UsuarioCorreo); err != nil {
		return nil, err
	}

	campos := make(map[string]any)

	if req.Productos != nil {
		productos := lineasProductoFromDTO(req.Productos)
		if err := s.verificador.VerificarStock(ctx, req.LocalID, productos); err != nil {
			return nil, err
		}
		campos["productos"] = productos
	}
	if req.Combos != nil {
		combos := lineasComboFromDTO(req.Combos)
		if err := s.verificador.VerificarCombos(ctx, req.LocalID, combos); err != nil {
			return nil, err
		}
		campos["combos"] = combos
	}
	if req.HistorialEstados != nil {
		historial, err := s.resolverHistorial(ctx, req.LocalID, req.HistorialEstados)
		if err != nil {
			return nil, err
		}
		campos["historial_estados"] = historial
	}
	if req.Costo != nil {
		campos["costo"] = req.Costo.Round(2)
	}
	if req.Direccion != nil {
		campos["direccion"] = *req.Direccion
	}
	if req.FechaEntregaAproximada != nil {
		campos["fecha_entrega_aproximada"] = *req.FechaEntregaAproximada
	}
	if req.Estado != nil {
		campos["estado"] = *req.Estado
	}

	actualizado, err := s.repo.UpdateFields(ctx, req.LocalID, req.PedidoID, campos)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	return actualizado, nil
}

// resolverHistorial rewrites every record's employee annotation from the
// directory. Callers send a bare dni; the stored snapshot (full name, role
// lower-cased, rating) comes from the employee record at update time.
func (s *pedidoService) resolverHistorial(ctx context.Context, localID string, registros []dto.RegistroEstadoUpdateRequest) (model.HistorialEstados, error) {
	historial := make(model.HistorialEstados, 0, len(registros))
	for _, r := range registros {
		registro := model.RegistroEstado{
			Estado:     r.Estado,
			HoraInicio: r.HoraInicio,
			HoraFin:    r.HoraFin,
			Activo:     *r.Activo,
		}
		if r.Empleado != nil {
			emp, err := s.verificador.ResolverEmpleado(ctx, localID, r.Empleado.DNI)
			if err != nil {
				return nil, err
			}
			registro.Empleado = emp.Snapshot()
		}
		historial = append(historial, registro)
	}
	return historial, nil
}

func (s *pedidoService) Eliminar(ctx context.Context, localID, pedidoID string) error {
	if localID == "" || pedidoID == "" {
		return apierror.MissingKey("Se requieren local_id y pedido_id")
	}
	if _, err := s.repo.GetOne(ctx, localID, pedidoID); err != nil {
		if esNoEncontrado(err) {
			return apierror.EntityNotFound("Pedido no encontrado")
		}
		return apierror.Unexpected(err)
	}
	if err := s.repo.Delete(ctx, localID, pedidoID); err != nil {
		return apierror.Unexpected(err)
	}
	return nil
}

// ── Conversions ───────────────────────────────────────────────────────────────

func lineasProductoFromDTO(lineas []dto.LineaProductoRequest) model.LineasProducto {
	if lineas == nil {
		return nil
	}
	out := make(model.LineasProducto, 0, len(lineas))
	for _, l := range lineas {
		out = append(out, model.LineaProducto{Nombre: l.Nombre, Cantidad: l.Cantidad})
	}
	return out
}

func lineasComboFromDTO(lineas []dto.LineaComboRequest) model.LineasCombo {
	if lineas == nil {
		return nil
	}
	out := make(model.LineasCombo, 0, len(lineas))
	for _, l := range lineas {
		out = append(out, model.LineaCombo{ComboID: l.ComboID, Cantidad: l.Cantidad})
	}
	return out
}

func historialFromCreateDTO(registros []dto.RegistroEstadoRequest) model.HistorialEstados {
	historial := make(model.HistorialEstados, 0, len(registros))
	for _, r := range registros {
		registro := model.RegistroEstado{
			Estado:     r.Estado,
			HoraInicio: r.HoraInicio,
			HoraFin:    r.HoraFin,
			Activo:     *r.Activo,
		}
		if r.Empleado != nil {
			registro.Empleado = &model.EmpleadoSnapshot{
				DNI:              r.Empleado.DNI,
				NombreCompleto:   r.Empleado.NombreCompleto,
				Rol:              r.Empleado.Rol,
				CalificacionProm: r.Empleado.CalificacionProm,
			}
		}
		historial = append(historial, registro)
	}
	return historial
}
