package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/apierror"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/dto"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/model"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubPedidoRepo is an in-memory PedidoRepository.
type stubPedidoRepo struct {
	pedidos  map[string]*model.Pedido
	getCalls int
	putErr   error
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[string]*model.Pedido)}
}

func clave(localID, pedidoID string) string { return localID + "/" + pedidoID }

func (r *stubPedidoRepo) GetOne(_ context.Context, localID, pedidoID string) (*model.Pedido, error) {
	r.getCalls++
	p, ok := r.pedidos[clave(localID, pedidoID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *stubPedidoRepo) PutOne(_ context.Context, p *model.Pedido) error {
	if r.putErr != nil {
		return r.putErr
	}
	copia := *p
	r.pedidos[clave(p.LocalID, p.PedidoID)] = &copia
	return nil
}

func (r *stubPedidoRepo) UpdateFields(ctx context.Context, localID, pedidoID string, campos map[string]any) (*model.Pedido, error) {
	p, ok := r.pedidos[clave(localID, pedidoID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for campo, valor := range campos {
		switch campo {
		case "productos":
			p.Productos = valor.(model.LineasProducto)
		case "combos":
			p.Combos = valor.(model.LineasCombo)
		case "historial_estados":
			p.HistorialEstados = valor.(model.HistorialEstados)
		case "costo":
			p.Costo = valor.(decimal.Decimal)
		case "direccion":
			p.Direccion = valor.(string)
		case "fecha_entrega_aproximada":
			f := valor.(time.Time)
			p.FechaEntregaAproximada = &f
		case "estado":
			p.Estado = valor.(string)
		}
	}
	return r.GetOne(ctx, localID, pedidoID)
}

func (r *stubPedidoRepo) QueryByLocal(_ context.Context, localID string) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if p.LocalID == localID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) Delete(_ context.Context, localID, pedidoID string) error {
	delete(r.pedidos, clave(localID, pedidoID))
	return nil
}

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// stubVerificador lets each check be forced to fail independently.
type stubVerificador struct {
	errLocal   error
	errUsuario error
	errStock   error
	errCombos  error

	usuario   *model.Usuario
	empleados map[string]*model.Empleado

	usuarioVerificado string
	stockLlamado      bool
	combosLlamado     bool
}

func newStubVerificador() *stubVerificador {
	return &stubVerificador{
		usuario:   &model.Usuario{Correo: "cliente@mail.com", NumeroTarjeta: "4111", CVV: "123", FechaExpiracion: "12/27", DireccionEntrega: "Av. Siempre Viva 742"},
		empleados: make(map[string]*model.Empleado),
	}
}

func (v *stubVerificador) VerificarLocal(_ context.Context, _ string) error { return v.errLocal }

func (v *stubVerificador) VerificarUsuarioPagable(_ context.Context, correo string) (*model.Usuario, error) {
	v.usuarioVerificado = correo
	if v.errUsuario != nil {
		return nil, v.errUsuario
	}
	return v.usuario, nil
}

func (v *stubVerificador) VerificarStock(_ context.Context, _ string, _ []model.LineaProducto) error {
	v.stockLlamado = true
	return v.errStock
}

func (v *stubVerificador) VerificarCombos(_ context.Context, _ string, _ []model.LineaCombo) error {
	v.combosLlamado = true
	return v.errCombos
}

func (v *stubVerificador) ResolverEmpleado(_ context.Context, localID, dni string) (*model.Empleado, error) {
	e, ok := v.empleados[dni]
	if !ok {
		return nil, apierror.ReferenceNotFound("Error de validación de empleado",
			"El empleado con dni '"+dni+"' no existe en el local "+localID)
	}
	return e, nil
}

var _ VerificadorService = (*stubVerificador)(nil)

// stubNotificador records published orders and can be forced to fail.
type stubNotificador struct {
	publicados []*model.Pedido
	err        error
}

func (n *stubNotificador) PublicarPedidoCreado(_ context.Context, p *model.Pedido) error {
	if n.err != nil {
		return n.err
	}
	n.publicados = append(n.publicados, p)
	return nil
}

var _ NotificadorPedidos = (*stubNotificador)(nil)

func nuevoPedidoService() (*stubPedidoRepo, *stubVerificador, *stubNotificador, PedidoService) {
	repo := newStubPedidoRepo()
	verif := newStubVerificador()
	notif := &stubNotificador{}
	return repo, verif, notif, NewPedidoService(repo, verif, notif)
}

func requestCrearBase() dto.CrearPedidoRequest {
	return dto.CrearPedidoRequest{
		LocalID:       "lima-01",
		UsuarioCorreo: "cliente@mail.com",
		Productos: []dto.LineaProductoRequest{
			{Nombre: "Arroz chaufa", Cantidad: 2},
		},
		Costo:     decimal.RequireFromString("45.505"),
		Direccion: "Av. Siempre Viva 742",
	}
}

// ── Crear ─────────────────────────────────────────────────────────────────────

func TestCrearPedidoGeneraHistorialPorDefecto(t *testing.T) {
	repo, _, notif, svc := nuevoPedidoService()

	antes := time.Now().UTC()
	pedido, err := svc.Crear(context.Background(), requestCrearBase())
	require.NoError(t, err)

	assert.NotEmpty(t, pedido.PedidoID, "el pedido_id lo genera siempre el servidor")
	assert.Equal(t, model.EstadoProcesando, pedido.Estado)
	require.Len(t, pedido.HistorialEstados, 1)

	registro := pedido.HistorialEstados[0]
	assert.Equal(t, model.EstadoProcesando, registro.Estado)
	assert.True(t, registro.Activo)
	assert.Nil(t, registro.Empleado)
	assert.False(t, registro.HoraInicio.Before(antes))
	assert.Equal(t, tiempoProcesamiento, registro.HoraFin.Sub(registro.HoraInicio))

	// Costo normalizado a 2 decimales
	assert.True(t, pedido.Costo.Equal(decimal.RequireFromString("45.51")),
		"costo esperado 45.51, obtenido %s", pedido.Costo)

	// Persistido y publicado
	_, guardado := repo.pedidos[clave("lima-01", pedido.PedidoID)]
	assert.True(t, guardado)
	require.Len(t, notif.publicados, 1)
	assert.Equal(t, pedido.PedidoID, notif.publicados[0].PedidoID)
}

func TestCrearPedidoIDsUnicosPorLlamada(t *testing.T) {
	_, _, _, svc := nuevoPedidoService()

	p1, err := svc.Crear(context.Background(), requestCrearBase())
	require.NoError(t, err)
	p2, err := svc.Crear(context.Background(), requestCrearBase())
	require.NoError(t, err)

	assert.NotEqual(t, p1.PedidoID, p2.PedidoID, "reintentos crean pedidos nuevos, nunca el mismo id")
}

func TestCrearPedidoRespetaHistorialExplicito(t *testing.T) {
	_, _, _, svc := nuevoPedidoService()

	activo := true
	inicio := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	estado := model.EstadoCocinando
	req := requestCrearBase()
	req.Estado = &estado
	req.HistorialEstados = []dto.RegistroEstadoRequest{{
		Estado:     model.EstadoCocinando,
		HoraInicio: inicio,
		HoraFin:    inicio.Add(10 * time.Minute),
		Activo:     &activo,
		Empleado: &dto.EmpleadoSnapshotRequest{
			DNI:            "12345678",
			NombreCompleto: "Rosa Quispe",
			Rol:            model.RolCocinero,
		},
	}}

	pedido, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, model.EstadoCocinando, pedido.Estado)
	require.Len(t, pedido.HistorialEstados, 1)
	require.NotNil(t, pedido.HistorialEstados[0].Empleado)
	assert.Equal(t, "Rosa Quispe", pedido.HistorialEstados[0].Empleado.NombreCompleto)
}

func TestCrearPedidoAbortaSiLocalNoExiste(t *testing.T) {
	repo, verif, notif, svc := nuevoPedidoService()
	verif.errLocal = apierror.ReferenceNotFound("Error de validación de local", "El local 'lima-99' no existe")

	_, err := svc.Crear(context.Background(), requestCrearBase())
	require.Error(t, err)
	assert.Equal(t, 400, apierror.From(err).Status())
	assert.Empty(t, repo.pedidos, "ninguna verificación fallida debe escribir")
	assert.Empty(t, notif.publicados)
}

func TestCrearPedidoAbortaSiStockInsuficiente(t *testing.T) {
	repo, verif, _, svc := nuevoPedidoService()
	verif.errStock = apierror.ReferenceNotFound("Error de validación de productos",
		"Stock insuficiente para 'Arroz chaufa'. Disponible: 1, Solicitado: 2")

	_, err := svc.Crear(context.Background(), requestCrearBase())
	require.Error(t, err)

	apiErr := apierror.From(err)
	assert.Equal(t, 400, apiErr.Status())
	assert.Contains(t, apiErr.Mensaje, "Stock insuficiente para 'Arroz chaufa'")
	assert.Empty(t, repo.pedidos)
}

func TestCrearPedidoSoloVerificaComboSiHayCombos(t *testing.T) {
	_, verif, _, svc := nuevoPedidoService()

	_, err := svc.Crear(context.Background(), requestCrearBase())
	require.NoError(t, err)
	assert.True(t, verif.stockLlamado)
	assert.False(t, verif.combosLlamado)
}

func TestCrearPedidoSobreviveFallaDelBus(t *testing.T) {
	repo, _, notif, svc := nuevoPedidoService()
	notif.err = errors.New("bus unavailable")

	pedido, err := svc.Crear(context.Background(), requestCrearBase())
	require.NoError(t, err, "una falla de publicación nunca revierte un pedido persistido")
	_, guardado := repo.pedidos[clave("lima-01", pedido.PedidoID)]
	assert.True(t, guardado)
}

// ── Obtener / Listar ─────────────────────────────────────────────────────────

func TestObtenerPedidoExigeClaves(t *testing.T) {
	repo, _, _, svc := nuevoPedidoService()

	_, err := svc.Obtener(context.Background(), "", "abc")
	require.Error(t, err)
	assert.Equal(t, apierror.KindMissingKey, apierror.From(err).Kind)

	_, err = svc.Obtener(context.Background(), "lima-01", "")
	require.Error(t, err)
	assert.Equal(t, apierror.KindMissingKey, apierror.From(err).Kind)

	assert.Zero(t, repo.getCalls, "claves ausentes se rechazan antes de tocar el store")
}

func TestObtenerPedidoNoExiste(t *testing.T) {
	_, _, _, svc := nuevoPedidoService()

	_, err := svc.Obtener(context.Background(), "lima-01", "no-existe")
	require.Error(t, err)
	apiErr := apierror.From(err)
	assert.Equal(t, 404, apiErr.Status())
	assert.Equal(t, "Pedido no encontrado", apiErr.Titulo)
}

func TestListarPorLocalDevuelveSoloEseLocal(t *testing.T) {
	repo, _, _, svc := nuevoPedidoService()
	repo.pedidos[clave("lima-01", "a")] = &model.Pedido{LocalID: "lima-01", PedidoID: "a"}
	repo.pedidos[clave("lima-02", "b")] = &model.Pedido{LocalID: "lima-02", PedidoID: "b"}

	pedidos, err := svc.ListarPorLocal(context.Background(), "lima-01")
	require.NoError(t, err)
	require.Len(t, pedidos, 1)
	assert.Equal(t, "a", pedidos[0].PedidoID)
}

// ── Actualizar ───────────────────────────────────────────────────────────────

func pedidoExistente(repo *stubPedidoRepo) *model.Pedido {
	p := &model.Pedido{
		LocalID:       "lima-01",
		PedidoID:      "ped-1",
		UsuarioCorreo: "cliente@mail.com",
		Productos:     model.LineasProducto{{Nombre: "Arroz chaufa", Cantidad: 2}},
		Costo:         decimal.RequireFromString("45.51"),
		Direccion:     "Av. Siempre Viva 742",
		Estado:        model.EstadoProcesando,
		HistorialEstados: model.HistorialEstados{{
			Estado: model.EstadoProcesando, Activo: true,
			HoraInicio: time.Now().UTC(), HoraFin: time.Now().UTC().Add(tiempoProcesamiento),
		}},
	}
	repo.pedidos[clave(p.LocalID, p.PedidoID)] = p
	return p
}

func TestActualizarExigeClavesEnElCuerpo(t *testing.T) {
	repo, _, _, svc := nuevoPedidoService()

	nuevaDireccion := "Jr. de la Unión 100"
	_, err := svc.Actualizar(context.Background(), dto.ActualizarPedidoRequest{
		PedidoID:  "ped-1",
		Direccion: &nuevaDireccion,
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindMissingKey, apierror.From(err).Kind)
	assert.Zero(t, repo.getCalls)
}

func TestActualizarSinCamposEsError(t *testing.T) {
	_, _, _, svc := nuevoPedidoService()

	_, err := svc.Actualizar(context.Background(), dto.ActualizarPedidoRequest{
		LocalID:  "lima-01",
		PedidoID: "ped-1",
	})
	require.Error(t, err)
	apiErr := apierror.From(err)
	assert.Equal(t, apierror.KindValidation, apiErr.Kind)
	assert.Equal(t, "No se proporcionaron campos para actualizar", apiErr.Titulo)
}

func TestActualizarPedidoInexistente(t *testing.T) {
	_, _, _, svc := nuevoPedidoService()

	nuevaDireccion := "Jr. de la Unión 100"
	_, err := svc.Actualizar(context.Background(), dto.ActualizarPedidoRequest{
		LocalID:   "lima-01",
		PedidoID:  "no-existe",
		Direccion: &nuevaDireccion,
	})
	require.Error(t, err)
	assert.Equal(t, 404, apierror.From(err).Status())
}

func TestActualizarReverificaCorreoAlmacenado(t *testing.T) {
	repo, verif, _, svc := nuevoPedidoService()
	pedidoExistente(repo)

	nuevaDireccion := "Jr. de la Unión 100"
	actualizado, err := svc.Actualizar(context.Background(), dto.ActualizarPedidoRequest{
		LocalID:   "lima-01",
		PedidoID:  "ped-1",
		Direccion: &nuevaDireccion,
	})
	require.NoError(t, err)

	assert.Equal(t, "cliente@mail.com", verif.usuarioVerificado,
		"siempre se verifica el correo almacenado, no uno del caller")
	assert.Equal(t, nuevaDireccion, actualizado.Direccion)
	assert.Equal(t, "cliente@mail.com", actualizado.UsuarioCorreo)
}

func TestActualizarAbortaSiUsuarioNoPagable(t *testing.T) {
	repo, verif, _, svc := nuevoPedidoService()
	original := pedidoExistente(repo)
	verif.errUsuario = apierror.ReferenceNotFound("Perfil de pago incompleto",
		"El usuario 'cliente@mail.com' no tiene 'cvv' registrado")

	nuevaDireccion := "Jr. de la Unión 100"
	_, err := svc.Actualizar(context.Background(), dto.ActualizarPedidoRequest{
		LocalID:   "lima-01",
		PedidoID:  "ped-1",
		Direccion: &nuevaDireccion,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apierror.From(err).Status())

	almacenado := repo.pedidos[clave("lima-01", "ped-1")]
	assert.Equal(t, original.Direccion, almacenado.Direccion, "sin escritura parcial")
}

func TestActualizarResuelveEmpleadoPorDNI(t *testing.T) {
	repo, verif, _, svc := nuevoPedidoService()
	pedidoExistente(repo)
	verif.empleados["87654321"] = &model.Empleado{
		LocalID:          "lima-01",
		DNI:              "87654321",
		Nombre:           "Luis",
		Apellido:         "Chávez",
		Rol:              "Repartidor",
		CalificacionProm: decimal.RequireFromString("4.5"),
	}

	activo := true
	inicio := time.Date(2026, 8, 1, 13, 0, 0, 0, time.UTC)
	estado := model.EstadoEnviando
	actualizado, err := svc.Actualizar(context.Background(), dto.ActualizarPedidoRequest{
		LocalID:  "lima-01",
		PedidoID: "ped-1",
		Estado:   &estado,
		HistorialEstados: []dto.RegistroEstadoUpdateRequest{{
			Estado:     model.EstadoEnviando,
			HoraInicio: inicio,
			HoraFin:    inicio.Add(30 * time.Minute),
			Activo:     &activo,
			Empleado:   &dto.EmpleadoRefRequest{DNI: "87654321"},
		}},
	})
	require.NoError(t, err)

	require.Len(t, actualizado.HistorialEstados, 1)
	emp := actualizado.HistorialEstados[0].Empleado
	require.NotNil(t, emp)
	assert.Equal(t, "87654321", emp.DNI)
	assert.Equal(t, "Luis Chávez", emp.NombreCompleto)
	assert.Equal(t, "repartidor", emp.Rol, "el rol se normaliza a minúsculas")
	require.NotNil(t, emp.CalificacionProm)
	assert.True(t, emp.CalificacionProm.Equal(decimal.RequireFromString("4.5")))
}

func TestActualizarAbortaSiEmpleadoNoExiste(t *testing.T) {
	repo, _, _, svc := nuevoPedidoService()
	original := pedidoExistente(repo)

	activo := true
	inicio := time.Now().UTC()
	_, err := svc.Actualizar(context.Background(), dto.ActualizarPedidoRequest{
		LocalID:  "lima-01",
		PedidoID: "ped-1",
		HistorialEstados: []dto.RegistroEstadoUpdateRequest{{
			Estado:     model.EstadoCocinando,
			HoraInicio: inicio,
			HoraFin:    inicio.Add(time.Minute),
			Activo:     &activo,
			Empleado:   &dto.EmpleadoRefRequest{DNI: "00000000"},
		}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apierror.From(err).Status())

	almacenado := repo.pedidos[clave("lima-01", "ped-1")]
	assert.Equal(t, original.HistorialEstados, almacenado.HistorialEstados,
		"un dni sin resolver aborta toda la actualización")
}

func TestActualizarRedondeaCosto(t *testing.T) {
	repo, _, _, svc := nuevoPedidoService()
	pedidoExistente(repo)

	costo := decimal.RequireFromString("99.999")
	actualizado, err := svc.Actualizar(context.Background(), dto.ActualizarPedidoRequest{
		LocalID:  "lima-01",
		PedidoID: "ped-1",
		Costo:    &costo,
	})
	require.NoError(t, err)
	assert.True(t, actualizado.Costo.Equal(decimal.RequireFromString("100.00")))
}

// ── Eliminar ─────────────────────────────────────────────────────────────────

func TestEliminarPedido(t *testing.T) {
	repo, _, _, svc := nuevoPedidoService()
	pedidoExistente(repo)

	require.NoError(t, svc.Eliminar(context.Background(), "lima-01", "ped-1"))
	assert.Empty(t, repo.pedidos)
}

func TestEliminarPedidoInexistente(t *testing.T) {
	_, _, _, svc := nuevoPedidoService()

	err := svc.Eliminar(context.Background(), "lima-01", "no-existe")
	require.Error(t, err)
	assert.Equal(t, 404, apierror.From(err).Status())
}

func TestEliminarExigeClaves(t *testing.T) {
	_, _, _, svc := nuevoPedidoService()

	err := svc.Eliminar(context.Background(), "", "")
	require.Error(t, err)
	assert.Equal(t, apierror.KindMissingKey, apierror.From(err).Kind)
}
