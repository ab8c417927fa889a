package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/apierror"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/dto"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/model"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPedidoSvc devuelve respuestas fijas; cada campo err fuerza la falla de
// esa operación.
type stubPedidoSvc struct {
	pedido  *model.Pedido
	pedidos []model.Pedido
	err     error
}

func (s *stubPedidoSvc) Crear(_ context.Context, _ dto.CrearPedidoRequest) (*model.Pedido, error) {
	return s.pedido, s.err
}
func (s *stubPedidoSvc) Obtener(_ context.Context, _, _ string) (*model.Pedido, error) {
	return s.pedido, s.err
}
func (s *stubPedidoSvc) ListarPorLocal(_ context.Context, _ string) ([]model.Pedido, error) {
	return s.pedidos, s.err
}
func (s *stubPedidoSvc) Actualizar(_ context.Context, _ dto.ActualizarPedidoRequest) (*model.Pedido, error) {
	return s.pedido, s.err
}
func (s *stubPedidoSvc) Eliminar(_ context.Context, _, _ string) error { return s.err }

var _ service.PedidoService = (*stubPedidoSvc)(nil)

func routerPedidos(svc service.PedidoService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPedidosHandler(svc)
	r.POST("/v1/pedidos", h.Crear)
	r.GET("/v1/pedidos", h.Obtener)
	r.PUT("/v1/pedidos", h.Actualizar)
	r.DELETE("/v1/pedidos", h.Eliminar)
	return r
}

const cuerpoCrearValido = `{
	"local_id": "lima-01",
	"usuario_correo": "cliente@mail.com",
	"productos": [{"nombre": "Arroz chaufa", "cantidad": 2}],
	"costo": 45.51,
	"direccion": "Av. Siempre Viva 742"
}`

func TestCrearPedidoResponde201(t *testing.T) {
	svc := &stubPedidoSvc{pedido: &model.Pedido{LocalID: "lima-01", PedidoID: "ped-1"}}
	r := routerPedidos(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/pedidos", strings.NewReader(cuerpoCrearValido))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.MensajeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Pedido creado exitosamente", resp.Message)
	assert.NotNil(t, resp.Data)
}

func TestCrearPedidoJSONInvalido(t *testing.T) {
	r := routerPedidos(&stubPedidoSvc{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/pedidos", strings.NewReader("{no es json"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env apierror.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "JSON inválido", env.Error)
}

func TestCrearPedidoSinLineas(t *testing.T) {
	// Un pedido sin productos ni combos no pasa la validación del DTO y nunca
	// llega al servicio.
	r := routerPedidos(&stubPedidoSvc{})

	cuerpo := `{
		"local_id": "lima-01",
		"usuario_correo": "cliente@mail.com",
		"costo": 10,
		"direccion": "Av. Siempre Viva 742"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/pedidos", strings.NewReader(cuerpo))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env apierror.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Error de validación", env.Error)
	assert.Contains(t, env.Fields, "Productos")
}

func TestCrearPedidoCorreoInvalido(t *testing.T) {
	r := routerPedidos(&stubPedidoSvc{})

	cuerpo := strings.Replace(cuerpoCrearValido, "cliente@mail.com", "no-es-correo", 1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/pedidos", strings.NewReader(cuerpo))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCrearPedidoErrorDeReferencia(t *testing.T) {
	svc := &stubPedidoSvc{err: apierror.ReferenceNotFound("Error de validación de local", "El local 'lima-99' no existe")}
	r := routerPedidos(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/pedidos", strings.NewReader(cuerpoCrearValido))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env apierror.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Error de validación de local", env.Error)
	assert.Equal(t, "El local 'lima-99' no existe", env.Message)
}

func TestObtenerPedidoPorClave(t *testing.T) {
	svc := &stubPedidoSvc{pedido: &model.Pedido{LocalID: "lima-01", PedidoID: "ped-1"}}
	r := routerPedidos(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/pedidos?local_id=lima-01&pedido_id=ped-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var p model.Pedido
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "ped-1", p.PedidoID)
}

func TestObtenerPedidoNoEncontrado(t *testing.T) {
	svc := &stubPedidoSvc{err: apierror.EntityNotFound("Pedido no encontrado")}
	r := routerPedidos(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/pedidos?local_id=lima-01&pedido_id=nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var env apierror.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Pedido no encontrado", env.Error)
}

func TestListarPedidosDelLocal(t *testing.T) {
	svc := &stubPedidoSvc{pedidos: []model.Pedido{
		{LocalID: "lima-01", PedidoID: "a"},
		{LocalID: "lima-01", PedidoID: "b"},
	}}
	r := routerPedidos(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/pedidos?local_id=lima-01", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}

func TestActualizarPedidoResponde200(t *testing.T) {
	svc := &stubPedidoSvc{pedido: &model.Pedido{LocalID: "lima-01", PedidoID: "ped-1", Direccion: "Jr. de la Unión 100"}}
	r := routerPedidos(svc)

	cuerpo := `{"local_id": "lima-01", "pedido_id": "ped-1", "direccion": "Jr. de la Unión 100"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/pedidos", strings.NewReader(cuerpo))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MensajeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Pedido actualizado exitosamente", resp.Message)
}

func TestEliminarPedidoResponde200ConClaves(t *testing.T) {
	r := routerPedidos(&stubPedidoSvc{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/pedidos?local_id=lima-01&pedido_id=ped-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MensajeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Pedido eliminado exitosamente", resp.Message)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "lima-01", data["local_id"])
	assert.Equal(t, "ped-1", data["pedido_id"])
}

func TestEliminarPedidoSinClaves(t *testing.T) {
	svc := &stubPedidoSvc{err: apierror.MissingKey("Se requieren local_id y pedido_id")}
	r := routerPedidos(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/pedidos", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
