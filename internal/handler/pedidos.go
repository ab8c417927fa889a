package handler

import (
	"net/http"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/dto"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear un nuevo pedido
// @Description  Valida las referencias cruzadas (local, usuario pagable, stock, combos), genera el pedido_id y publica el evento PedidoCreado.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearPedidoRequest true "Detalle del pedido"
// @Success      201  {object} dto.MensajeResponse
// @Failure      400  {object} apierror.Envelope
// @Router       /v1/pedidos [post]
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pedido, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MensajeResponse{
		Message: "Pedido creado exitosamente",
		Data:    pedido,
	})
}

// Obtener godoc
// @Summary      Obtener pedido(s)
// @Description  Con pedido_id retorna un pedido puntual; sin él, lista todos los pedidos del local.
// @Tags         pedidos
// @Produce      json
// @Param        local_id  query string true  "ID del local"
// @Param        pedido_id query string false "ID del pedido"
// @Success      200 {object} dto.ListaResponse
// @Failure      404 {object} apierror.Envelope
// @Router       /v1/pedidos [get]
func (h *PedidosHandler) Obtener(c *gin.Context) {
	localID := c.Query("local_id")
	pedidoID := c.Query("pedido_id")

	if pedidoID == "" {
		pedidos, err := h.svc.ListarPorLocal(c.Request.Context(), localID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ListaResponse{Data: pedidos, Count: len(pedidos)})
		return
	}

	pedido, err := h.svc.Obtener(c.Request.Context(), localID, pedidoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pedido)
}

// Actualizar godoc
// @Summary      Actualizar un pedido
// @Description  Patch disperso: las claves viajan en el cuerpo, el usuario_correo almacenado es inmutable y los empleados del historial se resuelven por dni.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        body body dto.ActualizarPedidoRequest true "Campos a actualizar"
// @Success      200 {object} dto.MensajeResponse
// @Failure      400 {object} apierror.Envelope
// @Failure      404 {object} apierror.Envelope
// @Router       /v1/pedidos [put]
func (h *PedidosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pedido, err := h.svc.Actualizar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{
		Message: "Pedido actualizado exitosamente",
		Data:    pedido,
	})
}

// Eliminar godoc
// @Summary      Eliminar un pedido
// @Description  Verifica la existencia antes de borrar; la eliminación es definitiva.
// @Tags         pedidos
// @Produce      json
// @Param        local_id  query string true "ID del local"
// @Param        pedido_id query string true "ID del pedido"
// @Success      200 {object} dto.MensajeResponse
// @Failure      404 {object} apierror.Envelope
// @Router       /v1/pedidos [delete]
func (h *PedidosHandler) Eliminar(c *gin.Context) {
	localID := c.Query("local_id")
	pedidoID := c.Query("pedido_id")

	if err := h.svc.Eliminar(c.Request.Context(), localID, pedidoID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{
		Message: "Pedido eliminado exitosamente",
		Data:    gin.H{"local_id": localID, "pedido_id": pedidoID},
	})
}
