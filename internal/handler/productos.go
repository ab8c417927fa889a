package handler

import (
	"net/http"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/dto"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear un producto
// @Description  Rechaza duplicados por (local_id, nombre). El precio se redondea a 2 decimales.
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearProductoRequest true "Detalle del producto"
// @Success      201 {object} dto.MensajeResponse
// @Failure      400 {object} apierror.Envelope
// @Router       /v1/productos [post]
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	producto, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MensajeResponse{
		Message: "Producto creado exitosamente",
		Data:    producto,
	})
}

// Obtener godoc
// @Summary      Obtener producto(s)
// @Description  Con nombre retorna un producto puntual; sin él, lista todos los productos del local.
// @Tags         productos
// @Produce      json
// @Param        local_id query string true  "ID del local"
// @Param        nombre   query string false "Nombre del producto"
// @Success      200 {object} dto.ListaResponse
// @Failure      404 {object} apierror.Envelope
// @Router       /v1/productos [get]
func (h *ProductosHandler) Obtener(c *gin.Context) {
	localID := c.Query("local_id")
	nombre := c.Query("nombre")

	if nombre == "" {
		productos, err := h.svc.ListarPorLocal(c.Request.Context(), localID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ListaResponse{Data: productos, Count: len(productos)})
		return
	}

	producto, err := h.svc.Obtener(c.Request.Context(), localID, nombre)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, producto)
}

// Actualizar godoc
// @Summary      Actualizar un producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body body dto.ActualizarProductoRequest true "Campos a actualizar"
// @Success      200 {object} dto.MensajeResponse
// @Failure      404 {object} apierror.Envelope
// @Router       /v1/productos [put]
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	producto, err := h.svc.Actualizar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{
		Message: "Producto actualizado exitosamente",
		Data:    producto,
	})
}

// Eliminar godoc
// @Summary      Eliminar un producto
// @Tags         productos
// @Produce      json
// @Param        local_id query string true "ID del local"
// @Param        nombre   query string true "Nombre del producto"
// @Success      200 {object} dto.MensajeResponse
// @Failure      404 {object} apierror.Envelope
// @Router       /v1/productos [delete]
func (h *ProductosHandler) Eliminar(c *gin.Context) {
	localID := c.Query("local_id")
	nombre := c.Query("nombre")

	if err := h.svc.Eliminar(c.Request.Context(), localID, nombre); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{
		Message: "Producto eliminado exitosamente",
		Data:    gin.H{"local_id": localID, "nombre": nombre},
	})
}
