package handler

import (
	"net/http"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/dto"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/service"

	"github.com/gin-gonic/gin"
)

type OfertasHandler struct{ svc service.OfertaService }

func NewOfertasHandler(svc service.OfertaService) *OfertasHandler {
	return &OfertasHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear una oferta
// @Description  Requiere al menos un objetivo del descuento: producto_nombre o combo_id.
// @Tags         ofertas
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearOfertaRequest true "Detalle de la oferta"
// @Success      201 {object} dto.MensajeResponse
// @Failure      400 {object} apierror.Envelope
// @Router       /v1/ofertas [post]
func (h *OfertasHandler) Crear(c *gin.Context) {
	var req dto.CrearOfertaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	oferta, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MensajeResponse{
		Message: "Oferta creada exitosamente",
		Data:    oferta,
	})
}

// Obtener godoc
// @Summary      Obtener oferta(s)
// @Tags         ofertas
// @Produce      json
// @Param        local_id  query string true  "ID del local"
// @Param        oferta_id query string false "ID de la oferta"
// @Success      200 {object} dto.ListaResponse
// @Failure      404 {object} apierror.Envelope
// @Router       /v1/ofertas [get]
func (h *OfertasHandler) Obtener(c *gin.Context) {
	localID := c.Query("local_id")
	ofertaID := c.Query("oferta_id")

	if ofertaID == "" {
		ofertas, err := h.svc.ListarPorLocal(c.Request.Context(), localID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ListaResponse{Data: ofertas, Count: len(ofertas)})
		return
	}

	oferta, err := h.svc.Obtener(c.Request.Context(), localID, ofertaID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, oferta)
}

// Actualizar godoc
// @Summary      Actualizar una oferta
// @Tags         ofertas
// @Accept       json
// @Produce      json
// @Param        body body dto.ActualizarOfertaRequest true "Campos a actualizar"
// @Success      200 {object} dto.MensajeResponse
// @Failure      404 {object} apierror.Envelope
// @Router       /v1/ofertas [put]
func (h *OfertasHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarOfertaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	oferta, err := h.svc.Actualizar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{
		Message: "Oferta actualizada exitosamente",
		Data:    oferta,
	})
}

// Eliminar godoc
// @Summary      Eliminar una oferta
// @Tags         ofertas
// @Produce      json
// @Param        local_id  query string true "ID del local"
// @Param        oferta_id query string true "ID de la oferta"
// @Success      200 {object} dto.MensajeResponse
// @Failure      404 {object} apierror.Envelope
// @Router       /v1/ofertas [delete]
func (h *OfertasHandler) Eliminar(c *gin.Context) {
	localID := c.Query("local_id")
	ofertaID := c.Query("oferta_id")

	if err := h.svc.Eliminar(c.Request.Context(), localID, ofertaID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{
		Message: "Oferta eliminada exitosamente",
		Data:    gin.H{"local_id": localID, "oferta_id": ofertaID},
	})
}
