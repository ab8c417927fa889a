package handler

import (
	"net/http"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/dto"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/service"

	"github.com/gin-gonic/gin"
)

type CombosHandler struct{ svc service.ComboService }

func NewCombosHandler(svc service.ComboService) *CombosHandler {
	return &CombosHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear un combo
// @Description  El combo_id lo genera el servidor.
// @Tags         combos
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearComboRequest true "Detalle del combo"
// @Success      201 {object} dto.MensajeResponse
// @Failure      400 {object} apierror.Envelope
// @Router       /v1/combos [post]
func (h *CombosHandler) Crear(c *gin.Context) {
	var req dto.CrearComboRequest
	if !bindAndValidate(c, &req) {
		return
	}
	combo, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MensajeResponse{
		Message: "Combo creado exitosamente",
		Data:    combo,
	})
}

// Obtener godoc
// @Summary      Obtener combo(s)
// @Tags         combos
// @Produce      json
// @Param        local_id query string true  "ID del local"
// @Param        combo_id query string false "ID del combo"
// @Success      200 {object} dto.ListaResponse
// @Failure      404 {object} apierror.Envelope
// @Router       /v1/combos [get]
func (h *CombosHandler) Obtener(c *gin.Context) {
	localID := c.Query("local_id")
	comboID := c.Query("combo_id")

	if comboID == "" {
		combos, err := h.svc.ListarPorLocal(c.Request.Context(), localID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ListaResponse{Data: combos, Count: len(combos)})
		return
	}

	combo, err := h.svc.Obtener(c.Request.Context(), localID, comboID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, combo)
}

// Actualizar godoc
// @Summary      Actualizar un combo
// @Tags         combos
// @Accept       json
// @Produce      json
// @Param        body body dto.ActualizarComboRequest true "Campos a actualizar"
// @Success      200 {object} dto.MensajeResponse
// @Failure      404 {object} apierror.Envelope
// @Router       /v1/combos [put]
func (h *CombosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarComboRequest
	if !bindAndValidate(c, &req) {
		return
	}
	combo, err := h.svc.Actualizar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{
		Message: "Combo actualizado exitosamente",
		Data:    combo,
	})
}

// Eliminar godoc
// @Summary      Eliminar un combo
// @Tags         combos
// @Produce      json
// @Param        local_id query string true "ID del local"
// @Param        combo_id query string true "ID del combo"
// @Success      200 {object} dto.MensajeResponse
// @Failure      404 {object} apierror.Envelope
// @Router       /v1/combos [delete]
func (h *CombosHandler) Eliminar(c *gin.Context) {
	localID := c.Query("local_id")
	comboID := c.Query("combo_id")

	if err := h.svc.Eliminar(c.Request.Context(), localID, comboID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{
		Message: "Combo eliminado exitosamente",
		Data:    gin.H{"local_id": localID, "combo_id": comboID},
	})
}
