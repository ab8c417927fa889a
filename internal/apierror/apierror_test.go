package apierror

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusPorKind(t *testing.T) {
	casos := []struct {
		err    *Error
		status int
	}{
		{Validation("Error de validación", ""), http.StatusBadRequest},
		{MissingKey("Parámetro requerido: local_id"), http.StatusBadRequest},
		{ReferenceNotFound("Error de validación de local", "El local 'x' no existe"), http.StatusBadRequest},
		{EntityNotFound("Pedido no encontrado"), http.StatusNotFound},
		{Unexpected(errors.New("db down")), http.StatusInternalServerError},
	}
	for _, tc := range casos {
		assert.Equal(t, tc.status, tc.err.Status(), tc.err.Titulo)
	}
}

func TestFromNormalizaErrores(t *testing.T) {
	// Un *Error pasa tal cual, cualquier otro error se vuelve Unexpected.
	original := EntityNotFound("Pedido no encontrado")
	assert.Same(t, original, From(original))

	generico := From(errors.New("socket cerrado"))
	assert.Equal(t, KindUnexpected, generico.Kind)
	assert.Equal(t, "socket cerrado", generico.Mensaje)
}

func TestEnvelopeOmiteCamposVacios(t *testing.T) {
	raw, err := json.Marshal(EntityNotFound("Pedido no encontrado").Body())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error": "Pedido no encontrado"}`, string(raw))

	raw, err = json.Marshal(ValidationFields(map[string]string{"Productos": "required_without"}).Body())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error": "Error de validación", "fields": {"Productos": "required_without"}}`, string(raw))
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "Pedido no encontrado", EntityNotFound("Pedido no encontrado").Error())
	assert.Equal(t, "Error interno del servidor: db down", Unexpected(errors.New("db down")).Error())
}
