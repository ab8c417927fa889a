package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/apierror"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/model"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/repository"

	"gorm.io/gorm"
)

// VerificadorService runs the cross-entity checks that order flows depend on.
// Checks are independent and composable, but callers always invoke them in a
// fixed order (local → usuario → stock → combos) so the first failure
// reported is deterministic. Every check is a sequential keyed lookup;
// nothing is locked, reserved or decremented.
type VerificadorService interface {
	VerificarLocal(ctx context.Context, localID string) error
	// VerificarUsuarioPagable checks the user exists and the four payment
	// profile fields are all populated. Returns the stored user.
	VerificarUsuarioPagable(ctx context.Context, correo string) (*model.Usuario, error)
	// VerificarStock checks each line's product exists with stock >= cantidad
	// at lookup time. Advisory only: stock is never decremented here.
	VerificarStock(ctx context.Context, localID string, lineas []model.LineaProducto) error
	VerificarCombos(ctx context.Context, localID string, lineas []model.LineaCombo) error
	// ResolverEmpleado fetches the employee record behind a dni so state
	// records carry server-side snapshots, never caller-supplied attributes.
	ResolverEmpleado(ctx context.Context, localID, dni string) (*model.Empleado, error)
}

type verificadorService struct {
	locales   repository.LocalRepository
	usuarios  repository.UsuarioRepository
	productos repository.ProductoRepository
	combos    repository.ComboRepository
	empleados repository.EmpleadoRepository
}

func NewVerificadorService(
	locales repository.LocalRepository,
	usuarios repository.UsuarioRepository,
	productos repository.ProductoRepository,
	combos repository.ComboRepository,
	empleados repository.EmpleadoRepository,
) VerificadorService {
	return &verificadorService{
		locales:   locales,
		usuarios:  usuarios,
		productos: productos,
		combos:    combos,
		empleados: empleados,
	}
}

func esNoEncontrado(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func (s *verificadorService) VerificarLocal(ctx context.Context, localID string) error {
	if _, err := s.locales.GetOne(ctx, localID); err != nil {
		if esNoEncontrado(err) {
			return apierror.ReferenceNotFound("Error de validación de local",
				fmt.Sprintf("El local '%s' no existe", localID))
		}
		return apierror.Unexpected(err)
	}
	return nil
}

func (s *verificadorService) VerificarUsuarioPagable(ctx context.Context, correo string) (*model.Usuario, error) {
	u, err := s.usuarios.GetOne(ctx, correo)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, apierror.ReferenceNotFound("Error de validación de usuario",
				fmt.Sprintf("El usuario '%s' no existe", correo))
		}
		return nil, apierror.Unexpected(err)
	}

	// All four payment fields must be non-empty; report the first gap.
	campos := []struct{ nombre, valor string }{
		{"numero_tarjeta", u.NumeroTarjeta},
		{"cvv", u.CVV},
		{"fecha_expiracion", u.FechaExpiracion},
		{"direccion_entrega", u.DireccionEntrega},
	}
	for _, c := range campos {
		if c.valor == "" {
			return nil, apierror.ReferenceNotFound("Perfil de pago incompleto",
				fmt.Sprintf("El usuario '%s' no tiene '%s' registrado", correo, c.nombre))
		}
	}
	return u, nil
}

func (s *verificadorService) VerificarStock(ctx context.Context, localID string, lineas []model.LineaProducto) error {
	// One lookup per line, first unsatisfied line wins.
	for _, linea := range lineas {
		p, err := s.productos.GetOne(ctx, localID, linea.Nombre)
		if err != nil {
			if esNoEncontrado(err) {
				return apierror.ReferenceNotFound("Error de validación de productos",
					fmt.Sprintf("El producto '%s' no existe en el local %s", linea.Nombre, localID))
			}
			return apierror.Unexpected(err)
		}
		if p.Stock < linea.Cantidad {
			return apierror.ReferenceNotFound("Error de validación de productos",
				fmt.Sprintf("Stock insuficiente para '%s'. Disponible: %d, Solicitado: %d",
					linea.Nombre, p.Stock, linea.Cantidad))
		}
	}
	return nil
}

func (s *verificadorService) VerificarCombos(ctx context.Context, localID string, lineas []model.LineaCombo) error {
	for _, linea := range lineas {
		if _, err := s.combos.GetOne(ctx, localID, linea.ComboID); err != nil {
			if esNoEncontrado(err) {
				return apierror.ReferenceNotFound("Error de validación de combos",
					fmt.Sprintf("El combo '%s' no existe en el local %s", linea.ComboID, localID))
			}
			return apierror.Unexpected(err)
		}
	}
	return nil
}

func (s *verificadorService) ResolverEmpleado(ctx context.Context, localID, dni string) (*model.Empleado, error) {
	e, err := s.empleados.GetOne(ctx, localID, dni)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, apierror.ReferenceNotFound("Error de validación de empleado",
				fmt.Sprintf("El empleado con dni '%s' no existe en el local %s", dni, localID))
		}
		return nil, apierror.Unexpected(err)
	}
	return e, nil
}
