package service

import (
	"context"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/apierror"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/dto"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/model"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/repository"

	"github.com/google/uuid"
)

type ComboService interface {
	Crear(ctx context.Context, req dto.CrearComboRequest) (*model.Combo, error)
	Obtener(ctx context.Context, localID, comboID string) (*model.Combo, error)
	ListarPorLocal(ctx context.Context, localID string) ([]model.Combo, error)
	Actualizar(ctx context.Context, req dto.ActualizarComboRequest) (*model.Combo, error)
	Eliminar(ctx context.Context, localID, comboID string) error
}

type comboService struct {
	repo repository.ComboRepository
}

func NewComboService(repo repository.ComboRepository) ComboService {
	return &comboService{repo: repo}
}

func (s *comboService) Crear(ctx context.Context, req dto.CrearComboRequest) (*model.Combo, error) {
	c := &model.Combo{
		LocalID:          req.LocalID,
		ComboID:          uuid.NewString(),
		Nombre:           req.Nombre,
		ProductosNombres: model.NombresProductos(req.ProductosNombres),
		Descripcion:      req.Descripcion,
	}
	if err := s.repo.PutOne(ctx, c); err != nil {
		return nil, apierror.Unexpected(err)
	}
	return c, nil
}

func (s *comboService) Obtener(ctx context.Context, localID, comboID string) (*model.Combo, error) {
	if localID == "" {
		return nil, apierror.MissingKey("Parámetro requerido: local_id")
	}
	if comboID == "" {
		return nil, apierror.MissingKey("Parámetro requerido: combo_id")
	}
	c, err := s.repo.GetOne(ctx, localID, comboID)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, apierror.EntityNotFound("Combo no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}
	return c, nil
}

func (s *comboService) ListarPorLocal(ctx context.Context, localID string) ([]model.Combo, error) {
	if localID == "" {
		return nil, apierror.MissingKey("Parámetro requerido: local_id")
	}
	combos, err := s.repo.QueryByLocal(ctx, localID)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	return combos, nil
}

func (s *comboService) Actualizar(ctx context.Context, req dto.ActualizarComboRequest) (*model.Combo, error) {
	if req.LocalID == "" || req.ComboID == "" {
		return nil, apierror.MissingKey("Se requieren local_id y combo_id")
	}
	if !req.TieneCambios() {
		return nil, apierror.Validation("No se proporcionaron campos para actualizar", "")
	}
	if _, err := s.repo.GetOne(ctx, req.LocalID, req.ComboID); err != nil {
		if esNoEncontrado(err) {
			return nil, apierror.EntityNotFound("Combo no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}

	campos := make(map[string]any)
	if req.Nombre != nil {
		campos["nombre"] = *req.Nombre
	}
	if req.ProductosNombres != nil {
		campos["productos_nombres"] = model.NombresProductos(req.ProductosNombres)
	}
	if req.Descripcion != nil {
		campos["descripcion"] = *req.Descripcion
	}

	actualizado, err := s.repo.UpdateFields(ctx, req.LocalID, req.ComboID, campos)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	return actualizado, nil
}

func (s *comboService) Eliminar(ctx context.Context, localID, comboID string) error {
	if localID == "" || comboID == "" {
		return apierror.MissingKey("Se requieren local_id y combo_id")
	}
	if _, err := s.repo.GetOne(ctx, localID, comboID); err != nil {
		if esNoEncontrado(err) {
			return apierror.EntityNotFound("Combo no encontrado")
		}
		return apierror.Unexpected(err)
	}
	if err := s.repo.Delete(ctx, localID, comboID); err != nil {
		return apierror.Unexpected(err)
	}
	return nil
}
