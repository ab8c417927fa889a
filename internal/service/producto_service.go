package service

import (
	"context"
	"fmt"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/apierror"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/dto"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/model"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/repository"
)

// ProductoService is schema-validated single-record CRUD over the product
// store. Stock mutations happen only here, by explicit caller request —
// order creation never touches stock.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error)
	Obtener(ctx context.Context, localID, nombre string) (*model.Producto, error)
	ListarPorLocal(ctx context.Context, localID string) ([]model.Producto, error)
	Actualizar(ctx context.Context, req dto.ActualizarProductoRequest) (*model.Producto, error)
	Eliminar(ctx context.Context, localID, nombre string) error
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error) {
	// The (local_id, nombre) key must be free.
	if _, err := s.repo.GetOne(ctx, req.LocalID, req.Nombre); err == nil {
		return nil, apierror.Validation("Producto duplicado",
			fmt.Sprintf("Ya existe un producto con el nombre '%s' en el local %s", req.Nombre, req.LocalID))
	} else if !esNoEncontrado(err) {
		return nil, apierror.Unexpected(err)
	}

	p := &model.Producto{
		LocalID:     req.LocalID,
		Nombre:      req.Nombre,
		Precio:      req.Precio.Round(2),
		Descripcion: req.Descripcion,
		Categoria:   req.Categoria,
		Stock:       req.Stock,
	}
	if err := s.repo.PutOne(ctx, p); err != nil {
		return nil, apierror.Unexpected(err)
	}
	return p, nil
}

func (s *productoService) Obtener(ctx context.Context, localID, nombre string) (*model.Producto, error) {
	if localID == "" {
		return nil, apierror.MissingKey("Parámetro requerido: local_id")
	}
	if nombre == "" {
		return nil, apierror.MissingKey("Parámetro requerido: nombre")
	}
	p, err := s.repo.GetOne(ctx, localID, nombre)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, apierror.EntityNotFound("Producto no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}
	return p, nil
}

func (s *productoService) ListarPorLocal(ctx context.Context, localID string) ([]model.Producto, error) {
	if localID == "" {
		return nil, apierror.MissingKey("Parámetro requerido: local_id")
	}
	productos, err := s.repo.QueryByLocal(ctx, localID)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	return productos, nil
}

func (s *productoService) Actualizar(ctx context.Context, req dto.ActualizarProductoRequest) (*model.Producto, error) {
	if req.LocalID == "" || req.Nombre == "" {
		return nil, apierror.MissingKey("Se requieren local_id y nombre")
	}
	if !req.TieneCambios() {
		return nil, apierror.Validation("No se proporcionaron campos para actualizar", "")
	}
	if _, err := s.repo.GetOne(ctx, req.LocalID, req.Nombre); err != nil {
		if esNoEncontrado(err) {
			return nil, apierror.EntityNotFound("Producto no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}

	campos := make(map[string]any)
	if req.Precio != nil {
		campos["precio"] = req.Precio.Round(2)
	}
	if req.Descripcion != nil {
		campos["descripcion"] = *req.Descripcion
	}
	if req.Categoria != nil {
		campos["categoria"] = *req.Categoria
	}
	if req.Stock != nil {
		campos["stock"] = *req.Stock
	}

	actualizado, err := s.repo.UpdateFields(ctx, req.LocalID, req.Nombre, campos)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	return actualizado, nil
}

func (s *productoService) Eliminar(ctx context.Context, localID, nombre string) error {
	if localID == "" || nombre == "" {
		return apierror.MissingKey("Se requieren local_id y nombre")
	}
	if _, err := s.repo.GetOne(ctx, localID, nombre); err != nil {
		if esNoEncontrado(err) {
			return apierror.EntityNotFound("Producto no encontrado")
		}
		return apierror.Unexpected(err)
	}
	if err := s.repo.Delete(ctx, localID, nombre); err != nil {
		return apierror.Unexpected(err)
	}
	return nil
}
