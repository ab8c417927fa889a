package service

import (
	"context"
	"fmt"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/apierror"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/dto"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/model"
	"github.com/FabricioLanche/Chinawok-Pedidos/internal/repository"
)

type OfertaService interface {
	Crear(ctx context.Context, req dto.CrearOfertaRequest) (*model.Oferta, error)
	Obtener(ctx context.Context, localID, ofertaID string) (*model.Oferta, error)
	ListarPorLocal(ctx context.Context, localID string) ([]model.Oferta, error)
	Actualizar(ctx context.Context, req dto.ActualizarOfertaRequest) (*model.Oferta, error)
	Eliminar(ctx context.Context, localID, ofertaID string) error
}

type ofertaService struct {
	repo repository.OfertaRepository
}

func NewOfertaService(repo repository.OfertaRepository) OfertaService {
	return &ofertaService{repo: repo}
}

func (s *ofertaService) Crear(ctx context.Context, req dto.CrearOfertaRequest) (*model.Oferta, error) {
	if _, err := s.repo.GetOne(ctx, req.LocalID, req.OfertaID); err == nil {
		return nil, apierror.Validation("Oferta duplicada",
			fmt.Sprintf("Ya existe una oferta con el id '%s' en el local %s", req.OfertaID, req.LocalID))
	} else if !esNoEncontrado(err) {
		return nil, apierror.Unexpected(err)
	}

	o := &model.Oferta{
		LocalID:             req.LocalID,
		OfertaID:            req.OfertaID,
		ProductoNombre:      req.ProductoNombre,
		ComboID:             req.ComboID,
		FechaInicio:         req.FechaInicio,
		FechaLimite:         req.FechaLimite,
		PorcentajeDescuento: req.PorcentajeDescuento.Round(2),
	}
	if err := s.repo.PutOne(ctx, o); err != nil {
		return nil, apierror.Unexpected(err)
	}
	return o, nil
}

func (s *ofertaService) Obtener(ctx context.Context, localID, ofertaID string) (*model.Oferta, error) {
	if localID == "" {
		return nil, apierror.MissingKey("Parámetro requerido: local_id")
	}
	if ofertaID == "" {
		return nil, apierror.MissingKey("Parámetro requerido: oferta_id")
	}
	o, err := s.repo.GetOne(ctx, localID, ofertaID)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, apierror.EntityNotFound("Oferta no encontrada")
		}
		return nil, apierror.Unexpected(err)
	}
	return o, nil
}

func (s *ofertaService) ListarPorLocal(ctx context.Context, localID string) ([]model.Oferta, error) {
	if localID == "" {
		return nil, apierror.MissingKey("Parámetro requerido: local_id")
	}
	ofertas, err := s.repo.QueryByLocal(ctx, localID)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	return ofertas, nil
}

func (s *ofertaService) Actualizar(ctx context.Context, req dto.ActualizarOfertaRequest) (*model.Oferta, error) {
	if req.LocalID == "" || req.OfertaID == "" {
		return nil, apierror.MissingKey("Se requieren local_id y oferta_id")
	}
	if !req.TieneCambios() {
		return nil, apierror.Validation("No se proporcionaron campos para actualizar", "")
	}
	if _, err := s.repo.GetOne(ctx, req.LocalID, req.OfertaID); err != nil {
		if esNoEncontrado(err) {
			return nil, apierror.EntityNotFound("Oferta no encontrada")
		}
		return nil, apierror.Unexpected(err)
	}

	campos := make(map[string]any)
	if req.ProductoNombre != nil {
		campos["producto_nombre"] = *req.ProductoNombre
	}
	if req.ComboID != nil {
		campos["combo_id"] = *req.ComboID
	}
	if req.FechaInicio != nil {
		campos["fecha_inicio"] = *req.FechaInicio
	}
	if req.FechaLimite != nil {
		campos["fecha_limite"] = *req.FechaLimite
	}
	if req.PorcentajeDescuento != nil {
		campos["porcentaje_descuento"] = req.PorcentajeDescuento.Round(2)
	}

	actualizado, err := s.repo.UpdateFields(ctx, req.LocalID, req.OfertaID, campos)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	return actualizado, nil
}

func (s *ofertaService) Eliminar(ctx context.Context, localID, ofertaID string) error {
	if localID == "" || ofertaID == "" {
		return apierror.MissingKey("Se requieren local_id y oferta_id")
	}
	if _, err := s.repo.GetOne(ctx, localID, ofertaID); err != nil {
		if esNoEncontrado(err) {
			return apierror.EntityNotFound("Oferta no encontrada")
		}
		return apierror.Unexpected(err)
	}
	if err := s.repo.Delete(ctx, localID, ofertaID); err != nil {
		return apierror.Unexpected(err)
	}
	return nil
}
