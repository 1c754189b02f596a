package production

import (
	"context"
	"fmt"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	prodrules "github.com/jhoicas/Produccion-api/internal/domain/production"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// QueryService lecturas del flujo de rollos: pendiente de una orden de trabajo,
// detalle de rollo, rollos por orden de trabajo y la guardia HasRolls.
type QueryService struct {
	rollRepo     repository.RollRepository
	jobOrderRepo repository.JobOrderRepository
	orderRepo    repository.OrderRepository
	authorizer   Authorizer
}

// NewQueryService construye el servicio de consultas.
func NewQueryService(
	rollRepo repository.RollRepository,
	jobOrderRepo repository.JobOrderRepository,
	orderRepo repository.OrderRepository,
	authorizer Authorizer,
) *QueryService {
	return &QueryService{
		rollRepo:     rollRepo,
		jobOrderRepo: jobOrderRepo,
		orderRepo:    orderRepo,
		authorizer:   authorizer,
	}
}

func (s *QueryService) jobOrder(ctx context.Context, id string) (*entity.JobOrder, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "es requerido")
	}
	jo, err := s.jobOrderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if jo == nil {
		return nil, fmt.Errorf("orden de trabajo %s: %w", id, domain.ErrNotFound)
	}
	return jo, nil
}

// Remaining cantidad pendiente de extruir. Lo consulta quien crea rollos (vista de extrusión).
func (s *QueryService) Remaining(ctx context.Context, actorID, jobOrderID string) (*dto.RemainingResponse, error) {
	if _, err := s.authorizer.AuthorizeStage(ctx, actorID, entity.StageExtrusion, entity.ActionView); err != nil {
		return nil, err
	}
	jo, err := s.jobOrder(ctx, jobOrderID)
	if err != nil {
		return nil, err
	}
	rolls, err := s.rollRepo.ListByJobOrder(ctx, jo.ID)
	if err != nil {
		return nil, err
	}
	return &dto.RemainingResponse{
		JobOrderID:    jo.ID,
		Quantity:      jo.Quantity,
		TotalExtruded: prodrules.TotalExtruded(rolls),
		Remaining:     prodrules.RemainingQuantity(jo, rolls),
		RollCount:     len(rolls),
	}, nil
}

// GetRoll detalle de un rollo; exige ver la etapa en la que está.
func (s *QueryService) GetRoll(ctx context.Context, actorID, rollID string) (*dto.RollResponse, error) {
	roll, err := s.visibleRoll(ctx, actorID, rollID)
	if err != nil {
		return nil, err
	}
	out := ToRollResponse(roll)
	return &out, nil
}

func (s *QueryService) visibleRoll(ctx context.Context, actorID, rollID string) (*entity.Roll, error) {
	if rollID == "" {
		return nil, domain.NewValidationError("id", "es requerido")
	}
	roll, err := s.rollRepo.GetByID(ctx, rollID)
	if err != nil {
		return nil, err
	}
	if roll == nil {
		return nil, fmt.Errorf("rollo %s: %w", rollID, domain.ErrNotFound)
	}
	if _, err := s.authorizer.AuthorizeStage(ctx, actorID, roll.CurrentStage, entity.ActionView); err != nil {
		return nil, err
	}
	return roll, nil
}

// ListByJobOrder rollos de una orden de trabajo ordenados por número.
func (s *QueryService) ListByJobOrder(ctx context.Context, actorID, jobOrderID string) (*dto.RollListResponse, error) {
	jo, rolls, err := s.jobOrderRolls(ctx, actorID, jobOrderID)
	if err != nil {
		return nil, err
	}
	return &dto.RollListResponse{JobOrderID: jo.ID, Items: toRollResponses(rolls)}, nil
}

func (s *QueryService) jobOrderRolls(ctx context.Context, actorID, jobOrderID string) (*entity.JobOrder, []*entity.Roll, error) {
	if _, err := s.authorizer.ResolveActor(ctx, actorID); err != nil {
		return nil, nil, err
	}
	jo, err := s.jobOrder(ctx, jobOrderID)
	if err != nil {
		return nil, nil, err
	}
	rolls, err := s.rollRepo.ListByJobOrder(ctx, jo.ID)
	if err != nil {
		return nil, nil, err
	}
	return jo, rolls, nil
}

// HasRolls informa si algún rollo cuelga del pedido (guardia de borrado de pedidos).
func (s *QueryService) HasRolls(ctx context.Context, actorID, orderID string) (*dto.HasRollsResponse, error) {
	if _, err := s.authorizer.ResolveActor(ctx, actorID); err != nil {
		return nil, err
	}
	if orderID == "" {
		return nil, domain.NewValidationError("id", "es requerido")
	}
	has, err := s.rollRepo.ExistsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &dto.HasRollsResponse{OrderID: orderID, HasRolls: has}, nil
}
