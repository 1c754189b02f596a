package production

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	prodrules "github.com/jhoicas/Produccion-api/internal/domain/production"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// WorkflowViewUseCase arma la cola de trabajo de una etapa para un actor.
// La etapa completed devuelve la vista de bodega (solo rollos terminados).
type WorkflowViewUseCase struct {
	rollRepo     repository.RollRepository
	jobOrderRepo repository.JobOrderRepository
	orderRepo    repository.OrderRepository
	authorizer   Authorizer
}

// NewWorkflowViewUseCase construye el caso de uso.
func NewWorkflowViewUseCase(
	rollRepo repository.RollRepository,
	jobOrderRepo repository.JobOrderRepository,
	orderRepo repository.OrderRepository,
	authorizer Authorizer,
) *WorkflowViewUseCase {
	return &WorkflowViewUseCase{
		rollRepo:     rollRepo,
		jobOrderRepo: jobOrderRepo,
		orderRepo:    orderRepo,
		authorizer:   authorizer,
	}
}

// Execute filtra por permiso antes de leer rollos.
func (uc *WorkflowViewUseCase) Execute(ctx context.Context, actorID, stageName string) (*dto.WorkflowViewResponse, error) {
	stage, err := prodrules.ParseStage(stageName)
	if err != nil {
		return nil, err
	}
	if _, err := uc.authorizer.AuthorizeStage(ctx, actorID, stage, entity.ActionView); err != nil {
		return nil, err
	}

	var rolls []*entity.Roll
	if stage == entity.StageCompleted {
		rolls, err = uc.rollRepo.ListCompleted(ctx)
	} else {
		rolls, err = uc.rollRepo.ListForStage(ctx, stage)
	}
	if err != nil {
		return nil, err
	}

	jobOrders, err := uc.jobOrderRepo.ListByIDs(ctx, distinct(rolls, func(r *entity.Roll) string { return r.JobOrderID }))
	if err != nil {
		return nil, err
	}
	orderIDs := make([]string, 0, len(jobOrders))
	seen := make(map[string]struct{}, len(jobOrders))
	for _, jo := range jobOrders {
		if _, ok := seen[jo.OrderID]; ok {
			continue
		}
		seen[jo.OrderID] = struct{}{}
		orderIDs = append(orderIDs, jo.OrderID)
	}
	orders, err := uc.orderRepo.ListByIDs(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	idx := prodrules.BuildIndex(rolls, jobOrders, orders)
	var groups []prodrules.OrderGroup
	if stage == entity.StageCompleted {
		groups = idx.WarehouseView()
	} else {
		groups = idx.StageView(stage)
	}
	return &dto.WorkflowViewResponse{Stage: string(stage), OrderGroups: toOrderGroupDTOs(groups)}, nil
}

func distinct(rolls []*entity.Roll, key func(*entity.Roll) string) []string {
	seen := make(map[string]struct{}, len(rolls))
	out := make([]string, 0, len(rolls))
	for _, r := range rolls {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
