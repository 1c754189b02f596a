package production

import (
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	prodrules "github.com/jhoicas/Produccion-api/internal/domain/production"
)

func ToRollResponse(r *entity.Roll) dto.RollResponse {
	return dto.RollResponse{
		ID:           r.ID,
		JobOrderID:   r.JobOrderID,
		RollNumber:   r.RollNumber,
		ExtrudingQty: r.ExtrudingQty,
		PrintingQty:  r.PrintingQty,
		CuttingQty:   r.CuttingQty,
		CurrentStage: string(r.CurrentStage),
		Status:       r.Status,
		CreatedByID:  r.CreatedByID,
		CreatedAt:    r.CreatedAt,
		PrintedByID:  r.PrintedByID,
		PrintedAt:    r.PrintedAt,
		CutByID:      r.CutByID,
		CompletedAt:  r.CompletedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toRollResponses(rolls []*entity.Roll) []dto.RollResponse {
	out := make([]dto.RollResponse, 0, len(rolls))
	for _, r := range rolls {
		out = append(out, ToRollResponse(r))
	}
	return out
}

func toOrderGroupDTOs(groups []prodrules.OrderGroup) []dto.OrderGroupDTO {
	out := make([]dto.OrderGroupDTO, 0, len(groups))
	for _, g := range groups {
		og := dto.OrderGroupDTO{
			OrderID:    g.OrderID,
			CustomerID: g.CustomerID,
			Customer:   g.CustomerName,
			JobOrders:  make([]dto.JobOrderGroupDTO, 0, len(g.JobOrderGroups)),
		}
		for _, jg := range g.JobOrderGroups {
			og.JobOrders = append(og.JobOrders, dto.JobOrderGroupDTO{
				JobOrderID: jg.JobOrder.ID,
				Quantity:   jg.JobOrder.Quantity,
				Rolls:      toRollResponses(jg.Rolls),
			})
		}
		out = append(out, og)
	}
	return out
}
