package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	prodrules "github.com/jhoicas/Produccion-api/internal/domain/production"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// CreateRollUseCase registra un rollo nuevo en extrusión. Bloquea la orden de trabajo
// (SELECT FOR UPDATE) antes de leer sus rollos, de modo que el excedente reportado
// refleja el estado al momento del commit.
type CreateRollUseCase struct {
	txRunner   TxRunner
	authorizer Authorizer
	actorRepo  repository.ActorRepository
	log        zerolog.Logger
	now        func() time.Time
}

// NewCreateRollUseCase construye el caso de uso.
func NewCreateRollUseCase(
	txRunner TxRunner,
	authorizer Authorizer,
	actorRepo repository.ActorRepository,
	log zerolog.Logger,
) *CreateRollUseCase {
	return &CreateRollUseCase{
		txRunner:   txRunner,
		authorizer: authorizer,
		actorRepo:  actorRepo,
		log:        log,
		now:        time.Now,
	}
}

// CreateRollInput entrada para crear un rollo.
// ActorID es el actor autenticado; CreatedByID (opcional) el operario que extruyó el rollo.
// Con RejectExcess la creación se aborta con *domain.QuantityExceededError si hay excedente.
type CreateRollInput struct {
	ActorID      string
	JobOrderID   string
	ExtrudingQty decimal.Decimal
	CreatedByID  string
	RejectExcess bool
}

// CreateRollResult rollo creado y conciliación contra la orden de trabajo.
// Remaining es lo pendiente después de sumar el rollo nuevo.
type CreateRollResult struct {
	Roll          *entity.Roll
	Excess        decimal.Decimal
	Remaining     decimal.Decimal
	TotalExtruded decimal.Decimal
}

// Execute valida, autoriza y crea el rollo en una sola transacción.
func (uc *CreateRollUseCase) Execute(ctx context.Context, in CreateRollInput) (*CreateRollResult, error) {
	if in.JobOrderID == "" {
		return nil, domain.NewValidationError("job_order_id", "es requerido")
	}
	if !in.ExtrudingQty.IsPositive() {
		return nil, domain.NewValidationError("extruding_qty", "debe ser mayor que cero")
	}

	actor, err := uc.authorizer.AuthorizeStage(ctx, in.ActorID, entity.StageExtrusion, entity.ActionCreate)
	if err != nil {
		return nil, err
	}

	createdBy := in.CreatedByID
	if createdBy == "" {
		createdBy = actor.ID
	} else if createdBy != actor.ID {
		creator, err := uc.actorRepo.GetByID(ctx, createdBy)
		if err != nil {
			return nil, err
		}
		if creator == nil {
			return nil, domain.NewValidationError("created_by_id", "el actor no existe")
		}
	}

	var result *CreateRollResult
	err = uc.txRunner.Run(ctx, func(rollRepo repository.RollRepository, jobOrderRepo repository.JobOrderRepository) error {
		jobOrder, err := jobOrderRepo.GetForUpdate(ctx, in.JobOrderID)
		if err != nil {
			return err
		}
		if jobOrder == nil {
			return domain.NewValidationError("job_order_id", "no existe")
		}

		existing, err := rollRepo.ListByJobOrder(ctx, jobOrder.ID)
		if err != nil {
			return err
		}
		check := prodrules.ValidateNewRollQuantity(jobOrder, existing, in.ExtrudingQty)
		if check.Excess.IsPositive() && in.RejectExcess {
			return &domain.QuantityExceededError{JobOrderID: jobOrder.ID, Excess: check.Excess, Remaining: check.Remaining}
		}

		roll, err := prodrules.NewRoll(uuid.New().String(), jobOrder.ID, nextRollNumber(existing), in.ExtrudingQty, createdBy, uc.now())
		if err != nil {
			return err
		}
		if err := rollRepo.Create(ctx, roll); err != nil {
			return err
		}

		all := append(existing, roll)
		result = &CreateRollResult{
			Roll:          roll,
			Excess:        check.Excess,
			Remaining:     prodrules.RemainingQuantity(jobOrder, all),
			TotalExtruded: prodrules.TotalExtruded(all),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Excess.IsPositive() {
		uc.log.Warn().
			Str("job_order_id", in.JobOrderID).
			Str("roll_id", result.Roll.ID).
			Str("excess", result.Excess.String()).
			Msg("rollo supera la cantidad pendiente de la orden de trabajo")
	} else {
		uc.log.Info().
			Str("job_order_id", in.JobOrderID).
			Str("roll_id", result.Roll.ID).
			Msg("rollo creado")
	}
	return result, nil
}

func nextRollNumber(existing []*entity.Roll) int {
	max := 0
	for _, r := range existing {
		if r.RollNumber > max {
			max = r.RollNumber
		}
	}
	return max + 1
}
