package production

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	prodrules "github.com/jhoicas/Produccion-api/internal/domain/production"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// AdvanceRollUseCase mueve un rollo a la etapa siguiente (impresión, corte o completado).
type AdvanceRollUseCase struct {
	txRunner   TxRunner
	rollRepo   repository.RollRepository
	authorizer Authorizer
	log        zerolog.Logger
	now        func() time.Time
}

// NewAdvanceRollUseCase construye el caso de uso.
func NewAdvanceRollUseCase(
	txRunner TxRunner,
	rollRepo repository.RollRepository,
	authorizer Authorizer,
	log zerolog.Logger,
) *AdvanceRollUseCase {
	return &AdvanceRollUseCase{
		txRunner:   txRunner,
		rollRepo:   rollRepo,
		authorizer: authorizer,
		log:        log,
		now:        time.Now,
	}
}

// AdvanceRollInput entrada para avanzar un rollo.
type AdvanceRollInput struct {
	ActorID     string
	RollID      string
	ToStage     string
	PrintingQty *decimal.Decimal
	CuttingQty  *decimal.Decimal
}

// Execute autoriza sobre la etapa origen de la transición pedida y la aplica con el rollo bloqueado.
// Si el rollo no está en esa etapa (salto, reaplicación o carrera con otra transición) se
// devuelve *domain.InvalidStateTransitionError sin escribir.
func (uc *AdvanceRollUseCase) Execute(ctx context.Context, in AdvanceRollInput) (*entity.Roll, error) {
	if in.RollID == "" {
		return nil, domain.NewValidationError("id", "es requerido")
	}
	to, err := prodrules.ParseStage(in.ToStage)
	if err != nil {
		return nil, err
	}

	current, err := uc.rollRepo.GetByID(ctx, in.RollID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	from, ok := prodrules.SourceStage(to)
	if !ok || current.CurrentStage != from {
		return nil, &domain.InvalidStateTransitionError{RollID: current.ID, From: string(current.CurrentStage), To: string(to)}
	}
	actor, err := uc.authorizer.AuthorizeStage(ctx, in.ActorID, from, entity.ActionEdit)
	if err != nil {
		return nil, err
	}

	var updated *entity.Roll
	err = uc.txRunner.Run(ctx, func(rollRepo repository.RollRepository, _ repository.JobOrderRepository) error {
		locked, err := rollRepo.GetForUpdate(ctx, in.RollID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		if locked.CurrentStage != from {
			return &domain.InvalidStateTransitionError{RollID: locked.ID, From: string(locked.CurrentStage), To: string(to)}
		}
		if err := prodrules.ApplyTransition(locked, prodrules.Transition{
			To:          to,
			PrintingQty: in.PrintingQty,
			CuttingQty:  in.CuttingQty,
			ActorID:     actor.ID,
			At:          uc.now(),
		}); err != nil {
			return err
		}
		if err := rollRepo.Update(ctx, locked); err != nil {
			return err
		}
		updated = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("roll_id", updated.ID).
		Str("from", string(from)).
		Str("to", string(updated.CurrentStage)).
		Str("actor_id", actor.ID).
		Msg("rollo avanzado")
	return updated, nil
}
