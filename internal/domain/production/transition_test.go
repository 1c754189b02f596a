package production_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/production"
)

var t0 = time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

func newRoll(t *testing.T, qty string) *entity.Roll {
	t.Helper()
	r, err := production.NewRoll("r-1", "J1", 1, dec(qty), "op-ext", t0)
	require.NoError(t, err)
	return r
}

func TestParseStage_TextoNormalizado(t *testing.T) {
	st, err := production.ParseStage(" Printing ")
	require.NoError(t, err)
	assert.Equal(t, entity.StagePrinting, st)

	_, err = production.ParseStage("laminado")
	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestNextStage_TablaDeTransiciones(t *testing.T) {
	next, ok := production.NextStage(entity.StageExtrusion)
	assert.True(t, ok)
	assert.Equal(t, entity.StagePrinting, next)

	_, ok = production.NextStage(entity.StageCompleted)
	assert.False(t, ok)
	assert.True(t, production.IsTerminal(entity.StageCompleted))

	assert.False(t, production.CanTransition(entity.StageExtrusion, entity.StageCutting))
	assert.False(t, production.CanTransition(entity.StagePrinting, entity.StageExtrusion))
	assert.True(t, production.CanTransition(entity.StageCutting, entity.StageCompleted))
}

func TestSourceStage_InversaDeLaTabla(t *testing.T) {
	for _, st := range []entity.Stage{entity.StageExtrusion, entity.StagePrinting, entity.StageCutting} {
		next, _ := production.NextStage(st)
		from, ok := production.SourceStage(next)
		require.True(t, ok, "destino %s", next)
		assert.Equal(t, st, from)
	}

	_, ok := production.SourceStage(entity.StageExtrusion)
	assert.False(t, ok, "extrusion solo se alcanza al crear el rollo")
}

func TestNewRoll_EnExtrusion(t *testing.T) {
	r := newRoll(t, "200")
	assert.Equal(t, entity.StageExtrusion, r.CurrentStage)
	assert.Equal(t, entity.RollStatusPending, r.Status)
	assert.True(t, r.PrintingQty.Equal(dec("200")))
	assert.True(t, r.CuttingQty.IsZero())

	_, err := production.NewRoll("r-2", "J1", 2, decimal.Zero, "op", t0)
	assert.Error(t, err)
	_, err = production.NewRoll("r-2", "J1", 2, dec("-1"), "op", t0)
	assert.Error(t, err)
}

func TestApplyTransition_CicloCompleto(t *testing.T) {
	r := newRoll(t, "200")

	require.NoError(t, production.ApplyTransition(r, production.Transition{To: entity.StagePrinting, ActorID: "op-ext", At: t0.Add(time.Hour)}))
	assert.Equal(t, entity.StagePrinting, r.CurrentStage)
	assert.Equal(t, entity.RollStatusPending, r.Status)

	require.NoError(t, production.ApplyTransition(r, production.Transition{
		To: entity.StageCutting, PrintingQty: ptr(dec("195.5")), ActorID: "op-imp", At: t0.Add(2 * time.Hour),
	}))
	assert.Equal(t, "op-imp", r.PrintedByID)
	require.NotNil(t, r.PrintedAt)
	assert.True(t, r.PrintingQty.Equal(dec("195.5")))
	assert.True(t, r.ExtrudingQty.Equal(dec("200")))

	require.NoError(t, production.ApplyTransition(r, production.Transition{
		To: entity.StageCompleted, CuttingQty: ptr(dec("190")), ActorID: "op-cor", At: t0.Add(3 * time.Hour),
	}))
	assert.Equal(t, entity.StageCompleted, r.CurrentStage)
	assert.Equal(t, entity.RollStatusCompleted, r.Status)
	assert.Equal(t, "op-cor", r.CutByID)
	assert.True(t, r.CuttingQty.Equal(dec("190")))
	assert.Equal(t, t0.Add(3*time.Hour), r.UpdatedAt)
}

func TestApplyTransition_SaltoRechazado(t *testing.T) {
	r := newRoll(t, "100")
	before := *r

	err := production.ApplyTransition(r, production.Transition{To: entity.StageCutting, At: t0})
	var ite *domain.InvalidStateTransitionError
	require.True(t, errors.As(err, &ite))
	assert.Equal(t, "extrusion", ite.From)
	assert.Equal(t, "cutting", ite.To)
	assert.Equal(t, before, *r)
}

func TestApplyTransition_CompletarDosVeces_Rechaza(t *testing.T) {
	r := newRoll(t, "100")
	require.NoError(t, production.ApplyTransition(r, production.Transition{To: entity.StagePrinting, At: t0}))
	require.NoError(t, production.ApplyTransition(r, production.Transition{To: entity.StageCutting, At: t0}))
	require.NoError(t, production.ApplyTransition(r, production.Transition{To: entity.StageCompleted, CuttingQty: ptr(dec("90")), At: t0}))

	err := production.ApplyTransition(r, production.Transition{To: entity.StageCompleted, CuttingQty: ptr(dec("90")), At: t0})
	var ite *domain.InvalidStateTransitionError
	assert.True(t, errors.As(err, &ite))
}

func TestApplyTransition_ValidacionDeCantidades(t *testing.T) {
	tests := []struct {
		name  string
		setup []production.Transition
		tr    production.Transition
		field string
	}{
		{
			name:  "cutting_qty requerido al completar",
			setup: []production.Transition{{To: entity.StagePrinting}, {To: entity.StageCutting}},
			tr:    production.Transition{To: entity.StageCompleted},
			field: "cutting_qty",
		},
		{
			name:  "cutting_qty cero",
			setup: []production.Transition{{To: entity.StagePrinting}, {To: entity.StageCutting}},
			tr:    production.Transition{To: entity.StageCompleted, CuttingQty: ptr(decimal.Zero)},
			field: "cutting_qty",
		},
		{
			name:  "cutting_qty fuera de corte",
			tr:    production.Transition{To: entity.StagePrinting, CuttingQty: ptr(dec("5"))},
			field: "cutting_qty",
		},
		{
			name:  "printing_qty negativo",
			setup: []production.Transition{{To: entity.StagePrinting}},
			tr:    production.Transition{To: entity.StageCutting, PrintingQty: ptr(dec("-3"))},
			field: "printing_qty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRoll(t, "100")
			for _, s := range tt.setup {
				require.NoError(t, production.ApplyTransition(r, s))
			}
			before := *r
			err := production.ApplyTransition(r, tt.tr)
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, before, *r)
		})
	}
}

func TestFinishedFor_PorEtapa(t *testing.T) {
	r := newRoll(t, "100")
	assert.False(t, production.FinishedFor(r, entity.StageExtrusion))
	assert.True(t, production.FinishedFor(r, entity.StagePrinting))
}
