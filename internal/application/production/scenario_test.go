package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// J1 pide 1000 kg; cada paso lo ejecuta el operario de la sección correspondiente.
func TestCicloDeRollos_OrdenDeTrabajoJ1(t *testing.T) {
	env := newTestEnv(t)

	r1, err := env.create.Execute(env.ctx, production.CreateRollInput{ActorID: extruder, JobOrderID: "J1", ExtrudingQty: dec("600")})
	require.NoError(t, err)
	assert.True(t, r1.Excess.IsZero())
	assert.True(t, r1.Remaining.Equal(dec("400")))
	assert.Equal(t, 1, r1.Roll.RollNumber)

	r2, err := env.create.Execute(env.ctx, production.CreateRollInput{ActorID: extruder, JobOrderID: "J1", ExtrudingQty: dec("500")})
	require.NoError(t, err)
	assert.True(t, r2.Excess.Equal(dec("100")))
	assert.True(t, r2.Remaining.IsZero())
	assert.True(t, r2.TotalExtruded.Equal(dec("1100")))
	assert.Equal(t, 2, r2.Roll.RollNumber)

	roll := env.mustAdvance(t, extruder, r1.Roll.ID, entity.StagePrinting, nil)
	assert.Equal(t, entity.StagePrinting, roll.CurrentStage)
	roll = env.mustAdvance(t, printer, r1.Roll.ID, entity.StageCutting, nil)
	assert.Equal(t, entity.StageCutting, roll.CurrentStage)
	roll = env.mustAdvance(t, cutter, r1.Roll.ID, entity.StageCompleted, ptr(dec("590")))
	assert.Equal(t, entity.StageCompleted, roll.CurrentStage)
	assert.Equal(t, entity.RollStatusCompleted, roll.Status)
	assert.True(t, roll.CuttingQty.Equal(dec("590")))
	assert.True(t, roll.ExtrudingQty.Equal(dec("600")))

	rem, err := env.queries.Remaining(env.ctx, extruder, "J1")
	require.NoError(t, err)
	assert.True(t, rem.Remaining.IsZero())
	assert.Equal(t, 2, rem.RollCount)

	// R1 terminado y R2 aún en extrusión: nada pendiente de impresión.
	v, err := env.view.Execute(env.ctx, printer, "printing")
	require.NoError(t, err)
	assert.Empty(t, v.OrderGroups)

	v, err = env.view.Execute(env.ctx, extruder, "extrusion")
	require.NoError(t, err)
	require.Len(t, v.OrderGroups, 1)
	require.Len(t, v.OrderGroups[0].JobOrders, 1)
	assert.Equal(t, "J1", v.OrderGroups[0].JobOrders[0].JobOrderID)

	env.mustAdvance(t, extruder, r2.Roll.ID, entity.StagePrinting, nil)

	v, err = env.view.Execute(env.ctx, printer, "printing")
	require.NoError(t, err)
	require.Len(t, v.OrderGroups, 1)
	assert.Equal(t, "10", v.OrderGroups[0].OrderID)
	require.Len(t, v.OrderGroups[0].JobOrders, 1)
	jo := v.OrderGroups[0].JobOrders[0]
	assert.Equal(t, "J1", jo.JobOrderID)
	require.Len(t, jo.Rolls, 2)
	assert.Equal(t, r1.Roll.ID, jo.Rolls[0].ID)
	assert.Equal(t, "completed", jo.Rolls[0].CurrentStage)
	assert.Equal(t, r2.Roll.ID, jo.Rolls[1].ID)
	assert.Equal(t, "printing", jo.Rolls[1].CurrentStage)

	w, err := env.view.Execute(env.ctx, keeper, "completed")
	require.NoError(t, err)
	require.Len(t, w.OrderGroups, 1)
	rolls := w.OrderGroups[0].JobOrders[0].Rolls
	require.Len(t, rolls, 1)
	assert.Equal(t, r1.Roll.ID, rolls[0].ID)
}
