package production_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

func TestWorkflowView_OrdenConEtapasMixtas(t *testing.T) {
	env := newTestEnv(t)
	r1 := env.mustCreate(t, "J1", "300")
	r2 := env.mustCreate(t, "J1", "200")
	env.mustAdvance(t, extruder, r1.ID, entity.StagePrinting, nil)

	for _, tc := range []struct{ actor, stage string }{{extruder, "extrusion"}, {printer, "printing"}} {
		v, err := env.view.Execute(env.ctx, tc.actor, tc.stage)
		require.NoError(t, err)
		require.Len(t, v.OrderGroups, 1, tc.stage)
		og := v.OrderGroups[0]
		assert.Equal(t, "10", og.OrderID)
		assert.Equal(t, "Plásticos del Valle", og.Customer)
		require.Len(t, og.JobOrders, 1)
		require.Len(t, og.JobOrders[0].Rolls, 2)
		assert.Equal(t, r1.ID, og.JobOrders[0].Rolls[0].ID)
		assert.Equal(t, r2.ID, og.JobOrders[0].Rolls[1].ID)
	}

	_, err := env.view.Execute(env.ctx, printer, "cutting")
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	v, err := env.view.Execute(env.ctx, cutter, "cutting")
	require.NoError(t, err)
	assert.Empty(t, v.OrderGroups)
}

func TestWorkflowView_Bodega(t *testing.T) {
	env := newTestEnv(t)
	done := env.mustCreate(t, "J2", "100")
	env.mustCreate(t, "J2", "100")
	env.mustAdvance(t, admin, done.ID, entity.StagePrinting, nil)
	env.mustAdvance(t, admin, done.ID, entity.StageCutting, nil)

	v, err := env.view.Execute(env.ctx, cutter, "cutting")
	require.NoError(t, err)
	require.Len(t, v.OrderGroups, 1)

	env.mustAdvance(t, cutter, done.ID, entity.StageCompleted, ptr(dec("95")))

	v, err = env.view.Execute(env.ctx, cutter, "cutting")
	require.NoError(t, err)
	assert.Empty(t, v.OrderGroups, "sin rollos pendientes de corte")

	v, err = env.view.Execute(env.ctx, keeper, "completed")
	require.NoError(t, err)
	require.Len(t, v.OrderGroups, 1)
	require.Len(t, v.OrderGroups[0].JobOrders, 1)
	rolls := v.OrderGroups[0].JobOrders[0].Rolls
	require.Len(t, rolls, 1)
	assert.Equal(t, done.ID, rolls[0].ID)
}

func TestQueries_PendienteYTieneRollos(t *testing.T) {
	env := newTestEnv(t)

	rem, err := env.queries.Remaining(env.ctx, extruder, "J1")
	require.NoError(t, err)
	assert.True(t, rem.Remaining.Equal(dec("1000")))
	assert.Equal(t, 0, rem.RollCount)

	has, err := env.queries.HasRolls(env.ctx, keeper, "10")
	require.NoError(t, err)
	assert.False(t, has.HasRolls)

	env.mustCreate(t, "J1", "250.5")

	rem, err = env.queries.Remaining(env.ctx, extruder, "J1")
	require.NoError(t, err)
	assert.True(t, rem.Remaining.Equal(dec("749.5")))
	assert.Equal(t, 1, rem.RollCount)

	has, err = env.queries.HasRolls(env.ctx, keeper, "10")
	require.NoError(t, err)
	assert.True(t, has.HasRolls)

	_, err = env.queries.Remaining(env.ctx, cutter, "J1")
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	_, err = env.queries.Remaining(env.ctx, extruder, "J404")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDocuments_EtiquetaYHojaDeCalculo(t *testing.T) {
	env := newTestEnv(t)
	r := env.mustCreate(t, "J1", "300")
	env.mustCreate(t, "J1", "200")

	pdf, err := env.docs.RollLabelPDF(env.ctx, extruder, r.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	_, err = env.docs.RollLabelPDF(env.ctx, cutter, r.ID)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	data, err := env.docs.JobOrderSheet(env.ctx, cutter, "J1")
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Rollos")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(rows), 5)
}
