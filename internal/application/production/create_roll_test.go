package production_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

func TestCreateRoll_DentroDeLoPendiente(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.create.Execute(env.ctx, production.CreateRollInput{ActorID: extruder, JobOrderID: "J1", ExtrudingQty: dec("400")})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Roll.RollNumber)
	assert.Equal(t, entity.StageExtrusion, res.Roll.CurrentStage)
	assert.Equal(t, extruder, res.Roll.CreatedByID)
	assert.True(t, res.Excess.IsZero())
	assert.True(t, res.Remaining.Equal(dec("600")))
	assert.True(t, res.TotalExtruded.Equal(dec("400")))

	second := env.mustCreate(t, "J1", "100")
	assert.Equal(t, 2, second.RollNumber)
}

func TestCreateRoll_ExcedenteConfirmado(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreate(t, "J2", "250")

	res, err := env.create.Execute(env.ctx, production.CreateRollInput{ActorID: extruder, JobOrderID: "J2", ExtrudingQty: dec("100")})
	require.NoError(t, err)
	assert.True(t, res.Excess.Equal(dec("50")))
	assert.True(t, res.Remaining.IsZero())
}

func TestCreateRoll_ExcedenteRechazado_NoEscribe(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreate(t, "J2", "250")

	_, err := env.create.Execute(env.ctx, production.CreateRollInput{
		ActorID: extruder, JobOrderID: "J2", ExtrudingQty: dec("100"), RejectExcess: true,
	})
	var qe *domain.QuantityExceededError
	require.True(t, errors.As(err, &qe))
	assert.True(t, qe.Excess.Equal(dec("50")))
	assert.True(t, qe.Remaining.Equal(dec("50")))
	assert.True(t, errors.Is(err, domain.ErrQuantityExceeded))

	list, err := env.queries.ListByJobOrder(env.ctx, extruder, "J2")
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}

func TestCreateRoll_Validaciones(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.create.Execute(env.ctx, production.CreateRollInput{ActorID: extruder, JobOrderID: "J1", ExtrudingQty: dec("0")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = env.create.Execute(env.ctx, production.CreateRollInput{ActorID: extruder, ExtrudingQty: dec("5")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = env.create.Execute(env.ctx, production.CreateRollInput{ActorID: extruder, JobOrderID: "J404", ExtrudingQty: dec("5")})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "orden de trabajo inexistente es error de validación")
	assert.Equal(t, "job_order_id", ve.Field)
	assert.False(t, errors.Is(err, domain.ErrNotFound))

	_, err = env.create.Execute(env.ctx, production.CreateRollInput{ActorID: extruder, JobOrderID: "J1", ExtrudingQty: dec("5"), CreatedByID: "fantasma"})
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "created_by_id", ve.Field)
}

func TestCreateRoll_Autorizacion(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.create.Execute(env.ctx, production.CreateRollInput{ActorID: printer, JobOrderID: "J1", ExtrudingQty: dec("5")})
	var ae *domain.AuthorizationError
	assert.True(t, errors.As(err, &ae))
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	_, err = env.create.Execute(env.ctx, production.CreateRollInput{ActorID: "nadie", JobOrderID: "J1", ExtrudingQty: dec("5")})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))

	res, err := env.create.Execute(env.ctx, production.CreateRollInput{ActorID: admin, JobOrderID: "J1", ExtrudingQty: dec("5"), CreatedByID: extruder})
	require.NoError(t, err)
	assert.Equal(t, extruder, res.Roll.CreatedByID)
}

func TestCreateRoll_Concurrente_NumerosUnicos(t *testing.T) {
	env := newTestEnv(t)
	const n = 8

	var wg sync.WaitGroup
	numbers := make(chan int, n)
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := env.create.Execute(env.ctx, production.CreateRollInput{ActorID: extruder, JobOrderID: "J1", ExtrudingQty: dec("150")})
			if err != nil {
				errs <- err
				return
			}
			numbers <- res.Roll.RollNumber
		}()
	}
	wg.Wait()
	close(numbers)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	seen := make(map[int]bool, n)
	for num := range numbers {
		assert.False(t, seen[num], "número de rollo repetido %d", num)
		seen[num] = true
	}
	assert.Len(t, seen, n)

	rem, err := env.queries.Remaining(env.ctx, extruder, "J1")
	require.NoError(t, err)
	assert.True(t, rem.TotalExtruded.Equal(dec("1200")))
	assert.True(t, rem.Remaining.IsZero())
}
