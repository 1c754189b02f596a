package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Produccion-api/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func TestJWT_GenerateAndParse_ConActor(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "op-ext", "operator", "produccion-api-test", 5)
	require.NoError(t, err)

	actorID, role, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "op-ext", actorID)
	assert.Equal(t, "operator", role)
}

func TestJWT_Parse_RechazaInvalidos(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "op-ext", "operator", "produccion-api-test", 5)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err, "firma incorrecta")

	expired, err := pkgjwt.Generate(secret, "op-ext", "operator", "produccion-api-test", -1)
	require.NoError(t, err)
	_, _, err = pkgjwt.Parse(secret, expired)
	assert.Error(t, err, "token expirado")

	_, _, err = pkgjwt.Parse(secret, "no.es.jwt")
	assert.Error(t, err)
}

func TestJWT_Generate_RequiereSecretYActor(t *testing.T) {
	_, err := pkgjwt.Generate("", "op", "operator", "x", 5)
	assert.Error(t, err)
	_, err = pkgjwt.Generate(secret, "", "operator", "x", 5)
	assert.Error(t, err)
}
