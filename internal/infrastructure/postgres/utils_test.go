package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/masterdata-pro/internal/domain/repository"
)

func TestLikePattern_EscapaComodines(t *testing.T) {
	assert.Equal(t, "%acero%", likePattern("acero"))
	assert.Equal(t, `%100\%%`, likePattern("100%"))
	assert.Equal(t, `%SUP\_001%`, likePattern("SUP_001"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
}

func TestSupplierWhere_FiltroConComodin_BuscaLiteral(t *testing.T) {
	where, args := supplierWhere(repository.SupplierFilter{Name: "50%", Status: "active"})

	assert.Equal(t, " WHERE s.name ILIKE $1 AND s.status = $2", where)
	require.Len(t, args, 2)
	assert.Equal(t, `%50\%%`, args[0])
	assert.Equal(t, "active", args[1])
}

func TestMaterialWhere_SinFiltros(t *testing.T) {
	where, args := materialWhere(repository.MaterialFilter{})

	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestMaterialWhere_GuionBajoNoActuaComoComodin(t *testing.T) {
	where, args := materialWhere(repository.MaterialFilter{IDMaterial: "MAT_01"})

	assert.Equal(t, " WHERE m.id_material ILIKE $1", where)
	require.Len(t, args, 1)
	assert.Equal(t, `%MAT\_01%`, args[0])
}
