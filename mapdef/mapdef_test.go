package mapdef_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azrogers/mapzk/clauser"
	"github.com/azrogers/mapzk/internal/stringtest"
	"github.com/azrogers/mapzk/mapdef"
)

func TestParse_FlatFieldsAndDefaults(t *testing.T) {
	t.Parallel()

	source := stringtest.JoinLF(
		`provinces = "provinces.png"`,
		`topology = "topology.png"`,
		`wrap_x = yes`,
		`sea_starts = { 1 4 9 }`,
	)

	def, err := mapdef.Parse(source)
	require.Nil(t, err)

	assert.Equal(t, "provinces.png", def.Provinces)
	assert.Equal(t, "topology.png", def.Topology)
	assert.True(t, def.WrapX)
	assert.Equal(t, []int32{1, 4, 9}, def.SeaStarts)

	assert.Equal(t, "", def.Rivers)
	assert.Equal(t, "", def.Adjacencies)
	assert.Nil(t, def.Lakes)
}

func TestParse_NestedClimateAndContinents(t *testing.T) {
	t.Parallel()

	source := stringtest.JoinLF(
		`provinces = "provinces.png"`,
		`max_provinces = 4096`,
		`continents = { europa asia "north_africa" }`,
		`climate = {`,
		`	default_climate = temperate`,
		`	mild_winter = { 12 45 78 }`,
		`	severe_winter = { 200 201 }`,
		`}`,
	)

	def, err := mapdef.Parse(source)
	require.Nil(t, err)

	assert.Equal(t, int32(4096), def.MaxProvinces)
	assert.Equal(t, []string{"europa", "asia", "north_africa"}, def.Continents)
	assert.Equal(t, "temperate", def.Climate.DefaultClimate)
	assert.Equal(t, []int32{12, 45, 78}, def.Climate.MildWinter)
	assert.Equal(t, []int32{200, 201}, def.Climate.SevereWinter)
}

func TestParse_UnknownKeyIsError(t *testing.T) {
	t.Parallel()

	_, err := mapdef.Parse(`not_a_real_field = 1`)
	require.NotNil(t, err)
	assert.Equal(t, clauser.ErrKindUnknownKey, err.Kind)
}

func TestParse_EmptyInputYieldsZeroValueDefinition(t *testing.T) {
	t.Parallel()

	def, err := mapdef.Parse(``)
	require.Nil(t, err)
	assert.Equal(t, "", def.Provinces)
	assert.False(t, def.WrapX)
	assert.Nil(t, def.Continents)
}
