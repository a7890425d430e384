package sed

import (
	"testing"

	"github.com/RMahshie/sedview/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalogue(n int) Catalogue {
	cat := make(Catalogue, n)
	for i := range cat {
		cat[i] = models.CatalogueRow{Index: i, RA: float64(i), Dec: -float64(i), Fluxes: map[string]float64{"u_flux": float64(i)}}
	}
	return cat
}

func TestSelectGalaxy(t *testing.T) {
	cat := testCatalogue(5)

	for i := 0; i < cat.Len(); i++ {
		row, err := SelectGalaxy(cat, i)
		require.NoError(t, err)
		assert.Equal(t, i, row.Index)
		assert.Equal(t, float64(i), row.RA)
	}

	assert.Equal(t, testCatalogue(5), cat, "catalogue must not be mutated")
}

func TestSelectGalaxy_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		index int
	}{
		{name: "negative", size: 5, index: -1},
		{name: "length", size: 5, index: 5},
		{name: "far past end", size: 5, index: 1000},
		{name: "empty catalogue", size: 0, index: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SelectGalaxy(testCatalogue(tt.size), tt.index)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
		})
	}
}

func validRow(index int) models.CatalogueRow {
	fluxes := map[string]float64{"ch1_swire_flux": 50}
	for _, key := range coreBandKeys {
		fluxes[key] = 50
	}
	return models.CatalogueRow{Index: index, Fluxes: fluxes}
}

func TestRowIsValid(t *testing.T) {
	assert.True(t, RowIsValid(validRow(0), 10))
	assert.False(t, RowIsValid(validRow(0), 50), "limit is exclusive")

	servs := validRow(0)
	delete(servs.Fluxes, "ch1_swire_flux")
	assert.False(t, RowIsValid(servs, 10))
	servs.Fluxes[ServsChannel1Key] = 20
	assert.True(t, RowIsValid(servs, 10))

	faint := validRow(0)
	faint.Fluxes["F_SPIRE_250"] = 3
	assert.False(t, RowIsValid(faint, 10))

	sentinel := validRow(0)
	sentinel.Fluxes["K_flux"] = MissingSentinel
	assert.False(t, RowIsValid(sentinel, 10))
}

func TestShortList(t *testing.T) {
	cat := Catalogue{validRow(0), {Index: 1}, validRow(2), validRow(3), {Index: 4}, validRow(5)}

	all := ShortList(cat, 10, 0)
	require.Len(t, all, 4)
	assert.Equal(t, []int{0, 2, 3, 5}, []int{all[0].Index, all[1].Index, all[2].Index, all[3].Index})

	capped := ShortList(cat, 10, 2)
	require.Len(t, capped, 2)
	assert.Equal(t, 2, capped[1].Index)

	assert.Empty(t, ShortList(cat, 100, 50))
}
