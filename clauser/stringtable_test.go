package clauser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azrogers/mapzk/clauser"
)

func TestParseState_AddString_DedupesByContent(t *testing.T) {
	t.Parallel()

	ps := clauser.NewParseState("province_1 province_1")

	a := ps.AddString("province_1")
	b := ps.AddString("province_1")
	assert.Equal(t, a, b)

	c := ps.AddString("province_2")
	assert.NotEqual(t, a, c)
}

// Regression test for the documented original-source bug: AddString and
// AddOwnedString must intern through the same table, so the same content
// added through either entry point yields the same id.
func TestParseState_AddOwnedString_SharesTableWithAddString(t *testing.T) {
	t.Parallel()

	ps := clauser.NewParseState("")

	a := ps.AddString("coastal")
	b := ps.AddOwnedString("coastal")
	assert.Equal(t, a, b)

	c := ps.AddOwnedString("inland")
	d := ps.AddString("inland")
	assert.Equal(t, c, d)
}

func TestParseState_Lookup_RoundTrips(t *testing.T) {
	t.Parallel()

	ps := clauser.NewParseState("")

	id := ps.AddString("hello")

	got, err := ps.Lookup(id)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestParseState_Lookup_InvalidID(t *testing.T) {
	t.Parallel()

	ps := clauser.NewParseState("")

	_, err := ps.Lookup(clauser.StringID(42))
	assert.Error(t, err)

	_, err = ps.Lookup(clauser.StringID(-1))
	assert.Error(t, err)
}

func TestParseState_MustLookup_PanicsOnInvalidID(t *testing.T) {
	t.Parallel()

	ps := clauser.NewParseState("")

	assert.Panics(t, func() {
		ps.MustLookup(clauser.StringID(7))
	})
}

func TestParseState_MustLookup_ReturnsInternedValue(t *testing.T) {
	t.Parallel()

	ps := clauser.NewParseState("")

	id := ps.AddString("fortified")
	assert.Equal(t, "fortified", ps.MustLookup(id))
}

func TestParseState_Source(t *testing.T) {
	t.Parallel()

	ps := clauser.NewParseState("wrap_x = no")
	assert.Equal(t, "wrap_x = no", ps.Source())
}
