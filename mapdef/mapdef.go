// Package mapdef parses the map definition file that ties together a
// world map's province/topology/river images, adjacency overrides, and
// climate zones, such as a "default.map" file.
package mapdef

import "github.com/azrogers/mapzk/clauser"

// Climate groups the seasonal provisioning fields for a map: the
// fallback climate applied to provinces not otherwise classified, and
// the province lists assigned to the harsher winter bands.
type Climate struct {
	DefaultClimate string
	MildWinter     []int32
	SevereWinter   []int32
}

// MapDefinition is the parsed contents of a map definition file.
// Fields not present in the source are left at their zero value.
type MapDefinition struct {
	Provinces   string
	Topology    string
	Rivers      string
	Adjacencies string
	Definitions string

	WrapX        bool
	MaxProvinces int32

	SeaStarts  []int32
	Lakes      []int32
	Continents []string

	Climate Climate
}

func buildClimateSchema(ps *clauser.ParseState, c *Climate) *clauser.ClassMapping {
	schema := clauser.NewClassMapping(ps)

	mappings := []struct {
		key     string
		mapping clauser.ValueMapping
	}{
		{"default_climate", clauser.MapString(&c.DefaultClimate)},
		{"mild_winter", clauser.MapInt32Slice(&c.MildWinter)},
		{"severe_winter", clauser.MapInt32Slice(&c.SevereWinter)},
	}

	for _, m := range mappings {
		// AddMapping only fails on a duplicate key within this schema,
		// which can't happen for this fixed, hand-written field list.
		_ = schema.AddMapping(m.key, m.mapping)
	}

	return schema
}

func buildSchema(ps *clauser.ParseState, d *MapDefinition) *clauser.ClassMapping {
	schema := clauser.NewClassMapping(ps)

	mappings := []struct {
		key     string
		mapping clauser.ValueMapping
	}{
		{"provinces", clauser.MapString(&d.Provinces)},
		{"topology", clauser.MapString(&d.Topology)},
		{"rivers", clauser.MapString(&d.Rivers)},
		{"adjacencies", clauser.MapString(&d.Adjacencies)},
		{"definitions", clauser.MapString(&d.Definitions)},
		{"wrap_x", clauser.MapBool(&d.WrapX)},
		{"max_provinces", clauser.MapInt32(&d.MaxProvinces)},
		{"sea_starts", clauser.MapInt32Slice(&d.SeaStarts)},
		{"lakes", clauser.MapInt32Slice(&d.Lakes)},
		{"continents", clauser.MapStringSlice(&d.Continents)},
		{"climate", clauser.MapObject(buildClimateSchema(ps, &d.Climate))},
	}

	for _, m := range mappings {
		_ = schema.AddMapping(m.key, m.mapping)
	}

	return schema
}

// Parse reads a map definition from source text, such as the contents
// of a "default.map" file.
func Parse(source string) (*MapDefinition, *clauser.ParseError) {
	ps := clauser.NewParseState(source)
	r := clauser.NewReader(ps)

	var def MapDefinition

	schema := buildSchema(ps, &def)
	if err := schema.ReadObject(r, ps); err != nil {
		return nil, err
	}

	return &def, nil
}
