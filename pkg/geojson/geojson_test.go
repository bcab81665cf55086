package geojson

import (
	"encoding/json"
	"testing"

	"github.com/lintang-b-s/go-area-edit/pkg"
	"github.com/lintang-b-s/go-area-edit/pkg/datastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalPolygon(t *testing.T) {
	poly := datastructure.NewPolygon(3, [][]float64{
		{110.320, -7.823},
		{110.352, -7.829},
		{110.409, -7.786},
	}, 2.5e6, 49, false)

	data, err := MarshalPolygon(poly)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Feature", decoded["type"])

	props := decoded["properties"].(map[string]interface{})
	assert.Equal(t, 2.5e6, props["ref_area_m2"])
	assert.Equal(t, "S", props["hemisphere"])
	assert.Equal(t, float64(49), props["utm_zone"])

	geom := decoded["geometry"].(map[string]interface{})
	assert.Equal(t, "Polygon", geom["type"])
	ring := geom["coordinates"].([]interface{})[0].([]interface{})
	assert.Len(t, ring, 4) // closed ring

	t.Run("degenerate record rejected", func(t *testing.T) {
		_, err := MarshalPolygon(datastructure.NewPolygon(4, poly.Vertices[:2], 0, 49, false))
		assert.ErrorIs(t, err, pkg.ErrDegeneratePolygon)
	})
}

func TestUnmarshalPolygon(t *testing.T) {
	t.Run("round trip drops the closing point", func(t *testing.T) {
		poly := datastructure.NewPolygon(1, [][]float64{
			{110.30, -7.80},
			{110.40, -7.80},
			{110.40, -7.70},
			{110.30, -7.70},
		}, 1e6, 49, false)

		data, err := MarshalPolygon(poly)
		require.NoError(t, err)

		vertices, err := UnmarshalPolygon(data)
		require.NoError(t, err)
		assert.Equal(t, poly.Vertices, vertices)
	})

	t.Run("non polygon geometry rejected", func(t *testing.T) {
		point := []byte(`{"type":"Feature","geometry":{"type":"Point","coordinates":[110.3,-7.8]},"properties":{}}`)
		_, err := UnmarshalPolygon(point)
		assert.ErrorIs(t, err, pkg.ErrBadParamInput)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := UnmarshalPolygon([]byte(`{`))
		assert.ErrorIs(t, err, pkg.ErrBadParamInput)
	})
}
