package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"inn/internal/domains/room/model"
)

func TestAmenities_HasAll(t *testing.T) {
	tests := []struct {
		name      string
		amenities model.Amenities
		requested []string
		expected  bool
	}{
		{
			name:      "list contains all requested",
			amenities: model.AmenitiesFromList([]string{"wifi", "tv", "minibar"}),
			requested: []string{"wifi", "tv"},
			expected:  true,
		},
		{
			name:      "list missing one requested",
			amenities: model.AmenitiesFromList([]string{"wifi", "tv"}),
			requested: []string{"wifi", "minibar"},
			expected:  false,
		},
		{
			name:      "single requested present in list",
			amenities: model.AmenitiesFromList([]string{"wifi", "tv"}),
			requested: []string{"wifi"},
			expected:  true,
		},
		{
			name:      "map with all true values",
			amenities: model.AmenitiesFromMap(map[string]bool{"wifi": true, "tv": true}),
			requested: []string{"wifi", "tv"},
			expected:  true,
		},
		{
			name:      "map key present but false",
			amenities: model.AmenitiesFromMap(map[string]bool{"wifi": true, "tv": false}),
			requested: []string{"wifi", "tv"},
			expected:  false,
		},
		{
			name:      "map key absent",
			amenities: model.AmenitiesFromMap(map[string]bool{"wifi": true}),
			requested: []string{"wifi", "minibar"},
			expected:  false,
		},
		{
			name:      "null amenities never match",
			amenities: model.Amenities{},
			requested: []string{"wifi"},
			expected:  false,
		},
		{
			name:      "empty list does not match",
			amenities: model.AmenitiesFromList(nil),
			requested: []string{"wifi"},
			expected:  false,
		},
		{
			name:      "empty request matches present data",
			amenities: model.AmenitiesFromList([]string{"wifi"}),
			requested: nil,
			expected:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.amenities.HasAll(test.requested))
		})
	}
}

func TestAmenities_UnmarshalJSON(t *testing.T) {
	var fromList model.Amenities
	err := json.Unmarshal([]byte(`["wifi","tv"]`), &fromList)
	assert.NoError(t, err)
	assert.True(t, fromList.Contains("wifi"))
	assert.False(t, fromList.Contains("minibar"))

	var fromMap model.Amenities
	err = json.Unmarshal([]byte(`{"wifi":true,"tv":false}`), &fromMap)
	assert.NoError(t, err)
	assert.True(t, fromMap.Contains("wifi"))
	assert.False(t, fromMap.Contains("tv"))

	var fromNull model.Amenities
	err = json.Unmarshal([]byte(`null`), &fromNull)
	assert.NoError(t, err)
	assert.True(t, fromNull.IsNull())

	var invalid model.Amenities
	err = json.Unmarshal([]byte(`42`), &invalid)
	assert.Error(t, err)
}

func TestAmenities_RoundTrip(t *testing.T) {
	listJSON, err := json.Marshal(model.AmenitiesFromList([]string{"wifi"}))
	assert.NoError(t, err)
	assert.JSONEq(t, `["wifi"]`, string(listJSON))

	mapJSON, err := json.Marshal(model.AmenitiesFromMap(map[string]bool{"wifi": true}))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"wifi":true}`, string(mapJSON))

	nullJSON, err := json.Marshal(model.Amenities{})
	assert.NoError(t, err)
	assert.Equal(t, "null", string(nullJSON))
}

func TestAmenities_Scan(t *testing.T) {
	var scanned model.Amenities
	err := scanned.Scan([]byte(`{"pool":true}`))
	assert.NoError(t, err)
	assert.True(t, scanned.Contains("pool"))

	err = scanned.Scan(nil)
	assert.NoError(t, err)
	assert.True(t, scanned.IsNull())
}

func TestPhotoList_Scan(t *testing.T) {
	var photos model.PhotoList
	err := photos.Scan([]byte(`["https://cdn.example.com/a.jpg"]`))
	assert.NoError(t, err)
	assert.Len(t, photos, 1)

	value, err := model.PhotoList(nil).Value()
	assert.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)
}
