package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Amenities is the room amenity data as stored in the jsonb column. Two
// shapes exist in the data: an ordered list of amenity names, or a map from
// amenity name to a boolean flag. The zero value represents absent data and
// matches nothing.
type Amenities struct {
	list    []string
	flags   map[string]bool
	present bool
	isMap   bool
}

func AmenitiesFromList(names []string) Amenities {
	return Amenities{list: names, present: true}
}

func AmenitiesFromMap(flags map[string]bool) Amenities {
	return Amenities{flags: flags, present: true, isMap: true}
}

func (a Amenities) IsNull() bool {
	return !a.present
}

// Contains reports whether a single amenity name is satisfied: list
// membership for the list shape, a key whose value is exactly true for the
// map shape. A key present with value false does not count.
func (a Amenities) Contains(name string) bool {
	if !a.present {
		return false
	}

	if a.isMap {
		return a.flags[name]
	}

	for _, item := range a.list {
		if item == name {
			return true
		}
	}

	return false
}

// HasAll reports whether every requested name is satisfied. Absent amenity
// data never matches a non-empty request.
func (a Amenities) HasAll(names []string) bool {
	if !a.present {
		return false
	}

	for _, name := range names {
		if !a.Contains(name) {
			return false
		}
	}

	return true
}

func (a Amenities) MarshalJSON() ([]byte, error) {
	if !a.present {
		return []byte("null"), nil
	}

	if a.isMap {
		return json.Marshal(a.flags) // nolint:wrapcheck
	}

	if a.list == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(a.list) // nolint:wrapcheck
}

func (a *Amenities) UnmarshalJSON(data []byte) error {
	*a = Amenities{}

	if string(data) == "null" {
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = AmenitiesFromList(list)

		return nil
	}

	var flags map[string]bool
	if err := json.Unmarshal(data, &flags); err != nil {
		return fmt.Errorf("amenities must be a string list or a name-to-bool map: %w", err)
	}

	*a = AmenitiesFromMap(flags)

	return nil
}

func (a Amenities) Value() (driver.Value, error) {
	if !a.present {
		return nil, nil
	}

	return a.MarshalJSON()
}

func (a *Amenities) Scan(src any) error {
	if src == nil {
		*a = Amenities{}

		return nil
	}

	switch value := src.(type) {
	case []byte:
		return a.UnmarshalJSON(value)
	case string:
		return a.UnmarshalJSON([]byte(value))
	default:
		return fmt.Errorf("unsupported amenities source type %T", src)
	}
}

// PhotoList is the room photo gallery, stored as a jsonb array of URLs.
type PhotoList []string

func (p PhotoList) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]string(p)) // nolint:wrapcheck
}

func (p *PhotoList) Scan(src any) error {
	if src == nil {
		*p = nil

		return nil
	}

	switch value := src.(type) {
	case []byte:
		return json.Unmarshal(value, p) // nolint:wrapcheck
	case string:
		return json.Unmarshal([]byte(value), p) // nolint:wrapcheck
	default:
		return fmt.Errorf("unsupported photos source type %T", src)
	}
}
