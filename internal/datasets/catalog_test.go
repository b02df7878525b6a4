package datasets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opendata/internal/datasets"
	"opendata/internal/etl"
	"opendata/internal/payload"
)

func byName(t *testing.T, name string) etl.Dataset {
	t.Helper()
	for _, ds := range datasets.Catalog() {
		if ds.Name == name {
			return ds
		}
	}
	t.Fatalf("dataset %q not in catalog", name)
	return etl.Dataset{}
}

func TestCatalog_NamesUniqueAndOrdered(t *testing.T) {
	var names []string
	seen := map[string]bool{}
	for _, ds := range datasets.Catalog() {
		assert.False(t, seen[ds.Name], "duplicate %s", ds.Name)
		seen[ds.Name] = true
		names = append(names, ds.Name)
		assert.NotEmpty(t, ds.Endpoint)
	}
	assert.Equal(t, []string{
		"eatsafe", "toilets", "defibrillators", "recycling", "vehicles",
		"vehicles-colors", "vehicles-makes", "vehicles-models",
		"carparks", "carparks-spaces", "foi-requests", "bus-stops",
	}, names)
}

func TestCatalog_ColumnSets(t *testing.T) {
	cases := map[string][]string{
		"eatsafe":        {"name", "rating", "createdAt", "address1", "address2", "address3", "postCode", "latitude", "longitude"},
		"toilets":        {"id", "createdAt", "name", "parish", "latitude", "longitude", "ownerName", "facilities"},
		"defibrillators": {"id", "location", "streetName", "parish", "postCode", "padNumber", "latitude", "longitude", "notes"},
		"recycling":      {"id", "createdAt", "location", "parish", "latitude", "longitude", "notes", "services"},
		"vehicles":       {"make", "model", "color", "cylinderCapacity", "weight", "co2Emissions", "fuelType", "firstRegisteredAt", "firstRegisteredInJerseyAt"},
		"carparks": {"id", "name", "surfaceType", "spaces", "disabledSpaces", "parentChildSpaces", "electricChargingSpaces",
			"multiStorey", "ownerName", "paymentMethods", "notes", "latitude", "longitude", "payByPhoneCode", "type"},
		"foi-requests": {"id", "title", "author", "producer", "publishDate"},
	}
	for name, want := range cases {
		ds := byName(t, name)
		require.NotNil(t, ds.Projection, name)
		assert.Equal(t, want, ds.Projection.ColumnNames(), name)
	}
}

func TestCatalog_ToiletsExcludeCreatedAt(t *testing.T) {
	ds := byName(t, "toilets")
	v, err := payload.Parse([]byte(`{"results":[{"id":1,"createdAt":"2020","owner":{"name":"Parish of Grouville"},"facilities":["accessible"]}]}`))
	require.NoError(t, err)

	snapshot, rows := ds.Build(v)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"id", "name", "parish", "latitude", "longitude", "ownerName", "facilities"}, rows[0].Data.Keys())
	assert.Equal(t, "Parish of Grouville", rows[0].Get("ownerName"))

	out, err := payload.Marshal(snapshot)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "createdAt")
}

func TestCatalog_CarparksFlattening(t *testing.T) {
	ds := byName(t, "carparks")
	v, err := payload.Parse([]byte(`{"results":[{"id":"sand-street","multiStorey":true,"paymentMethods":["card","phone"]}]}`))
	require.NoError(t, err)

	_, rows := ds.Build(v)
	require.Len(t, rows, 1)
	assert.Equal(t, "card,phone", rows[0].Get("paymentMethods"))
	assert.Nil(t, rows[0].Get("ownerName"))
	assert.Equal(t, true, rows[0].Get("multiStorey"))
}

func TestCatalog_Kinds(t *testing.T) {
	for _, name := range []string{"vehicles-colors", "vehicles-makes", "vehicles-models"} {
		ds := byName(t, name)
		assert.Equal(t, etl.KindObjectMap, ds.Kind, name)
		assert.Equal(t, "count", ds.ValueColumn, name)
	}
	assert.Equal(t, "color", byName(t, "vehicles-colors").KeyColumn)
	assert.Equal(t, "make", byName(t, "vehicles-makes").KeyColumn)
	assert.Equal(t, "model", byName(t, "vehicles-models").KeyColumn)

	assert.Equal(t, etl.KindPivot, byName(t, "carparks-spaces").Kind)
	assert.Nil(t, byName(t, "bus-stops").Projection.ColumnNames())
}
