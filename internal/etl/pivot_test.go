package etl_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opendata/internal/etl"
	"opendata/internal/payload"
)

func TestPivot_RoundTrip(t *testing.T) {
	triples, ok := payload.AsList(mustParse(t,
		`[["2024-01-02","A",5],["2024-01-01","A",3],["2024-01-01","B",7]]`))
	require.True(t, ok)

	table := etl.Pivot(triples, "date")

	assert.Equal(t, []string{"A", "B"}, table.Columns)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, "2024-01-02", table.Rows[0].Get("date"))
	assert.Equal(t, json.Number("5"), table.Rows[0].Get("A"))
	assert.Equal(t, "", table.Rows[0].Get("B"))

	assert.Equal(t, "2024-01-01", table.Rows[1].Get("date"))
	assert.Equal(t, json.Number("3"), table.Rows[1].Get("A"))
	assert.Equal(t, json.Number("7"), table.Rows[1].Get("B"))

	assert.Equal(t, []string{"date", "A", "B"}, table.Rows[0].Data.Keys())
}

func TestPivot_DuplicateLastWins(t *testing.T) {
	triples := []any{
		[]any{"2024-03-01", "Sand Street", json.Number("10")},
		[]any{"2024-03-01", "Sand Street", json.Number("12")},
	}
	table := etl.Pivot(triples, "date")
	require.Len(t, table.Rows, 1)
	assert.Equal(t, json.Number("12"), table.Rows[0].Get("Sand Street"))
}

func TestPivot_SkipsMalformed(t *testing.T) {
	triples := []any{
		[]any{"2024-03-01", "Pier Road"},
		"nope",
		nil,
		[]any{"2024-03-02", "Green Street", json.Number("1")},
	}
	table := etl.Pivot(triples, "date")
	assert.Equal(t, []string{"Green Street"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "2024-03-02", table.Rows[0].Get("date"))
}

func TestPivot_Empty(t *testing.T) {
	table := etl.Pivot(nil, "date")
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestNormalizeObjectMap(t *testing.T) {
	rows := etl.NormalizeObjectMap(mustParse(t, `{"red":10,"blue":3}`), "color", "count")
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"color", "count"}, rows[0].Data.Keys())
	assert.Equal(t, "red", rows[0].Get("color"))
	assert.Equal(t, json.Number("10"), rows[0].Get("count"))
	assert.Equal(t, "blue", rows[1].Get("color"))
	assert.Equal(t, json.Number("3"), rows[1].Get("count"))
}

func TestNormalizeObjectMap_NotAnObject(t *testing.T) {
	assert.Empty(t, etl.NormalizeObjectMap(nil, "make", "count"))
	assert.Empty(t, etl.NormalizeObjectMap([]any{"x"}, "make", "count"))
	assert.Empty(t, etl.NormalizeObjectMap(payload.NewObject(), "make", "count"))
}

func TestPivot_SkipsCategoryNamedLikeKeyColumn(t *testing.T) {
	triples := []any{
		[]any{"2024-01-01", "date", json.Number("5")},
		[]any{"2024-01-01", "Sand Street", json.Number("9")},
	}
	table := etl.Pivot(triples, "date")

	assert.Equal(t, []string{"Sand Street"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "2024-01-01", table.Rows[0].Get("date"))
	assert.Equal(t, json.Number("9"), table.Rows[0].Get("Sand Street"))
	assert.Equal(t, []string{"date", "Sand Street"}, table.Rows[0].Data.Keys())
}
