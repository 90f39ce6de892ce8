package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrderLogFileCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order_log.csv")

	records, next, err := LoadOrderLogFile(path, testLogger())
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, int32(0), next)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Order number,Product name,Quantity\n", string(content))
}

func TestLoadOrderLogFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order_log.csv")
	require.NoError(t, ResetOrderLogFile(path))
	require.NoError(t, AppendOrderLog(path, []LogEntry{
		{OrderNumber: 0, ProductName: "Tux", Quantity: 1},
		{OrderNumber: 1, ProductName: "Whale", Quantity: 3},
	}))
	require.NoError(t, AppendOrderLog(path, []LogEntry{
		{OrderNumber: 2, ProductName: "Fox", Quantity: 2},
	}))

	records, next, err := LoadOrderLogFile(path, testLogger())
	require.NoError(t, err)
	assert.Equal(t, int32(3), next)
	require.Len(t, records, 3)
	assert.Equal(t, Record{ProductName: "Whale", Quantity: 3}, records[1])
}

func TestLoadOrderLogFileNextSkipsGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order_log.csv")
	require.NoError(t, ResetOrderLogFile(path))
	require.NoError(t, AppendOrderLog(path, []LogEntry{
		{OrderNumber: 0, ProductName: "Tux", Quantity: 1},
		{OrderNumber: 4, ProductName: "Bear", Quantity: 1},
	}))

	// next is max seen + 1, not the count of records.
	records, next, err := LoadOrderLogFile(path, testLogger())
	require.NoError(t, err)
	assert.Equal(t, int32(5), next)
	assert.Len(t, records, 2)
}

func TestLoadOrderLogFileResetsMalformedContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"wrong header", "number,name,qty\n0,Tux,1\n"},
		{"no header", ""},
		{"non numeric order number", "Order number,Product name,Quantity\nabc,Tux,1\n"},
		{"negative order number", "Order number,Product name,Quantity\n-2,Tux,1\n"},
		{"non numeric quantity", "Order number,Product name,Quantity\n0,Tux,many\n"},
		{"missing field", "Order number,Product name,Quantity\n0,Tux\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "order_log.csv")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			records, next, err := LoadOrderLogFile(path, testLogger())
			require.NoError(t, err)
			assert.Empty(t, records)
			assert.Equal(t, int32(0), next)

			// The file itself was reset to a header-only state.
			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "Order number,Product name,Quantity\n", string(content))
		})
	}
}

func TestLoadOrderLogFileAcceptsSpacesAroundFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order_log.csv")
	content := "Order number, Product name, Quantity\n0, Tux, 1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, next, err := LoadOrderLogFile(path, testLogger())
	require.NoError(t, err)
	assert.Equal(t, int32(1), next)
	assert.Equal(t, Record{ProductName: "Tux", Quantity: 1}, records[0])
}
