package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JonMunkholm/inventory/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCSV(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.Item
		nullText string
		want     string
	}{
		{
			name:  "empty set is header only",
			items: nil,
			want:  "sku,name,description,size,color,count",
		},
		{
			name: "size precedes color",
			items: []models.Item{
				{SKU: "A1", Name: "Widget", Description: "Small", Color: strPtr("red"), Size: strPtr("M"), Count: 3},
			},
			want: "sku,name,description,size,color,count\n" +
				`"A1","Widget","Small","M","red","3"`,
		},
		{
			name: "absent optionals use null text",
			items: []models.Item{
				{SKU: "A1", Name: "n", Description: "d", Count: 1},
			},
			nullText: "null",
			want: "sku,name,description,size,color,count\n" +
				`"A1","n","d","null","null","1"`,
		},
		{
			name: "embedded quotes and commas",
			items: []models.Item{
				{SKU: "A1", Name: `12" ruler`, Description: "wood, oak", Count: 2},
			},
			nullText: "",
			want: "sku,name,description,size,color,count\n" +
				`"A1","12"" ruler","wood, oak","","","2"`,
		},
		{
			name: "rows joined without trailing newline",
			items: []models.Item{
				{SKU: "A", Name: "a", Description: "a", Count: 1},
				{SKU: "B", Name: "b", Description: "b", Count: 2},
			},
			nullText: "null",
			want: "sku,name,description,size,color,count\n" +
				`"A","a","a","null","null","1"` + "\n" +
				`"B","b","b","null","null","2"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderCSV(tt.items, tt.nullText))
		})
	}
}

func TestService_Export(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newMemStore())

	_, err := svc.CreateItem(ctx, CreateInput{SKU: "A1", Name: "Widget", Description: "d", Size: strPtr("L"), Count: 4})
	require.NoError(t, err)

	file, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, file.Rows)
	assert.True(t, strings.HasPrefix(file.Name, "inventory-"))
	assert.True(t, strings.HasSuffix(file.Name, ".csv"))
	assert.Equal(t, svc.exportDir, filepath.Dir(file.Path))

	data, err := os.ReadFile(file.Path)
	require.NoError(t, err)
	assert.Equal(t,
		"sku,name,description,size,color,count\n"+`"A1","Widget","d","L","null","4"`,
		string(data))

	require.NoError(t, file.Cleanup())
	_, err = os.Stat(file.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	// Second cleanup is a no-op.
	assert.NoError(t, file.Cleanup())
}

func TestService_ExportUniqueNames(t *testing.T) {
	svc := newTestService(t, newMemStore())

	first, err := svc.Export(context.Background())
	require.NoError(t, err)
	defer first.Cleanup()

	second, err := svc.Export(context.Background())
	require.NoError(t, err)
	defer second.Cleanup()

	assert.NotEqual(t, first.Path, second.Path)
}

func TestService_ExportWriteFailure(t *testing.T) {
	svc := newTestService(t, newMemStore())
	svc.exportDir = filepath.Join(t.TempDir(), "missing")

	_, err := svc.Export(context.Background())
	require.Error(t, err)
	assert.Equal(t, "EXP001", MapError(err).Code)
}

func TestService_ExportListFailure(t *testing.T) {
	store := newMemStore()
	store.listErr = errors.New("no such table: items")
	svc := newTestService(t, store)

	_, err := svc.Export(context.Background())
	require.Error(t, err)
	assert.Equal(t, "DB002", MapError(err).Code)
}
