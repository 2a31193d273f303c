package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"inventory-sync/core/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	grids map[string][][]string
	errs  map[string]error
}

func (f *fakeSource) Fetch(_ context.Context, sheet string) ([][]string, error) {
	if err, ok := f.errs[sheet]; ok {
		return nil, err
	}
	return f.grids[sheet], nil
}

func TestExtractor_Run(t *testing.T) {
	dir := t.TempDir()
	source := &fakeSource{
		grids: map[string][][]string{
			"Barang": {
				{"Kode Barang", "Nama Barang", "Mesin"},
				{"B-001", "Bearing 6204"},
				{"B-002", "V-Belt A42", "Mixer"},
			},
			"Vendor": {},
		},
		errs: map[string]error{
			"Pembelian": errors.New("quota exceeded"),
		},
	}

	ex := New(source, dir, zap.NewNop())
	result, err := ex.Run(context.Background(), []string{"Barang", "Vendor", "Pembelian"})
	require.NoError(t, err)

	require.Len(t, result.Sheets, 3)
	assert.Equal(t, SheetResult{Sheet: "Barang", Records: 2}, result.Sheets[0])
	assert.Equal(t, "no data found", result.Sheets[1].Warning)
	assert.Equal(t, "quota exceeded", result.Sheets[2].Warning)
	assert.Equal(t, 2, result.Total())

	records, err := snapshot.Read(dir, "Barang")
	require.NoError(t, err)
	require.Len(t, records, 2)
	machine, ok := records[0].Get("Mesin")
	assert.True(t, ok)
	assert.Nil(t, machine)

	failed, err := snapshot.Read(dir, "Pembelian")
	require.NoError(t, err, "failed sheets still get an empty snapshot")
	assert.Empty(t, failed)
	assert.FileExists(t, filepath.Join(dir, snapshot.CombinedFile))
}

func TestExtractor_Run_WriteFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	ex := New(&fakeSource{}, file, zap.NewNop())
	_, err := ex.Run(context.Background(), []string{"Users"})
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	sheets := []string{"Users"}
	assert.NoError(t, Config{Provider: ProviderSheets, SpreadsheetID: "abc", CredentialsFile: "c.json", Sheets: sheets}.Validate())
	assert.NoError(t, Config{Provider: ProviderCSV, CSVDir: "export/csv", Sheets: sheets}.Validate())
	assert.Error(t, Config{Provider: ProviderSheets, CredentialsFile: "c.json", Sheets: sheets}.Validate())
	assert.Error(t, Config{Provider: ProviderCSV, CSVDir: "x"}.Validate())
	assert.Error(t, Config{Provider: "excel", Sheets: sheets}.Validate())
}

func ExampleCSVFileName() {
	fmt.Println(CSVFileName("Mutasi Gudang"))
	// Output: mutasi_gudang.csv
}
