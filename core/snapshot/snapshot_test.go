package snapshot

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	r := NewRecord([]string{"Kode Barang", "Nama Barang", "Mesin", "Satuan"}, []string{"B-001", "Bearing", ""})

	code, ok := r.Get("Kode Barang")
	require.True(t, ok)
	assert.Equal(t, "B-001", *code)

	machine, ok := r.Get("Mesin")
	assert.True(t, ok)
	assert.Nil(t, machine, "empty cell is null")

	unit, ok := r.Get("Satuan")
	assert.True(t, ok)
	assert.Nil(t, unit, "missing trailing cell is null")

	_, ok = r.Get("Lokasi")
	assert.False(t, ok)
}

func TestRecord_JSONPreservesOrder(t *testing.T) {
	r := NewRecord([]string{"Zeta", "Alpha", "Mid"}, []string{"1", "", "x"})

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"Zeta":"1","Alpha":null,"Mid":"x"}`, string(data))

	var back Record
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, back.Headers())
}

func TestRecord_UnmarshalNonStringCells(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{"Qty":12,"Active":true,"Note":""}`), &r))

	qty, _ := r.Get("Qty")
	assert.Equal(t, "12", *qty)
	active, _ := r.Get("Active")
	assert.Equal(t, "true", *active)
	note, ok := r.Get("Note")
	assert.True(t, ok)
	assert.Nil(t, note)
}

func TestWriteRead(t *testing.T) {
	dir := t.TempDir()
	sheets := []string{"Barang", "Mutasi Gudang"}
	data := map[string][]Record{
		"Barang": {NewRecord([]string{"Kode Barang"}, []string{"B-001"})},
	}

	require.NoError(t, Write(dir, sheets, data))

	assert.FileExists(t, filepath.Join(dir, "barang.json"))
	assert.FileExists(t, filepath.Join(dir, "mutasi_gudang.json"))
	assert.FileExists(t, filepath.Join(dir, CombinedFile))

	records, err := Read(dir, "Barang")
	require.NoError(t, err)
	require.Len(t, records, 1)

	empty, err := Read(dir, "Mutasi Gudang")
	require.NoError(t, err)
	assert.Empty(t, empty)

	combined, err := os.ReadFile(filepath.Join(dir, CombinedFile))
	require.NoError(t, err)
	var doc map[string][]map[string]*string
	require.NoError(t, json.Unmarshal(combined, &doc))
	assert.Len(t, doc["Barang"], 1)
	assert.Empty(t, doc["Mutasi Gudang"])
}

func TestWrite_Overwrites(t *testing.T) {
	dir := t.TempDir()
	first := map[string][]Record{"Vendor": {
		NewRecord([]string{"Kode Vendor"}, []string{"V1"}),
		NewRecord([]string{"Kode Vendor"}, []string{"V2"}),
	}}
	second := map[string][]Record{"Vendor": {NewRecord([]string{"Kode Vendor"}, []string{"V3"})}}

	require.NoError(t, Write(dir, []string{"Vendor"}, first))
	require.NoError(t, Write(dir, []string{"Vendor"}, second))

	records, err := Read(dir, "Vendor")
	require.NoError(t, err)
	require.Len(t, records, 1)
	code, _ := records[0].Get("Kode Vendor")
	assert.Equal(t, "V3", *code)
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(t.TempDir(), "Pembelian")

	var missing *MissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Pembelian", missing.Sheet)
	assert.Contains(t, err.Error(), "extract")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "mutasi_gudang.json", FileName("Mutasi Gudang"))
	assert.Equal(t, "users.json", FileName("Users"))
}
