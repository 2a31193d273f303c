package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifier_DeriveKey(t *testing.T) {
	id := Identifier{Marker: "cloudinary.com", Delimiter: "/upload/"}

	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{"Versioned", "https://res.cloudinary.com/demo/image/upload/v1234567890/trk-inventory/barang/image123.jpg", "trk-inventory/barang/image123", true},
		{"Unversioned", "https://res.cloudinary.com/demo/image/upload/trk-inventory/barang/image123.png", "trk-inventory/barang/image123", true},
		{"FolderStartingWithV", "https://res.cloudinary.com/demo/image/upload/v1/trk-inventory/vendor/logo.png", "trk-inventory/vendor/logo", true},
		{"VersionLikeName", "https://res.cloudinary.com/demo/image/upload/v2x/item.jpg", "v2x/item", true},
		{"DotInFolder", "https://res.cloudinary.com/demo/image/upload/v9/release.v2/item.final.jpg", "release.v2/item.final", true},
		{"NoExtension", "https://res.cloudinary.com/demo/image/upload/folder/item", "folder/item", true},
		{"QueryDropped", "https://res.cloudinary.com/demo/image/upload/v1/a/b.jpg?_a=xyz", "a/b", true},
		{"MissingDelimiter", "https://res.cloudinary.com/demo/image/fetch/a/b.jpg", "", false},
		{"MissingMarker", "https://cdn.example.com/image/upload/v1/a/b.jpg", "", false},
		{"OnlyVersion", "https://res.cloudinary.com/demo/image/upload/v123", "", false},
		{"Empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := id.DeriveKey(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentifier_Stable(t *testing.T) {
	id := Identifier{Marker: "cloudinary.com", Delimiter: "/upload/"}
	url := "https://res.cloudinary.com/demo/image/upload/v1/trk-inventory/barang/b.jpg"

	first, _ := id.DeriveKey(url)
	second, _ := id.DeriveKey(url)
	assert.Equal(t, first, second)

	other, _ := id.DeriveKey("https://res.cloudinary.com/demo/image/upload/v1/trk-inventory/barang/c.jpg")
	assert.NotEqual(t, first, other)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 100, ClampLimit(100, 500))
	assert.Equal(t, 250, ClampLimit(0, 250))
	assert.Equal(t, MaxListLimit, ClampLimit(10000, 500))
	assert.Equal(t, MaxListLimit, ClampLimit(-1, 0))
}

func TestConfig_Validate(t *testing.T) {
	base := Config{Provider: ProviderCloudinary, DomainMarker: "cloudinary.com", Delimiter: "/upload/", ListLimit: 500,
		Cloudinary: CloudinaryConfig{CloudName: "demo", APIKey: "k", APISecret: "s"}}
	assert.NoError(t, base.Validate())

	noSecret := base
	noSecret.Cloudinary.APISecret = ""
	assert.Error(t, noSecret.Validate())

	minioCfg := base
	minioCfg.Provider = ProviderMinio
	assert.Error(t, minioCfg.Validate(), "minio needs a public base url")
	minioCfg.PublicBaseURL = "https://assets.example.com"
	assert.NoError(t, minioCfg.Validate())

	tooMany := base
	tooMany.ListLimit = 501
	assert.Error(t, tooMany.Validate())
}
