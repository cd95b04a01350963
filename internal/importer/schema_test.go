package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPackageFile_JSONAndYAMLAgree(t *testing.T) {
	fromJSON, err := LoadPackageFile(filepath.Join("testdata", "packages.json"))
	require.NoError(t, err)
	fromYAML, err := LoadPackageFile(filepath.Join("testdata", "packages.yaml"))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
	require.Len(t, fromJSON.Packages, 3)
	assert.Equal(t, "SWM", fromJSON.Packages[0].Code)
	assert.Equal(t, []float64{720, 1, 80, 25, 40}, fromJSON.Packages[0].Values)
	assert.Equal(t, "morning pool", fromJSON.Packages[0].Label)
	assert.Equal(t, 180.0, fromJSON.Packages[2].Fields["height_cm"])
}

func TestLoadPackageFile_UnsupportedExtension(t *testing.T) {
	_, err := LoadPackageFile("packages.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported package file extension")
}

func TestLoadPackageFile_Missing(t *testing.T) {
	_, err := LoadPackageFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestParsePackageFile_Malformed(t *testing.T) {
	_, err := ParsePackageFile([]byte(`{"packages": [`), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing package file")

	_, err = ParsePackageFile([]byte("packages: [\n"), FormatYAML)
	require.Error(t, err)
}

func TestFormatForPath(t *testing.T) {
	cases := map[string]Format{
		"a.json": FormatJSON,
		"a.JSON": FormatJSON,
		"a.yaml": FormatYAML,
		"a.yml":  FormatYAML,
	}
	for path, want := range cases {
		got, err := FormatForPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
}
