package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestSafeName(t *testing.T) {
	require.Equal(t, "my_car", SafeName("My Car"))
	require.Equal(t, "bmw_320i__2019_", SafeName("BMW 320i (2019)"))
	require.Equal(t, "", SafeName(""))
	require.Equal(t, "caf_", SafeName("Café"))
}

func TestEnsureDir_RelativeToCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureDir("exports")
	require.NoError(t, err)

	want := filepath.Join(tmp, "exports")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	again, err := EnsureDir("exports")
	require.NoError(t, err)
	require.Equal(t, got, again)
}

func TestEnsureDir_Absolute(t *testing.T) {
	want := filepath.Join(t.TempDir(), "a", "b")
	got, err := EnsureDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "exports")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	_, err := EnsureDir(path)
	require.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	path, err := WriteFile(dir, "civic_maintenance_2025-01-01.car", []byte(`{"version":"1.0"}`))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "civic_maintenance_2025-01-01.car"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, `{"version":"1.0"}`, string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file must be cleaned up")

	_, err = WriteFile(dir, "civic_maintenance_2025-01-01.car", []byte("v2"))
	require.NoError(t, err)
	b, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "v2", string(b))
}
