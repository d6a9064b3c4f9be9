package store_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coldsign/internal/domain"
	"coldsign/internal/store"
)

func testContainer() domain.KeyContainer {
	return domain.KeyContainer{
		Version:    1,
		Salt:       "c2FsdA==",
		Nonce:      "bm9uY2U=",
		Ciphertext: "Y2lwaGVydGV4dA==",
		PublicKey:  "4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofM",
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	want := testContainer()
	require.NoError(t, s.SaveContainer("hot-wallet", want))

	got, err := s.LoadContainer("hot-wallet")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingContainer(t *testing.T) {
	s := store.NewFileStore(t.TempDir())
	_, err := s.LoadContainer("absent")
	assert.Error(t, err)
}

func TestListContainers(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	names, err := s.ListContainers()
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, s.SaveContainer("beta", testContainer()))
	require.NoError(t, s.SaveContainer("alpha", testContainer()))

	names, err = s.ListContainers()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, names)
}

func TestRejectsPathEscapingNames(t *testing.T) {
	s := store.NewFileStore(t.TempDir())
	for _, name := range []string{"", "..", "../etc", "a/b", ".hidden"} {
		assert.Error(t, s.SaveContainer(name, testContainer()), "name %q", name)
	}
}

func TestContainerFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix permissions")
	}
	dir := t.TempDir()
	s := store.NewFileStore(filepath.Join(dir, "keys"))
	require.NoError(t, s.SaveContainer("w", testContainer()))

	info, err := os.Stat(filepath.Join(dir, "keys", "w.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Join(dir, "keys"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())
}
