package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add deposit index", "add_deposit_index"},
		{"Add-Deposit-Index", "add_deposit_index"},
		{"ADD__DEPOSIT", "add_deposit"},
		{"billing 2025", "billing_2025"},
		{"   spaces   ", "spaces"},
		{"weird!@#chars", "weirdchars"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration_NumbersAfterExisting(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"000001_init_ledger.up.sql", "000001_init_ledger.down.sql", "000007_add_index.up.sql", "000007_add_index.down.sql"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("--"), 0o644))
	}

	mf, err := CreateMigration(dir, "Add expense notes")
	require.NoError(t, err)

	assert.Equal(t, 8, mf.Version)
	assert.Equal(t, filepath.Join(dir, "000008_add_expense_notes.up.sql"), mf.UpPath)
	assert.Equal(t, filepath.Join(dir, "000008_add_expense_notes.down.sql"), mf.DownPath)

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "add_expense_notes")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "rollback")
}

func TestCreateMigration_EmptyDirectoryStartsAtOne(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "migrations")

	mf, err := CreateMigration(dir, "init")
	require.NoError(t, err)
	assert.Equal(t, 1, mf.Version)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCreateMigration_RejectsBlankName(t *testing.T) {
	_, err := CreateMigration(t.TempDir(), "!!!")
	assert.Error(t, err)
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{
		"000010_late.up.sql", "000010_late.down.sql",
		"000002_second.up.sql", "000002_second.down.sql",
		"README.md",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("--"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "000099_dir.up.sql"), 0o755))

	names, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"000002_second", "000010_late"}, names)
}

func TestListMigrations_NonexistentDirectory(t *testing.T) {
	names, err := ListMigrations("/nonexistent/ledger/migrations")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestListMigrations_RepositorySchema(t *testing.T) {
	names, err := ListMigrations(filepath.Join("..", "..", "..", "migrations"))
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "000001_init_ledger", names[0])
}
