package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optgrip/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Len(t, cfg.Options, 5)
	assert.Equal(t, domain.Option{ID: "1", Label: "Option 1", Value: "option-1"}, cfg.Options[0])
	assert.Equal(t, domain.Option{ID: "5", Label: "Option 5", Value: "option-5"}, cfg.Options[4])
	assert.Equal(t, "Select options", cfg.Widget.SelectionLabel)
	assert.Equal(t, "Search options", cfg.Widget.SearchPlaceholder)
	assert.NoError(t, cfg.Validate())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	svc := NewConfigService()
	path := filepath.Join(t.TempDir(), "nested", DefaultFileName)

	cfg := DefaultConfig()
	cfg.Selected = []string{"3", "1"}
	cfg.UISettings.RememberSelection = true
	cfg.Widget.SearchLabel = "Find"

	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewConfigService().LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("version = = 1"), 0644))

	_, err := NewConfigService().LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	content := `version = 1

[widget]
label = "Fruit"

[[options]]
id = "a"
label = "Apple"
value = "apple"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "Fruit", cfg.Widget.Label)
	assert.Equal(t, "Select options", cfg.Widget.SelectionLabel)
	assert.True(t, cfg.UISettings.Mouse)
	assert.Equal(t, []domain.Option{{ID: "a", Label: "Apple", Value: "apple"}}, cfg.Options)
}

func TestLoadWithoutOptionsUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), cfg.Options)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		options []domain.Option
		wantErr string
	}{
		{name: "valid", options: DefaultOptions()},
		{name: "empty list", options: nil},
		{
			name:    "empty id",
			options: []domain.Option{{ID: "1"}, {Label: "no id"}},
			wantErr: "option 2 has an empty id",
		},
		{
			name:    "duplicate id",
			options: []domain.Option{{ID: "1"}, {ID: "2"}, {ID: "1"}},
			wantErr: `option 3 reuses id "1" from option 1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Options: tt.options}
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	content := `[[options]]
id = "1"
label = "One"

[[options]]
id = "1"
label = "Uno"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := NewConfigService().LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reuses id")
}

func TestSelectedOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Selected = []string{"4", "missing", "2", "4"}

	got := cfg.SelectedOptions()
	assert.Equal(t, []string{"4", "2"}, domain.OptionIDs(got))
}
