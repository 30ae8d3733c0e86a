package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetForTest xóa biến môi trường trong lúc test và khôi phục lại sau đó
func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		old, had := os.LookupEnv(key)
		require.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() {
			if had {
				os.Setenv(key, old)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func TestNewConfig_FromEnvFile(t *testing.T) {
	unsetForTest(t, "RECORD_SOURCE", "ADDRESS", "MEMORY_SOURCE_FILE", "SHEET_NAME_RAW", "SHEETS_FETCH_TIMEOUT")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "RECORD_SOURCE=memory\nADDRESS=127.0.0.1:9999\nMEMORY_SOURCE_FILE=rows.json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, RecordSourceMemory, cfg.RecordSource)
	assert.Equal(t, "127.0.0.1:9999", cfg.Address)
	assert.Equal(t, "rows.json", cfg.MemorySourceFile)
	// Giá trị mặc định vẫn được áp dụng cho các key không có trong file
	assert.Equal(t, "교환 신청 현황 확인(RAW)", cfg.SheetNameRaw)
	assert.Equal(t, 10, cfg.SheetsFetchTimeout)
	assert.False(t, cfg.RateLimit_Enabled)
}

func TestNewConfig_MissingEnvFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Configuration
		wantErr bool
	}{
		{
			name: "sheets đầy đủ",
			cfg: Configuration{
				RecordSource:       "sheets",
				GoogleKeyPath:      "key.json",
				SpreadsheetURLRaw:  "https://docs.google.com/spreadsheets/d/abc/edit",
				SheetsFetchTimeout: 10,
			},
		},
		{
			name:    "sheets thiếu key path",
			cfg:     Configuration{RecordSource: "sheets", SpreadsheetURLRaw: "u", SheetsFetchTimeout: 10},
			wantErr: true,
		},
		{
			name:    "sheets thiếu spreadsheet url",
			cfg:     Configuration{RecordSource: "sheets", GoogleKeyPath: "key.json", SheetsFetchTimeout: 10},
			wantErr: true,
		},
		{
			name: "memory không cần credentials",
			cfg:  Configuration{RecordSource: " Memory ", SheetsFetchTimeout: 5},
		},
		{
			name:    "nguồn không hỗ trợ",
			cfg:     Configuration{RecordSource: "mongo", SheetsFetchTimeout: 5},
			wantErr: true,
		},
		{
			name:    "timeout không hợp lệ",
			cfg:     Configuration{RecordSource: "memory", SheetsFetchTimeout: 0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
