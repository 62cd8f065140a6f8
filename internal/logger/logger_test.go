package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "rockgen.log")

	// 1MB is the smallest size lumberjack rotates at.
	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 2,
		MaxAgeDays: 1,
	}
	require.NoError(t, InitWithFileConfig("debug", cfg, false))
	defer Nop()

	longMessage := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Infof("rock %d: %s", i, longMessage)
	}
	Sync()

	assert.FileExists(t, logFile)

	files, err := os.ReadDir(tempDir)
	require.NoError(t, err)

	rotated := 0
	for _, f := range files {
		if f.Name() == "rockgen.log" || !strings.HasPrefix(f.Name(), "rockgen") {
			continue
		}
		rotated++
		// lumberjack names backups rockgen-YYYY-MM-DDTHH-MM-SS.SSS.log
		assert.Contains(t, f.Name(), "-20")
	}
	assert.Positive(t, rotated, "no rotated files found")
}

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()
	defer Nop()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
		{"bogus", []string{"INFO"}, []string{"DEBUG"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")
			require.NoError(t, InitWithFileConfig(tt.level, FileConfig{Path: logFile, MaxSizeMB: 10}, false))

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			require.NoError(t, err)

			for _, exp := range tt.expected {
				assert.Contains(t, string(content), exp)
			}
			for _, exc := range tt.excluded {
				assert.NotContains(t, string(content), exc)
			}
		})
	}
}

func TestNamedFields(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "named.log")
	require.NoError(t, InitWithFileConfig("info", FileConfig{Path: logFile, MaxSizeMB: 10}, false))
	defer Nop()

	Named("generator").Info("rock generated", zap.Int("vertices", 678))
	Sync()

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "generator")
	assert.Contains(t, string(content), `"vertices": 678`)
}

func TestNewWithoutOutputsIsNop(t *testing.T) {
	l := New("debug", FileConfig{}, false)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestNop(t *testing.T) {
	Nop()
	assert.NotPanics(t, func() {
		Info("discarded")
		Sync()
	})
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/rockgen.log")

	assert.Equal(t, "/tmp/rockgen.log", cfg.Path)
	assert.Equal(t, 20, cfg.MaxSizeMB)
	assert.Equal(t, 3, cfg.MaxBackups)
	assert.Equal(t, 14, cfg.MaxAgeDays)
	assert.True(t, cfg.Compress)
}
