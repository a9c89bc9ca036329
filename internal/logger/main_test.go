package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPowerDNS-Admin/pdns-api/internal/logger"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name      string
		cfg       logger.Log
		wantErr   error
		wantOut   bool
		wantJSON  bool
		errSubstr string
	}{
		{
			name:      "unknown level",
			cfg:       logger.Log{LogLevel: "loud", ServiceName: "pdns", AppName: "pdns"},
			errSubstr: "loglevel loud is not supported",
		},
		{
			name:    "missing service name",
			cfg:     logger.Log{LogLevel: "info", AppName: "pdns"},
			wantErr: logger.ErrServiceNameIsEmpty,
		},
		{
			name:    "missing app name",
			cfg:     logger.Log{LogLevel: "info", ServiceName: "pdns"},
			wantErr: logger.ErrAppNameIsEmpty,
		},
		{
			name: "nothing enabled",
			cfg:  logger.Log{ServiceName: "pdns", AppName: "pdns"},
		},
		{
			name:     "console json",
			cfg:      logger.Log{LogLevel: "info", ServiceName: "pdns", AppName: "pdns", Console: logger.Console{Enabled: true}},
			wantOut:  true,
			wantJSON: true,
		},
		{
			name: "console writer",
			cfg: logger.Log{
				LogLevel: "debug", ServiceName: "pdns", AppName: "pdns",
				Console: logger.Console{Enabled: true, UseConsoleWriter: true},
			},
			wantOut: true,
		},
		{
			name: "trace with caller",
			cfg: logger.Log{
				LogLevel: "trace", ServiceName: "pdns", AppName: "pdns", ReportCaller: true,
				Console: logger.Console{Enabled: true},
			},
			wantOut:  true,
			wantJSON: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := capture(t, tt.cfg)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				return
			case tt.errSubstr != "":
				require.ErrorContains(t, err, tt.errSubstr)
				return
			}

			require.NoError(t, err)

			if !tt.wantOut {
				assert.Empty(t, out)
				return
			}

			assert.Contains(t, out, "zones listed")

			if tt.wantJSON {
				for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
					var entry map[string]any
					require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
					assert.Equal(t, "pdns", entry["app"])
				}
			}
		})
	}
}

func TestInitFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	cfg := logger.Log{
		LogLevel:    "trace",
		ServiceName: "pdns",
		AppName:     "pdns",
		File: logger.LogFile{
			Enabled: true,
			Path:    dir,
			Error:   logger.Rotation{File: "error.log", MaxSize: 1},
			Info:    logger.Rotation{File: "info.log", MaxSize: 1},
			Trace:   logger.Rotation{File: "trace.log", MaxSize: 1},
			Warn:    logger.Rotation{File: "warn.log", MaxSize: 1},
		},
	}
	require.NoError(t, logger.Init(cfg))
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	log.Info().Msg("info line")
	log.Warn().Msg("warn line")
	log.Error().Msg("error line")
	log.Trace().Msg("trace line")

	for file, want := range map[string]string{
		"info.log":  "info line",
		"warn.log":  "warn line",
		"error.log": "error line",
		"trace.log": "trace line",
	} {
		b, err := os.ReadFile(filepath.Join(dir, file))
		require.NoError(t, err, file)
		assert.Contains(t, string(b), want, file)
	}
}

func TestLevelWriterDisabled(t *testing.T) {
	var buf bytes.Buffer

	lw := &logger.LevelWriter{ErrorWriter: &buf, InfoWriter: &buf, TraceWriter: &buf, WarnWriter: &buf}

	n, err := lw.WriteLevel(zerolog.Disabled, []byte("dropped"))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, buf.String())
}

func capture(t *testing.T, cfg logger.Log) (string, error) {
	t.Helper()

	stdout, stderr := os.Stdout, os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout, os.Stderr = w, w

	initErr := logger.Init(cfg)
	if initErr == nil {
		log.Info().Int("zones", 2).Msg("zones listed")
		log.Error().Err(errors.New("connection refused")).Msg("zones listed with error") //nolint:err113
		log.Trace().Msg("zones listed at trace")
	}

	outC := make(chan string)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout, os.Stderr = stdout, stderr

	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	return <-outC, initErr
}
