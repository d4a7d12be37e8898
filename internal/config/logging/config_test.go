package logging_test

import (
	"testing"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/config/logging"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*logging.Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*logging.Config) {}},
		{name: "json to stderr", mutate: func(c *logging.Config) { c.Encoding = "json"; c.Output = "stderr" }},
		{name: "file with path", mutate: func(c *logging.Config) { c.Output = "file"; c.File = "/tmp/pinpoint.log" }},
		{name: "unknown level", mutate: func(c *logging.Config) { c.Level = "trace" }, wantErr: true},
		{name: "unknown encoding", mutate: func(c *logging.Config) { c.Encoding = "logfmt" }, wantErr: true},
		{name: "unknown output", mutate: func(c *logging.Config) { c.Output = "syslog" }, wantErr: true},
		{name: "file without path", mutate: func(c *logging.Config) { c.Output = "file" }, wantErr: true},
		{name: "negative rotation", mutate: func(c *logging.Config) { c.MaxAge = -1 }, wantErr: true},
	}

	for i := range tests {
		test := &tests[i]
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			cfg := logging.NewConfig()
			test.mutate(cfg)
			err := cfg.Validate()
			if test.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_LoggerConfig(t *testing.T) {
	t.Parallel()

	cfg := logging.NewConfig()
	cfg.Level = "debug"
	cfg.Development = true

	got := cfg.LoggerConfig()
	assert.Equal(t, logger.DebugLevel, got.Level)
	assert.True(t, got.Development)
	assert.Equal(t, logger.DefaultEncoding, got.Encoding)
	assert.Equal(t, logger.DefaultMaxSizeMB, got.MaxSizeMB)
	assert.True(t, got.Compress)

	log, err := logger.New(got)
	require.NoError(t, err)
	assert.NotNil(t, log)
}
