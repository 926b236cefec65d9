package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapturekit/helper/pkg/config"
)

type TestConfigDefault struct {
	TestString string        `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int           `env:"TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool          `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
	TestDur    time.Duration `env:"TEST_DURATION_DEFAULT" envDefault:"2s"`
}

type TestConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

type PrefixedConfig struct {
	Timezone  string   `env:"TIMEZONE"`
	Locale    string   `env:"LOCALE" envDefault:"en"`
	WeekStart string   `env:"WEEK_START" envDefault:"monday"`
	List      []string `env:"LIST" envSeparator:","`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")

	var cfg TestConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err, "Load should not return an error with valid environment variables")
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.Equal(t, false, cfg.TestBool)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_INT_DEFAULT")
	os.Unsetenv("TEST_BOOL_DEFAULT")
	os.Unsetenv("TEST_DURATION_DEFAULT")

	var cfg TestConfigDefault
	err := config.Load(&cfg)

	require.NoError(t, err, "Load should not return an error when using default values")
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
	assert.Equal(t, true, cfg.TestBool)
	assert.Equal(t, 2*time.Second, cfg.TestDur)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err, "Load should return an error when a required value is missing")
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoad_WithEnvironment(t *testing.T) {
	t.Setenv("CHRONO_TIMEZONE", "America/New_York")

	var cfg PrefixedConfig
	err := config.Load(&cfg,
		config.WithPrefix("CHRONO_"),
		config.WithEnvironment(map[string]string{"CHRONO_TIMEZONE": "UTC"}),
	)
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Timezone, "explicit environment replaces the process one")
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "monday", cfg.WeekStart)
}

func TestLoad_WithEnvironmentAndFiles(t *testing.T) {
	vars := map[string]string{"CHRONO_LOCALE": "de"}

	var cfg PrefixedConfig
	err := config.Load(&cfg,
		config.WithPrefix("CHRONO_"),
		config.WithEnvironment(vars),
		config.WithFiles("testdata/.env.base", "testdata/.env.override"),
	)
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Locale, "explicit variables win over files")
	assert.Equal(t, "Europe/Bucharest", cfg.Timezone, "earlier files win over later ones")
	assert.Equal(t, "sunday", cfg.WeekStart)
	assert.Len(t, vars, 1, "the supplied map is not modified")
}

func TestLoad_WithFilesIntoProcess(t *testing.T) {
	t.Setenv("TEST_LIST", "")
	os.Unsetenv("TEST_LIST")
	t.Setenv("CHRONO_TIMEZONE", "")
	os.Unsetenv("CHRONO_TIMEZONE")
	t.Setenv("CHRONO_LOCALE", "fr")

	type listConfig struct {
		List     []string `env:"TEST_LIST" envSeparator:","`
		Timezone string   `env:"CHRONO_TIMEZONE"`
		Locale   string   `env:"CHRONO_LOCALE"`
	}
	var cfg listConfig
	err := config.Load(&cfg, config.WithFiles("testdata/.env.base"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.List)
	assert.Equal(t, "Europe/Bucharest", cfg.Timezone)
	assert.Equal(t, "fr", cfg.Locale, "process variables are not overridden")
}

func TestLoad_MissingFile(t *testing.T) {
	var cfg PrefixedConfig
	err := config.Load(&cfg, config.WithFiles("testdata/non_existent_file.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	err = config.Load(&cfg,
		config.WithEnvironment(map[string]string{}),
		config.WithFiles("testdata/non_existent_file.env"),
	)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() {
		var cfg PrefixedConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})

	assert.Panics(t, func() {
		var cfg RequiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv("testdata/non_existent_file.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
