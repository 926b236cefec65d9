package chrono_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/rapturekit/helper/pkg/chrono"
	"github.com/rapturekit/helper/pkg/config"
	"github.com/rapturekit/helper/pkg/timezone"
)

func TestNewFromConfig(t *testing.T) {
	var cfg chrono.Config
	err := config.Load(&cfg,
		config.WithPrefix(chrono.EnvPrefix),
		config.WithEnvironment(map[string]string{
			"CHRONO_TIMEZONE":          "Bucharest",
			"CHRONO_WEEK_START":        "sunday",
			"CHRONO_LOCALE":            "ro",
			"CHRONO_LOCALE_FILE":       "testdata/locales.yaml",
			"CHRONO_PRESENT_TOLERANCE": "5s",
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.PresentTolerance)

	fixed := time.Date(2017, 3, 10, 10, 0, 0, 0, time.UTC)
	cal, err := chrono.NewFromConfig(context.Background(), cfg,
		chrono.WithClock(chrono.ClockFunc(func() time.Time { return fixed })),
	)
	require.NoError(t, err)

	assert.Equal(t, "Europe/Bucharest", cal.Location().String())
	assert.Equal(t, time.Sunday, cal.WeekStart())
	assert.Equal(t, language.Romanian, cal.Locale().Tag)
	assert.Equal(t, "Duminică", cal.Days()[6])

	now := cal.Now()
	assert.Equal(t, "2017-03-10 12:00:00", now.String())

	later, err := now.AddInterval(4)
	require.NoError(t, err)
	assert.Equal(t, "acum 4 secunde", later.HumanDuration(now), "a 5s tolerance keeps the receiver present")
}

func TestNewFromConfig_ZoneResolverKeepsConfiguredZone(t *testing.T) {
	zones := timezone.NewResolver(
		timezone.WithDefault(time.UTC),
		timezone.WithZones("Asia/Tokyo", "Europe/Paris"),
		timezone.WithReferenceYear(2017),
	)
	cal, err := chrono.NewFromConfig(context.Background(), chrono.Config{Timezone: "Tokyo"},
		chrono.WithZoneResolver(zones),
	)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", cal.Location().String())

	paris, err := cal.ResolveTimezone("Paris")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", paris.String())

	_, err = cal.ResolveTimezone("Bucharest")
	assert.ErrorIs(t, err, chrono.ErrInvalidTimezone, "the custom zone list is kept")

	cal, err = chrono.NewFromConfig(context.Background(), chrono.Config{}, chrono.WithZoneResolver(zones))
	require.NoError(t, err)
	assert.Equal(t, time.UTC, cal.Location(), "an empty timezone keeps the resolver default")
}

func TestNewFromConfig_Defaults(t *testing.T) {
	var cfg chrono.Config
	require.NoError(t, config.Load(&cfg,
		config.WithPrefix(chrono.EnvPrefix),
		config.WithEnvironment(map[string]string{"CHRONO_TIMEZONE": "UTC"}),
	))
	assert.Equal(t, "monday", cfg.WeekStart)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, chrono.DefaultPresentTolerance, cfg.PresentTolerance)

	cal, err := chrono.NewFromConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "UTC", cal.Location().String())
	assert.Equal(t, time.Monday, cal.WeekStart())
	assert.Equal(t, language.English, cal.Locale().Tag)
}

func TestNewFromConfig_Errors(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		cfg  chrono.Config
		err  error
	}{
		{"zone", chrono.Config{Timezone: "Unknown/Unknown"}, chrono.ErrInvalidTimezone},
		{"week start", chrono.Config{Timezone: "UTC", WeekStart: "someday"}, chrono.ErrInvalidArgument},
		{"locale", chrono.Config{Timezone: "UTC", Locale: "de"}, chrono.ErrUnknownLocale},
		{"locale file", chrono.Config{Timezone: "UTC", LocaleFile: "testdata/missing.json"}, chrono.ErrFailedToReadLocaleFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := chrono.NewFromConfig(ctx, tt.cfg)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
