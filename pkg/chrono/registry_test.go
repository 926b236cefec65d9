package chrono_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/rapturekit/helper/pkg/chrono"
	"github.com/rapturekit/helper/pkg/logger"
)

func TestLocaleRegistry(t *testing.T) {
	r, err := chrono.NewLocaleRegistry([]chrono.Locale{romanian()})
	require.NoError(t, err)
	assert.Equal(t, []language.Tag{language.English, language.Romanian}, r.Tags())

	ro, err := r.Lookup("ro")
	require.NoError(t, err)
	assert.Equal(t, "și", ro.Conjunction)

	_, err = r.Lookup("de")
	assert.ErrorIs(t, err, chrono.ErrUnknownLocale)
	_, err = r.Lookup("not a tag!")
	assert.ErrorIs(t, err, chrono.ErrInvalidLocaleTag)

	err = r.Register(chrono.Locale{Conjunction: "x"})
	assert.ErrorIs(t, err, chrono.ErrInvalidLocaleTag)
}

func TestLocaleRegistry_Replace(t *testing.T) {
	r, err := chrono.NewLocaleRegistry(nil)
	require.NoError(t, err)

	require.NoError(t, r.Register(chrono.Locale{Tag: language.Romanian, Conjunction: "și"}))
	require.NoError(t, r.Register(chrono.Locale{Tag: language.Romanian, Conjunction: "iar"}))

	ro, err := r.Lookup("ro")
	require.NoError(t, err)
	assert.Equal(t, "iar", ro.Conjunction)
	assert.Equal(t, "%s ago", ro.Ago, "registered locales are merged over English")
	assert.Len(t, r.Tags(), 2)
}

func TestLocaleRegistry_Match(t *testing.T) {
	r, err := chrono.NewLocaleRegistry([]chrono.Locale{romanian()})
	require.NoError(t, err)

	tests := []struct {
		accept string
		want   language.Tag
	}{
		{"ro-RO,ro;q=0.9,en;q=0.5", language.Romanian},
		{"en-US,en;q=0.9", language.English},
		{"ro", language.Romanian},
		{"ja", language.English},
		{"", language.English},
		{";;;garbage", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Match(tt.accept).Tag)
		})
	}
}

func TestLocaleRegistry_LoadFile(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := chrono.NewLocaleRegistry(nil, chrono.WithRegistryLogger(logger.New(logger.WithOutput(buf))))
	require.NoError(t, err)

	require.NoError(t, r.LoadFile(context.Background(), "testdata/locales.yaml"))
	assert.Contains(t, buf.String(), "Locales loaded")

	ro, err := r.Lookup("ro")
	require.NoError(t, err)
	assert.Equal(t, "o lună", ro.Units[chrono.Month].One)
	assert.Equal(t, "Duminică", ro.DayNames[6])

	fr := r.Match("fr-CA")
	assert.Equal(t, "fr", fr.Tag.String())
	assert.Equal(t, "one year", fr.Units[chrono.Year].One)

	cal := newCalendar(t, "2017-03-10 10:00:00", "UTC", chrono.WithLocale(fr))
	now := cal.Now()
	later, err := now.AddInterval("P3DT1H")
	require.NoError(t, err)
	assert.Equal(t, "dans 3 jours et one hour", now.HumanDuration(later))
}
