package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateAlternate(t *testing.T) {
	want := map[string]string{
		"01d": "1", "01n": "33",
		"02d": "2", "02n": "34",
		"03d": "3", "03n": "35",
		"04d": "4", "04n": "36",
		"09d": "14", "09n": "39",
		"10d": "13", "10n": "40",
		"11d": "16", "11n": "42",
		"13d": "23", "13n": "44",
		"50d": "5", "50n": "37",
	}
	require.Len(t, want, 18)

	for code, id := range want {
		icon, err := Translate(code, StyleAlternate)
		require.NoError(t, err, code)
		assert.Equal(t, id+".svg", icon.Name, code)
		assert.Equal(t, alternateBaseURL+id+".svg", icon.URL, code)
	}
}

func TestTranslateAlternateUnknownCode(t *testing.T) {
	_, err := Translate("99x", StyleAlternate)
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func TestTranslateClassic(t *testing.T) {
	for _, code := range []string{"01d", "13d", "50n", "99x", ""} {
		icon, err := Translate(code, StyleClassic)
		require.NoError(t, err)
		assert.Equal(t, code+"@2x.png", icon.Name)
		assert.Equal(t, "https://openweathermap.org/img/wn/"+code+"@2x.png", icon.URL)
	}
}

func TestTranslateUnknownStyle(t *testing.T) {
	_, err := Translate("01d", Style("fancy"))
	assert.Error(t, err)
}
