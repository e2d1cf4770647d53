package niqqud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPoint(t *testing.T) {
	points := []rune{0x05B0, 0x05B4, 0x05B7, 0x05B8, 0x05BC, 0x05C1, 0x05C2, 0x0591, 0x05BD, 0x05C7}
	for _, r := range points {
		assert.True(t, IsPoint(r), "U+%04X should be a point", r)
	}
	others := []rune{'a', ' ', 0x05D0, 0x05E9, 0x05EA, 0x05BE, 0x05C0, 0x05C3, 0x05C6, 0xFB2C}
	for _, r := range others {
		assert.False(t, IsPoint(r), "U+%04X should not be a point", r)
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"twelve o'clock", "twelve o'clock"},
		{"הַשָּׁעָה", "השעה"},
		{"הַשָּׁעָה שְׁתַּיִם וָרֶבַע", "השעה שתים ורבע"},
		{"הַשָּׁעָה חָמֵשׁ וְעֶשְׂרִים וּשְׁתַּיִם דַּקּוֹת", "השעה חמש ועשרים ושתים דקות"},
		{"אַחַת־עֶשְׂרֵה", "אחת־עשרה"}, // maqaf stays
		{"אַחַר־הַצָּהֳרַיִם", "אחר־הצהרים"},
		{"\uFB2Cלוֹם", "שלום"}, // shin with dagesh and shin dot
		{"\uFB1Dש", "יש"},     // yod with hiriq
		{"שתים־עשרה", "שתים־עשרה"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Strip(tt.in), "Strip(%q)", tt.in)
	}
}

func TestStripIdempotent(t *testing.T) {
	s := Strip("הַשָּׁעָה אַחַת־עֶשְׂרֵה וַחֲמִשִּׁים וְתֵשַׁע דַּקּוֹת בַּלַּיְלָה")
	assert.Equal(t, s, Strip(s))
	assert.False(t, Has(s))
}

func TestHas(t *testing.T) {
	assert.True(t, Has("שְׁתַּיִם"))
	assert.True(t, Has("שׁ"))
	assert.False(t, Has("שתים"))
	assert.False(t, Has("abc"))
	assert.False(t, Has(""))
}
