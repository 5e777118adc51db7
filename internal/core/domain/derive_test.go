package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int64
		wantOK bool
	}{
		{name: "thousands and suffix", input: "123.456 TL", want: 123456, wantOK: true},
		{name: "millions", input: "1.250.000 TL", want: 1250000, wantOK: true},
		{name: "no separator", input: "950 TL", want: 950, wantOK: true},
		{name: "no suffix", input: "123.456", want: 123456, wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "suffix only", input: " TL", wantOK: false},
		{name: "not a number", input: "Fiyat sorunuz", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePrice(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveCity(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "İstanbul / Kadıköy", want: "İstanbul"},
		{input: "Kadıköy / İstanbul", want: "Kadıköy"},
		{input: "Ankara", want: "Ankara"},
		{input: "  İzmir  ", want: "İzmir"},
		{input: "Bursa/Nilüfer/Özlüce", want: "Bursa"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveCity(tt.input), tt.input)
	}
}
