package vaxyaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeScalar(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		pos      int
		want     string
		wantNext int
	}{
		{name: "plain", in: `"hello"`, want: "hello", wantNext: 7},
		{name: "escaped quote and newline", in: `"a\"b\n"`, want: "a\"b\n", wantNext: 8},
		{name: "escaped backslash", in: `"C:\\dir"`, want: `C:\dir`, wantNext: 9},
		{name: "empty", in: `""`, want: "", wantNext: 2},
		{name: "offset and trailing text", in: `x: "v" # note`, pos: 3, want: "v", wantNext: 6},
		{name: "colon inside", in: `"https://example.com"`, want: "https://example.com", wantNext: 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, next, err := decodeScalar(tt.in, tt.pos)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestDecodeScalarErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
		wantMsg string
	}{
		{name: "not at quote", in: `hello`, wantErr: ErrExpectedQuote},
		{name: "empty input", in: ``, wantErr: ErrExpectedQuote},
		{name: "unterminated", in: `"abc`, wantErr: ErrUnterminatedString},
		{name: "dangling backslash", in: `"abc\`, wantErr: ErrUnterminatedString},
		{name: "tab escape", in: `"a\tb"`, wantErr: ErrUnsupportedEscape, wantMsg: `\t`},
		{name: "unicode escape", in: `"\u00e9"`, wantErr: ErrUnsupportedEscape, wantMsg: `\u`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := decodeScalar(tt.in, 0)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
