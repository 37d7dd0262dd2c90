package token

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{
			name: "simple words",
			in:   "echo hello world",
			want: []Token{{"echo", false}, {"hello", false}, {"world", false}},
		},
		{
			name: "single quotes preserve everything",
			in:   `echo 'a  b"c'`,
			want: []Token{{"echo", false}, {`a  b"c`, true}},
		},
		{
			name: "double quote backslash escape",
			in:   `echo "a\"b"`,
			want: []Token{{"echo", false}, {`a"b`, true}},
		},
		{
			name: "double quote literal backslash",
			in:   `echo "a\nb"`,
			want: []Token{{"echo", false}, {`a\nb`, true}},
		},
		{
			name: "backslash outside quotes",
			in:   `a\ b`,
			want: []Token{{"a b", true}},
		},
		{
			name: "trailing backslash",
			in:   `a\`,
			want: []Token{{`a\`, true}},
		},
		{
			name: "unterminated single quote",
			in:   `'abc`,
			want: []Token{{"abc", true}},
		},
		{
			name: "quoted pipe is literal",
			in:   `echo '|'`,
			want: []Token{{"echo", false}, {"|", true}},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "whitespace only",
			in:   "   ",
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Tokenize(%q) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}
