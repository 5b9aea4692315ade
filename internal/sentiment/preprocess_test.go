package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocessText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "mentions collapse to placeholder",
			input: "привет @ivan_petrov как дела",
			want:  "привет @user как дела",
		},
		{
			name:  "urls collapse to placeholder",
			input: "смотри https://example.com/path?q=1 срочно",
			want:  "смотри http срочно",
		},
		{
			name:  "plain http url",
			input: "link: http://example.org/page",
			want:  "link: http",
		},
		{
			name:  "whitespace runs collapse",
			input: "  слишком   много\t\tпробелов \n тут  ",
			want:  "слишком много пробелов тут",
		},
		{
			name:  "combined",
			input: "@maria    глянь  https://t.me/somechannel ",
			want:  "@user глянь http",
		},
		{
			name:  "untouched text",
			input: "обычное сообщение",
			want:  "обычное сообщение",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PreprocessText(tt.input))
		})
	}
}
