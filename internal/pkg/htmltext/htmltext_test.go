package htmltext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain_markup",
			in:   "<p>Go <b>1.24</b> is out.</p>",
			want: "Go 1.24 is out.",
		},
		{
			name: "scripts_and_styles_dropped",
			in:   "<style>p{color:red}</style><p>text</p><script>alert(1)</script>",
			want: "text",
		},
		{
			name: "noscript_dropped",
			in:   "<noscript>enable js</noscript><div>body</div>",
			want: "body",
		},
		{
			name: "whitespace_collapsed",
			in:   "<div>  a\n\n  b\t c  </div>",
			want: "a b c",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "blank",
			in:   "   \n\t ",
			want: "",
		},
		{
			name: "plain_text_passthrough",
			in:   "no markup at all",
			want: "no markup at all",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, Readable(tc.in))
		})
	}
}
