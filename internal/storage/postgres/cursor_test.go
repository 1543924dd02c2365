package postgres

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

// Юнит-тесты кодека курсора (без БД): round-trip и отбраковка битых токенов.

func TestCursor_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, id := range []int64{1, 42, 1 << 40, 1<<63 - 1} {
		token := encodeCursor(id)
		require.NotEmpty(t, token)

		got, err := decodeCursor(token)
		require.NoError(t, err)
		require.Equal(t, id, got)
	}
}

func TestCursor_Opaque(t *testing.T) {
	t.Parallel()

	// Токен не содержит id в открытом виде и устойчив к пробелам по краям.
	token := encodeCursor(12345)
	require.NotContains(t, token, "12345")

	got, err := decodeCursor("  " + token + "\n")
	require.NoError(t, err)
	require.Equal(t, int64(12345), got)
}

func TestDecodeCursor_Invalid(t *testing.T) {
	t.Parallel()

	bad := []struct {
		name  string
		token string
	}{
		{name: "not_base64", token: "%%%"},
		{name: "not_a_number", token: base64.RawURLEncoding.EncodeToString([]byte("abc"))},
		{name: "zero_id", token: base64.RawURLEncoding.EncodeToString([]byte("0"))},
		{name: "negative_id", token: base64.RawURLEncoding.EncodeToString([]byte("-7"))},
		{name: "empty", token: ""},
	}

	for _, tc := range bad {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := decodeCursor(tc.token)
			require.Error(t, err)
		})
	}
}

func TestEscapeLike(t *testing.T) {
	t.Parallel()

	require.Equal(t, `100\%`, escapeLike("100%"))
	require.Equal(t, `a\_b`, escapeLike("a_b"))
	require.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
	require.Equal(t, "plain", escapeLike("plain"))
}
