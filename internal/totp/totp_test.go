package totp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// base32("12345678901234567890"), the RFC 6238 SHA-1 seed
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func TestCode_RFC6238Vectors(t *testing.T) {
	tests := []struct {
		unix int64
		want string
	}{
		{unix: 59, want: "287082"},
		{unix: 1111111109, want: "081804"},
		{unix: 1111111111, want: "050471"},
		{unix: 1234567890, want: "005924"},
		{unix: 2000000000, want: "279037"},
	}

	for _, tt := range tests {
		t.Run(time.Unix(tt.unix, 0).UTC().Format(time.RFC3339), func(t *testing.T) {
			got, err := Code(rfcSecret, time.Unix(tt.unix, 0))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateCodeAt_SameWindowSameCode(t *testing.T) {
	start := time.Unix(1_700_000_010, 0) // 1700000010 % 30 == 0

	first := GenerateCodeAt(rfcSecret, start)
	require.Len(t, first, Digits)

	for s := 1; s < Period; s++ {
		assert.Equal(t, first, GenerateCodeAt(rfcSecret, start.Add(time.Duration(s)*time.Second)), "offset %ds", s)
	}
}

func TestGenerateCodeAt_AdjacentWindowsDiffer(t *testing.T) {
	// consecutive RFC vectors sit in different windows
	a := GenerateCodeAt(rfcSecret, time.Unix(1111111109, 0))
	b := GenerateCodeAt(rfcSecret, time.Unix(1111111111, 0))
	assert.NotEqual(t, a, b)
}

func TestGenerateCodeAt_ToleratesCaseAndPadding(t *testing.T) {
	at := time.Unix(59, 0)

	assert.Equal(t, "287082", GenerateCodeAt("gezdgnbvgy3tqojqgezdgnbvgy3tqojq", at))
	assert.Equal(t, "287082", GenerateCodeAt("  "+rfcSecret+"  ", at))

	// "JBSWY3DPEHPK3PX" needs padding to decode
	assert.NotEqual(t, ErrorCode, GenerateCodeAt("JBSWY3DPEHPK3PX", at))
}

func TestGenerateCode_ErrorSentinel(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr error
	}{
		{name: "invalid alphabet", secret: "not-base32!", wantErr: ErrInvalidSecret},
		{name: "digit outside alphabet", secret: "ABCDEFG1", wantErr: ErrInvalidSecret},
		{name: "empty", secret: "", wantErr: ErrEmptySecret},
		{name: "blank", secret: "   ", wantErr: ErrEmptySecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, ErrorCode, GenerateCode(tt.secret))

			_, err := Code(tt.secret, time.Now())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRemainingSeconds(t *testing.T) {
	tests := []struct {
		unix int64
		want int
	}{
		{unix: 0, want: 30},
		{unix: 1, want: 29},
		{unix: 29, want: 1},
		{unix: 30, want: 30},
		{unix: 59, want: 1},
		{unix: 1_700_000_010, want: 30},
		{unix: -1, want: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RemainingSeconds(time.Unix(tt.unix, 0)), "unix=%d", tt.unix)
	}
}

func TestRemainingSeconds_CountsDownAndWraps(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	prev := RemainingSeconds(start)

	for s := 1; s <= 3*Period; s++ {
		cur := RemainingSeconds(start.Add(time.Duration(s) * time.Second))
		require.GreaterOrEqual(t, cur, 1)
		require.LessOrEqual(t, cur, Period)

		if prev == 1 {
			assert.Equal(t, Period, cur)
		} else {
			assert.Equal(t, prev-1, cur)
		}
		prev = cur
	}
}

func TestRemainingSeconds_IgnoresSubSecond(t *testing.T) {
	at := time.Unix(45, 999_000_000)
	assert.Equal(t, 15, RemainingSeconds(at))
}

func TestNormalizeSecret(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: " ab-cd ", want: "ABCD"},
		{in: "jbsw y3dp-ehpk 3pxp", want: "JBSWY3DPEHPK3PXP"},
		{in: "", want: ""},
		{in: "a!b", want: "A!B"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeSecret(tt.in), "in=%q", tt.in)
	}
}
