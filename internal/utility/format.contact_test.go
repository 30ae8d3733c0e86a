package utility

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var canonicalContact = regexp.MustCompile(`^\d{3}-\d{4}-\d{4}$`)

func TestFormatContactNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"01012345678", "010-1234-5678"},
		{"010-1234-5678", "010-1234-5678"},
		{"0101234-5678", "010-1234-5678"},
		{"0-1-0-1-2-3-4-5-6-7-8", "010-1234-5678"},
		{"--01012345678--", "010-1234-5678"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatContactNumber(tt.in), "input %q", tt.in)
	}
}

func TestFormatContactNumber_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		digits := make([]byte, 0, 22)
		for j := 0; j < ContactDigits; j++ {
			if rng.Intn(3) == 0 {
				digits = append(digits, '-')
			}
			digits = append(digits, byte('0'+rng.Intn(10)))
		}
		in := string(digits)

		got := FormatContactNumber(in)
		assert.Regexp(t, canonicalContact, got)
		assert.Equal(t, StripDashes(in), StripDashes(got))
		assert.Equal(t, got, FormatContactNumber(got), "chuẩn hóa phải idempotent")
	}
}

func TestIsValidContactNumber(t *testing.T) {
	valid := []string{"01012345678", "010-1234-5678", "010-12345678", "-01012345678-"}
	for _, c := range valid {
		assert.True(t, IsValidContactNumber(c), "phải hợp lệ: %q", c)
	}

	invalid := []string{
		"",
		"123",
		"0101234567",    // 10 chữ số
		"010123456789",  // 12 chữ số
		"010 1234 5678", // khoảng trắng
		"010.1234.5678",
		"0101234567a",
		"+821012345678",
		"０１０12345678", // chữ số full-width
		"010-1234-567８",
	}
	for _, c := range invalid {
		assert.False(t, IsValidContactNumber(c), "phải bị từ chối: %q", c)
	}
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", CellString(nil))
	assert.Equal(t, "홍길동", CellString("홍길동"))
	assert.Equal(t, "2", CellString(int64(2)))
	assert.Equal(t, "2", CellString(2.0))
	assert.Equal(t, "1.5", CellString(1.5))
	assert.Equal(t, "641234567890", CellString(float64(641234567890)))
	assert.Equal(t, "true", CellString(true))
}

func TestGetOrDefault(t *testing.T) {
	m := map[string]interface{}{"수량": int64(3), "예상 출고일": ""}

	assert.Equal(t, int64(3), GetOrDefault(m, "수량", "미제공"))
	assert.Equal(t, "미제공", GetOrDefault(map[string]interface{}{}, "수량", "미제공"))
	// Ô trống vẫn là giá trị, không dùng default
	assert.Equal(t, "", GetStringOrDefault(m, "예상 출고일", "x"))
	assert.Equal(t, "x", GetStringOrDefault(m, "지불방법", "x"))
}
