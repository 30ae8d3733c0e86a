package utility

import "strings"

// ContactDigits là số chữ số của một số điện thoại di động hợp lệ (010xxxxxxxx)
const ContactDigits = 11

// StripDashes bỏ tất cả dấu "-" trong chuỗi
func StripDashes(s string) string {
	return strings.ReplaceAll(s, "-", "")
}

// IsValidContactNumber kiểm tra số điện thoại: sau khi bỏ "-" phải đúng 11 chữ số ASCII
func IsValidContactNumber(contact string) bool {
	digits := StripDashes(contact)
	if len(digits) != ContactDigits {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// FormatContactNumber chuyển số điện thoại về dạng 010-1234-5678 (nhóm 3-4-4).
// Không tự kiểm tra: caller phải gọi IsValidContactNumber trước.
func FormatContactNumber(contact string) string {
	digits := StripDashes(contact)
	return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
}
