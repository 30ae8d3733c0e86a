package global

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/utility"
)

var validatorOnce sync.Once

// InitValidator khởi tạo validator và đăng ký các custom validator (chỉ chạy một lần)
func InitValidator() {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("contact_number", validateContactNumber)
		Validate = v
	})
}

// ValidateStruct kiểm tra struct theo tag `validate`, tự khởi tạo validator nếu chưa có
func ValidateStruct(s interface{}) error {
	InitValidator()
	return Validate.Struct(s)
}

// validateContactNumber kiểm tra số điện thoại: bỏ "-" còn đúng 11 chữ số
func validateContactNumber(fl validator.FieldLevel) bool {
	return utility.IsValidContactNumber(fl.Field().String())
}
