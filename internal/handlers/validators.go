package handlers

import (
	"reflect"
	"sync"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the domain validation tags to gin's validator:
// positive_decimal, entry_kind and entry_status.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		_ = v.RegisterValidation("positive_decimal", positiveDecimal)
		_ = v.RegisterValidation("entry_kind", entryKind)
		_ = v.RegisterValidation("entry_status", entryStatus)
	})
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func positiveDecimal(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && d.IsPositive()
}

func entryKind(fl validator.FieldLevel) bool {
	return domain.EntryKind(fl.Field().String()).IsValid()
}

func entryStatus(fl validator.FieldLevel) bool {
	return domain.EntryStatus(fl.Field().String()).IsValid()
}
