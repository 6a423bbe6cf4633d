package handlers

import (
	"strings"
	"sync"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	"github.com/Murlidhar08/settlr-sub001/internal/core/services"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// enumValidator accepts the empty string so that optional fields are left to omitempty/required.
func enumValidator(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		return v == "" || valid(v)
	}
}

// RegisterValidators adds the domain enum checks to gin's validator engine.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		rules := map[string]func(string) bool{
			"accounttype":  func(s string) bool { return domain.AccountType(s).IsValid() },
			"moneytype":    func(s string) bool { return domain.MoneyType(s).IsValid() },
			"partytype":    func(s string) bool { return domain.PartyType(s).IsValid() },
			"categorytype": func(s string) bool { return domain.CategoryType(s).IsValid() },
			"paymentmode":  func(s string) bool { return domain.PaymentMode(s).IsValid() },
			"direction":    func(s string) bool { return domain.Direction(s).IsValid() },
			"currencycode": func(s string) bool { return services.IsCurrencyCode(strings.ToUpper(s)) },
		}
		for tag, valid := range rules {
			_ = v.RegisterValidation(tag, enumValidator(valid))
		}
	})
}
