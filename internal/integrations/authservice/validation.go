package authservice

import (
	"net/mail"
	"strings"
)

const (
	fieldName            = "name"
	fieldEmail           = "email"
	fieldPhone           = "phone"
	fieldPassword        = "password"
	fieldConfirmPassword = "confirmPassword"

	msgRequiredName      = "Введите имя"
	msgRequiredEmail     = "Введите email"
	msgInvalidEmail      = "Некорректный email"
	msgRequiredPhone     = "Введите телефон"
	msgRequiredPassword  = "Введите пароль"
	msgPasswordsMismatch = "Пароли не совпадают"
)

// Validate проверяет форму входа до отправки
func (r LoginRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if r.Password == "" {
		return &ValidationError{Field: fieldPassword, Message: msgRequiredPassword}
	}
	return nil
}

// Validate проверяет форму регистрации до отправки
func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: fieldName, Message: msgRequiredName}
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if strings.TrimSpace(r.Phone) == "" {
		return &ValidationError{Field: fieldPhone, Message: msgRequiredPhone}
	}
	if r.Password == "" {
		return &ValidationError{Field: fieldPassword, Message: msgRequiredPassword}
	}
	if r.Password != r.ConfirmPassword {
		return &ValidationError{Field: fieldConfirmPassword, Message: msgPasswordsMismatch}
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return &ValidationError{Field: fieldEmail, Message: msgRequiredEmail}
	}
	// "Имя <a@b>" ParseAddress принимает, форма - нет
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@"):], ".") {
		return &ValidationError{Field: fieldEmail, Message: msgInvalidEmail}
	}
	return nil
}
