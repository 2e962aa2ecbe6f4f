package httperr

import "errors"

// BusinessError carrega um código estável de regra de negócio. A camada
// HTTP decide status e mensagem a partir do código.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	return BusinessCode(err) == code
}

// BusinessCode extrai o código de negócio, ou "" se o erro não for de
// negócio.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
