package get_month_availability

import "errors"

var (
	// ErrInvalidPeriod возвращается при некорректном годе или месяце.
	// По контракту эндпоинта это внутренняя ошибка (500), а не ошибка клиента:
	// у месячной выдачи нет 400-ответа, и некорректный период не должен
	// молча превращаться в пустой результат.
	ErrInvalidPeriod = errors.New("invalid year or month")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
