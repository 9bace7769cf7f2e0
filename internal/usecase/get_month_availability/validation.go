package get_month_availability

import "fmt"

// validateRequest валидирует год и месяц.
// time.Date нормализует любые значения (13-й месяц станет январём следующего
// года), поэтому некорректный период отлавливается до построения дат.
func validateRequest(req *Request) error {
	if req.Year < 1 {
		return fmt.Errorf("%w: year must be positive, got %d", ErrInvalidPeriod, req.Year)
	}
	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month must be within 1..12, got %d", ErrInvalidPeriod, req.Month)
	}
	return nil
}
