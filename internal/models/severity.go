package models

import (
	"fmt"
	"strings"
)

// Severity - закрытый набор уровней серьезности инцидента
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityAverage  Severity = "average"
	SeverityCritical Severity = "critical"
	SeverityAlltime  Severity = "alltime"
)

// Severities перечисляет все допустимые значения в порядке возрастания
var Severities = []Severity{SeverityMild, SeverityAverage, SeverityCritical, SeverityAlltime}

// ParseSeverity разбирает строку в Severity. Пустая строка не допускается.
func ParseSeverity(raw string) (Severity, error) {
	s := Severity(strings.TrimSpace(raw))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSeverity, raw)
	}
	return s, nil
}

func (s Severity) Valid() bool {
	switch s {
	case SeverityMild, SeverityAverage, SeverityCritical, SeverityAlltime:
		return true
	}
	return false
}

// HighPriority - инциденты, попадающие в ленту тревог
func (s Severity) HighPriority() bool {
	return s == SeverityCritical || s == SeverityAlltime
}

// SeverityFilter - активный фильтр ленты и карты: "all" или конкретный уровень
type SeverityFilter string

const FilterAll SeverityFilter = "all"

// ParseSeverityFilter разбирает значение фильтра; пустая строка означает "all"
func ParseSeverityFilter(raw string) (SeverityFilter, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == string(FilterAll) {
		return FilterAll, nil
	}
	s, err := ParseSeverity(raw)
	if err != nil {
		return "", err
	}
	return SeverityFilter(s), nil
}

// Match проверяет, проходит ли уровень через фильтр
func (f SeverityFilter) Match(s Severity) bool {
	return f == FilterAll || f == "" || Severity(f) == s
}
