package models

import "errors"

var (
	// ErrIncidentNotFound возвращается при обращении к несуществующему id
	ErrIncidentNotFound = errors.New("incident not found")
	// ErrInvalidSeverity возвращается, если уровень не входит в перечисление
	ErrInvalidSeverity = errors.New("invalid severity")
	// ErrDataSourceUnavailable - начальный источник данных недоступен или поврежден
	ErrDataSourceUnavailable = errors.New("data source unavailable")
)
