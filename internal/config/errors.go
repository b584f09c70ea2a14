package config

import "errors"

var (
	// ErrReadConfig файл конфигурации не прочитан
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig конфигурация не прошла проверку
	ErrInvalidConfig = errors.New("config: invalid config")
)
