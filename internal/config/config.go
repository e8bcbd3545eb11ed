// Package config собирает конфигурацию запуска nx-preset:
// позиционные аргументы командной строки, переменные окружения NXP_*
// и необязательный YAML файл (NXP_CONFIG_FILE).
//
// Приоритет: переменные окружения > YAML файл > значения по умолчанию.
package config

import (
	"os"
	"strings"

	"github.com/Kargones/nx-preset/internal/constants"
	"github.com/Kargones/nx-preset/internal/pkg/apperrors"
	"github.com/Kargones/nx-preset/internal/preset"
	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigFileEnv - переменная окружения с путём к YAML конфигурации.
const ConfigFileEnv = "NXP_CONFIG_FILE"

// Config содержит всю конфигурацию одного запуска.
type Config struct {
	// Server - адрес сервера, первый позиционный аргумент. Формат не проверяется.
	Server string `yaml:"-"`

	// OutputPath - второй позиционный аргумент, может быть пустым.
	OutputPath string `yaml:"-"`

	// ShowVersion - запрошен вывод версии (--version).
	ShowVersion bool `yaml:"-"`

	// Port - порт демона NoMachine, без проверки диапазона.
	Port int `yaml:"port" env:"NXP_PORT" env-default:"4000"`

	// SettingsFile - YAML/JSON файл дополнительных настроек.
	SettingsFile string `yaml:"settingsFile" env:"NXP_SETTINGS_FILE"`

	// DryRun - собрать документ и вывести его в stdout без записи файла.
	DryRun bool `yaml:"dryRun" env:"NXP_DRY_RUN" env-default:"false"`

	// OutputFormat - формат результата в stdout: text или json.
	OutputFormat string `yaml:"outputFormat" env:"NXP_OUTPUT_FORMAT" env-default:"text"`

	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

// Load разбирает аргументы (без имени программы) и окружение.
//
// Ошибки:
//   - apperrors.ErrUsage - не указан адрес сервера
//   - apperrors.ErrConfigLoad - не читается файл или переменные окружения
//   - apperrors.ErrConfigValidate - недопустимые значения
func Load(args []string) (*Config, error) {
	cfg := &Config{}

	if len(args) > 0 && isVersionFlag(args[0]) {
		cfg.ShowVersion = true
		return cfg, nil
	}
	if len(args) == 0 || args[0] == "" {
		return nil, apperrors.NewAppError(apperrors.ErrUsage, "не указан адрес сервера", nil)
	}
	cfg.Server = args[0]
	if len(args) > 1 {
		cfg.OutputPath = args[1]
	}

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrConfigLoad,
				"не удалось прочитать файл конфигурации "+path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigLoad,
			"не удалось прочитать переменные окружения", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения, которые нельзя исправить значением по умолчанию.
// Метрики и трейсинг проверяются своими пакетами при создании.
func (c *Config) Validate() error {
	if !preset.IsXMLText(c.Server) {
		return apperrors.NewAppError(apperrors.ErrConfigValidate,
			"адрес сервера содержит символы, недопустимые в XML", nil)
	}
	c.OutputFormat = strings.ToLower(c.OutputFormat)
	switch c.OutputFormat {
	case "json", "text":
	default:
		return apperrors.NewAppError(apperrors.ErrConfigValidate,
			"NXP_OUTPUT_FORMAT должен быть text или json, получено "+c.OutputFormat, nil)
	}
	return nil
}

func isVersionFlag(arg string) bool {
	return arg == "--version" || arg == "-version"
}

// Usage возвращает строку использования для stderr.
func Usage() string {
	return "Usage: " + constants.AppName + " server_address [output_file_path" + constants.PresetExt + "]"
}
