package config

// LoggingConfig содержит настройки логирования.
// Значения по умолчанию совпадают с logging.DefaultConfig().
type LoggingConfig struct {
	// Level - уровень логирования (debug, info, warn, error)
	Level string `yaml:"level" env:"NXP_LOG_LEVEL" env-default:"warn"`

	// Format - формат логов (json, text)
	Format string `yaml:"format" env:"NXP_LOG_FORMAT" env-default:"text"`

	// Output - вывод логов (stderr, file)
	Output string `yaml:"output" env:"NXP_LOG_OUTPUT" env-default:"stderr"`

	// FilePath - путь к файлу логов (если output=file)
	FilePath string `yaml:"filePath" env:"NXP_LOG_FILE_PATH"`

	// MaxSize - максимальный размер файла лога в MB
	MaxSize int `yaml:"maxSize" env:"NXP_LOG_MAX_SIZE" env-default:"10"`

	// MaxBackups - максимальное количество backup файлов
	MaxBackups int `yaml:"maxBackups" env:"NXP_LOG_MAX_BACKUPS" env-default:"3"`

	// MaxAge - максимальный возраст backup файлов в днях
	MaxAge int `yaml:"maxAge" env:"NXP_LOG_MAX_AGE" env-default:"7"`

	// Compress - сжимать ли backup файлы.
	// env-default применяется и поверх compress: false из YAML,
	// выключить сжатие можно только через NXP_LOG_COMPRESS=false.
	Compress bool `yaml:"compress" env:"NXP_LOG_COMPRESS" env-default:"true"`
}
