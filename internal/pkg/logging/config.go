package logging

// Поддерживаемые форматы вывода логов.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Поддерживаемые уровни логирования.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Поддерживаемые типы вывода логов.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Значения по умолчанию для Config.
// Уровень warn: stderr CLI принадлежит сообщениям для пользователя,
// служебные info-записи включаются через NXP_LOG_LEVEL=info.
const (
	DefaultLevel      = LevelWarn
	DefaultFormat     = FormatText
	DefaultOutput     = OutputStderr
	DefaultFilePath   = "/var/log/nx-preset.log"
	DefaultMaxSize    = 10 // MB
	DefaultMaxBackups = 3
	DefaultMaxAge     = 7 // days
	DefaultCompress   = true
)

// DefaultConfig возвращает Config со значениями по умолчанию.
func DefaultConfig() Config {
	return Config{
		Level:      DefaultLevel,
		Format:     DefaultFormat,
		Output:     DefaultOutput,
		FilePath:   DefaultFilePath,
		MaxSize:    DefaultMaxSize,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAge,
		Compress:   DefaultCompress,
	}
}

// Config содержит настройки логирования.
type Config struct {
	// Format: "json" или "text".
	Format string

	// Level: "debug", "info", "warn", "error".
	Level string

	// Output: "stderr" или "file".
	Output string

	// FilePath задаёт путь к файлу логов (при output="file").
	FilePath string

	// MaxSize - размер файла в мегабайтах до ротации.
	MaxSize int

	// MaxBackups - количество хранимых backup файлов.
	MaxBackups int

	// MaxAge - возраст backup файлов в днях.
	MaxAge int

	// Compress - сжимать ли backup файлы в gzip.
	Compress bool
}
