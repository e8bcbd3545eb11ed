package constants

// Version и PreCommitHash заполняются при сборке через -ldflags:
//
//	go build -ldflags "-X github.com/Kargones/nx-preset/internal/constants.Version=1.2.0"
var (
	// Version - версия приложения
	Version = "dev"
	// PreCommitHash - хеш коммита сборки
	PreCommitHash = "unknown"
)
