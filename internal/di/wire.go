//go:build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Kargones/nx-preset/internal/config"
)

//go:generate wire

// ProviderSet объединяет все провайдеры приложения.
//
// При добавлении новых провайдеров:
// 1. Создать функцию провайдера в providers.go
// 2. Добавить её в ProviderSet
// 3. Перегенерировать: go generate ./internal/di/...
var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideOutputWriter,
	ProvideTraceID,
	ProvideMetricsCollector,
	ProvideTracerProvider,
	ProvideBuilder,
	ProvideGenerator,
	wire.Struct(new(App), "*"),
)

// InitializeApp создаёт App из загруженного Config.
// Реализация генерируется в wire_gen.go.
//
//	cfg, err := config.Load(os.Args[1:])
//	if err != nil {
//	    return constants.ExitFailure
//	}
//	a, err := di.InitializeApp(cfg)
func InitializeApp(cfg *config.Config) (*App, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
