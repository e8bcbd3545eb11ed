// Package app выполняет генерацию пресета: загрузка дополнительных настроек,
// сборка документа и запись файла .nxs.
package app

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/nx-preset/internal/constants"
	"github.com/Kargones/nx-preset/internal/overrides"
	"github.com/Kargones/nx-preset/internal/pkg/apperrors"
	"github.com/Kargones/nx-preset/internal/pkg/logging"
	"github.com/Kargones/nx-preset/internal/pkg/metrics"
	"github.com/Kargones/nx-preset/internal/pkg/tracing"
	"github.com/Kargones/nx-preset/internal/preset"
)

// Request описывает один запуск генерации.
type Request struct {
	Server string
	Port   int
	// OutputPath - запрошенный путь; пусто означает "<server>.nxs".
	OutputPath string
	// SettingsFile - файл дополнительных настроек; пусто означает без них.
	SettingsFile string
	// DryRun - документ собирается, но файл не пишется.
	DryRun bool
}

// PresetData - данные результата generate для вывода.
// Options содержит все опции документа, кроме миниатюры.
type PresetData struct {
	Server  string          `json:"server"`
	Port    int             `json:"port"`
	Path    string          `json:"path"`
	Size    int             `json:"size"`
	Options []preset.Option `json:"options"`
	DryRun  bool            `json:"dry_run,omitempty"`

	// Document - текст документа, заполняется только в dry-run.
	Document string `json:"-"`
}

// Generator собирает и записывает пресеты.
type Generator struct {
	builder *preset.Builder
	logger  logging.Logger
	metrics metrics.Collector
}

// NewGenerator создаёт Generator. nil зависимости заменяются на
// стандартный Builder, NopLogger и NopCollector.
func NewGenerator(builder *preset.Builder, logger logging.Logger, collector metrics.Collector) *Generator {
	if builder == nil {
		builder = preset.NewBuilder("")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if collector == nil {
		collector = metrics.NewNopCollector()
	}
	return &Generator{builder: builder, logger: logger, metrics: collector}
}

// Generate собирает документ целиком в памяти и только затем пишет файл.
//
// Ошибки:
//   - apperrors.ErrSettingsInvalid - файл настроек не читается или некорректен
//   - apperrors.ErrResourceLoad - нет файла миниатюры
//   - apperrors.ErrPresetWrite - запись не удалась, причина в *WriteError
func (g *Generator) Generate(ctx context.Context, req Request) (*PresetData, error) {
	start := time.Now()
	g.metrics.RecordCommandStart(constants.ActGenerate, req.Server)

	data, err := g.generate(ctx, req)

	g.metrics.RecordCommandEnd(constants.ActGenerate, req.Server, time.Since(start), err == nil)
	return data, err
}

func (g *Generator) generate(ctx context.Context, req Request) (*PresetData, error) {
	path := OutputPath(req.Server, req.OutputPath)
	log := g.logger.With(
		"server", req.Server,
		"path", path,
		"trace_id", tracing.TraceIDFromContext(ctx),
	)

	settings, err := overrides.Load(req.SettingsFile)
	if err != nil {
		log.Debug("ошибка загрузки дополнительных настроек",
			"settings_file", req.SettingsFile,
			"error", err.Error(),
		)
		return nil, err
	}
	log.Debug("дополнительные настройки загружены", "keys", settings.Keys())

	_, span := tracing.Tracer().Start(ctx, "build-preset",
		trace.WithAttributes(
			attribute.String("server", req.Server),
			attribute.Int("port", req.Port),
		),
	)
	doc, err := g.builder.Document(req.Server, req.Port, settings)
	var text string
	if err == nil {
		text, err = preset.Marshal(doc)
	}
	endSpan(span, err)
	if err != nil {
		log.Debug("ошибка сборки пресета",
			"resource", g.builder.Resource(),
			"error", err.Error(),
		)
		return nil, err
	}

	data := &PresetData{
		Server:  req.Server,
		Port:    req.Port,
		Path:    path,
		Size:    len(text),
		Options: visibleOptions(doc),
	}
	if req.DryRun {
		log.Info("dry-run: запись пресета пропущена", "size", len(text))
		data.DryRun = true
		data.Document = text
		return data, nil
	}

	_, span = tracing.Tracer().Start(ctx, "write-preset",
		trace.WithAttributes(
			attribute.String("path", path),
			attribute.Int("size", len(text)),
		),
	)
	err = writeFile(path, []byte(text))
	endSpan(span, err)
	if err != nil {
		log.Debug("ошибка записи пресета", "error", err.Error())
		return nil, apperrors.NewAppError(apperrors.ErrPresetWrite,
			"не удалось записать пресет", &WriteError{Path: path, Cause: err})
	}

	g.metrics.RecordPresetWritten(req.Server, len(text))
	log.Info("пресет записан", "size", len(text))
	return data, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func visibleOptions(doc *preset.Document) []preset.Option {
	group, ok := doc.Group(constants.GroupGeneral)
	if !ok {
		return nil
	}
	options := make([]preset.Option, 0, len(group.Options))
	for _, opt := range group.Options {
		if opt.Key == constants.KeySessionScreenshot {
			continue
		}
		options = append(options, opt)
	}
	return options
}
