// Package main содержит точку входа nx-preset: генератор пресетов
// подключения NoMachine (.nxs).
//
//	nx-preset server_address [output_file_path]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/nx-preset/internal/app"
	"github.com/Kargones/nx-preset/internal/config"
	"github.com/Kargones/nx-preset/internal/constants"
	"github.com/Kargones/nx-preset/internal/di"
	"github.com/Kargones/nx-preset/internal/pkg/apperrors"
	"github.com/Kargones/nx-preset/internal/pkg/output"
	"github.com/Kargones/nx-preset/internal/pkg/tracing"
)

// shutdownTimeout ограничивает отправку span-ов при завершении.
const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run содержит основную логику и возвращает exit code.
// os.Exit вызывается только в main, чтобы defer-ы (tracerShutdown, span.End)
// успели отработать.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.ErrUsage {
			fmt.Fprintln(stderr, config.Usage())
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return constants.ExitFailure
	}
	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "%s %s (commit %s)\n", constants.AppName, constants.Version, constants.PreCommitHash)
		return constants.ExitOK
	}

	a, err := di.InitializeApp(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return constants.ExitFailure
	}
	l := a.Logger.With(slog.String("trace_id", a.TraceID))
	l.Debug("Информация о сборке",
		slog.String("version", constants.Version),
		slog.String("commit_hash", constants.PreCommitHash),
	)

	ctx := tracing.WithTraceID(context.Background(), a.TraceID)
	ctx = tracing.ContextWithOTelTraceID(ctx, a.TraceID)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.TracerShutdown(shutdownCtx); err != nil {
			l.Error("ошибка завершения tracing", slog.String("error", err.Error()))
		}
	}()

	ctx, span := tracing.Tracer().Start(ctx, constants.ActGenerate,
		trace.WithAttributes(
			attribute.String("server", cfg.Server),
			attribute.String("trace_id", a.TraceID),
		),
	)
	defer span.End()

	start := time.Now()
	data, err := a.Generator.Generate(ctx, app.Request{
		Server:       cfg.Server,
		Port:         cfg.Port,
		OutputPath:   cfg.OutputPath,
		SettingsFile: cfg.SettingsFile,
		DryRun:       cfg.DryRun,
	})
	if pushErr := a.MetricsCollector.Push(ctx); pushErr != nil {
		l.Warn("не удалось отправить метрики", slog.String("error", pushErr.Error()))
	}
	meta := output.NewMetadata(start, a.TraceID)

	if err != nil {
		// Пользователь получает ошибку строкой ниже, лог дублирует её только на debug.
		l.Debug("Ошибка генерации пресета",
			slog.String("server", cfg.Server),
			slog.String("code", apperrors.CodeOf(err)),
			slog.String("error", err.Error()),
			slog.String(constants.MsgErrProcessing, constants.MsgAppExit),
		)
		fmt.Fprintln(stderr, userMessage(err))
		if cfg.OutputFormat == output.FormatJSON {
			if werr := a.OutputWriter.Write(stdout, output.ErrorResult(constants.ActGenerate, err, meta)); werr != nil {
				l.Error("ошибка вывода результата", slog.String("error", werr.Error()))
			}
		}
		return constants.ExitFailure
	}

	message := fmt.Sprintf("Successfully wrote preset for %s to %s", data.Server, data.Path)
	if data.DryRun {
		message = data.Document
	}
	result := &output.Result{
		Status:   output.StatusSuccess,
		Command:  constants.ActGenerate,
		Message:  message,
		Data:     data,
		Metadata: meta,
	}
	if err := a.OutputWriter.Write(stdout, result); err != nil {
		l.Error("ошибка вывода результата", slog.String("error", err.Error()))
		return constants.ExitFailure
	}
	return constants.ExitOK
}

// userMessage возвращает строку ошибки для stderr.
func userMessage(err error) string {
	var writeErr *app.WriteError
	if errors.As(err, &writeErr) {
		return fmt.Sprintf("Error writing NXS file to %s: %v", writeErr.Path, osCause(writeErr.Cause))
	}
	return fmt.Sprintf("Error: %v", err)
}

// osCause убирает из ошибки имя временного файла, оставляя саму причину.
func osCause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Err
	}
	return err
}
