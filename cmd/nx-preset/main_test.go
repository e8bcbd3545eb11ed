package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/nx-preset/internal/constants"
	"github.com/Kargones/nx-preset/internal/pkg/testutil"
	"github.com/Kargones/nx-preset/internal/preset"
)

const testThumbnail = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

var resultSchemaPath = filepath.Join("..", "..", "internal", "pkg", "output", "testdata", "schema", "result.schema.json")

// clearEnv сбрасывает NXP_* переменные окружения разработчика.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NXP_CONFIG_FILE", "NXP_PORT", "NXP_SETTINGS_FILE", "NXP_OUTPUT_FORMAT", "NXP_DRY_RUN",
		"NXP_LOG_LEVEL", "NXP_LOG_OUTPUT", "NXP_METRICS_ENABLED", "NXP_TRACING_ENABLED",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("NXP_LOG_LEVEL", "error")
}

// workspace переходит во временный каталог с файлом миниатюры.
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "res"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, constants.ThumbnailResource), []byte(testThumbnail), 0o600))
	t.Chdir(dir)
	return dir
}

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_NoArguments(t *testing.T) {
	clearEnv(t)

	code, stdout, stderr := runCLI()

	assert.Equal(t, constants.ExitFailure, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Usage: nx-preset server_address [output_file_path.nxs]\n", stderr)
}

func TestRun_Version(t *testing.T) {
	clearEnv(t)

	for _, flag := range []string{"--version", "-version"} {
		code, stdout, stderr := runCLI(flag)
		assert.Equal(t, constants.ExitOK, code)
		assert.True(t, strings.HasPrefix(stdout, "nx-preset "+constants.Version), stdout)
		assert.Empty(t, stderr)
	}
}

func TestRun_DefaultPath(t *testing.T) {
	clearEnv(t)
	dir := workspace(t)

	code, stdout, stderr := runCLI("example.com")

	require.Equal(t, constants.ExitOK, code, stderr)
	assert.Equal(t, "Successfully wrote preset for example.com to example.com.nxs\n", stdout)
	assert.Empty(t, stderr)

	written, err := os.ReadFile(filepath.Join(dir, "example.com.nxs"))
	require.NoError(t, err)
	expected, err := preset.NewBuilder("").BuildPreset("example.com", constants.DefaultPort, nil)
	require.NoError(t, err)
	assert.Equal(t, expected, string(written))
}

func TestRun_ExplicitPathForcedExtension(t *testing.T) {
	clearEnv(t)
	dir := workspace(t)

	code, stdout, _ := runCLI("10.0.0.1", "office.xml")

	require.Equal(t, constants.ExitOK, code)
	assert.Equal(t, "Successfully wrote preset for 10.0.0.1 to office.nxs\n", stdout)
	assert.FileExists(t, filepath.Join(dir, "office.nxs"))
	assert.NoFileExists(t, filepath.Join(dir, "office.xml"))
}

func TestRun_PortAndSettingsFromEnv(t *testing.T) {
	clearEnv(t)
	dir := workspace(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"),
		[]byte("Show remote display resize message: \"true\"\n"), 0o600))
	t.Setenv("NXP_PORT", "4001")
	t.Setenv("NXP_SETTINGS_FILE", "settings.yaml")

	code, _, stderr := runCLI("example.com", "p")
	require.Equal(t, constants.ExitOK, code, stderr)

	written, err := os.ReadFile(filepath.Join(dir, "p.nxs"))
	require.NoError(t, err)
	assert.Contains(t, string(written), `<option key="NoMachine daemon port" value="4001">`)
	assert.Contains(t, string(written), `<option key="Show remote display resize message" value="true">`)
}

func TestRun_InvalidSettings(t *testing.T) {
	clearEnv(t)
	dir := workspace(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte("Server host: evil\n"), 0o600))
	t.Setenv("NXP_SETTINGS_FILE", "settings.yaml")

	code, stdout, stderr := runCLI("example.com")

	assert.Equal(t, constants.ExitFailure, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, "Error: SETTINGS.INVALID"), stderr)
	assert.NoFileExists(t, filepath.Join(dir, "example.com.nxs"))
}

func TestRun_MissingThumbnail(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	code, stdout, stderr := runCLI("example.com")

	assert.Equal(t, constants.ExitFailure, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, "Error: RESOURCE.LOAD_FAILED"), stderr)
	assert.NoFileExists(t, "example.com.nxs")
}

func TestRun_WriteFailure(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("NXP_LOG_LEVEL"))
	workspace(t)

	var code int
	var stdout, stderr string
	processStderr := testutil.CaptureStderr(t, func() {
		code, stdout, stderr = runCLI("example.com", filepath.Join("absent", "out"))
	})

	assert.Equal(t, constants.ExitFailure, code)
	assert.Empty(t, stdout)
	assert.Equal(t,
		"Error writing NXS file to "+filepath.Join("absent", "out.nxs")+": no such file or directory\n",
		stderr)
	assert.Empty(t, processStderr, "при уровне по умолчанию лог не дублирует сообщение об ошибке")
}

func TestRun_FailureLoggedAtDebug(t *testing.T) {
	clearEnv(t)
	t.Setenv("NXP_LOG_LEVEL", "debug")
	workspace(t)

	var code int
	processStderr := testutil.CaptureStderr(t, func() {
		code, _, _ = runCLI("example.com", filepath.Join("absent", "out"))
	})

	assert.Equal(t, constants.ExitFailure, code)
	assert.Contains(t, processStderr, "Ошибка генерации пресета")
	assert.Contains(t, processStderr, "PRESET.WRITE_FAILED")
}

func TestRun_InvalidOutputFormat(t *testing.T) {
	clearEnv(t)
	t.Setenv("NXP_OUTPUT_FORMAT", "xml")

	code, _, stderr := runCLI("example.com")

	assert.Equal(t, constants.ExitFailure, code)
	assert.Contains(t, stderr, "CONFIG.VALIDATION_FAILED")
}

func TestRun_JSONOutput(t *testing.T) {
	clearEnv(t)
	schema, err := jsonschema.NewCompiler().Compile(resultSchemaPath)
	require.NoError(t, err)
	workspace(t)
	t.Setenv("NXP_OUTPUT_FORMAT", "json")

	code, stdout, stderr := runCLI("example.com")
	require.Equal(t, constants.ExitOK, code, stderr)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	var generic any = doc
	assert.NoError(t, schema.Validate(generic))

	assert.Equal(t, "success", doc["status"])
	assert.Equal(t, constants.ActGenerate, doc["command"])
	data, ok := doc["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "example.com", data["server"])
	assert.Equal(t, "example.com.nxs", data["path"])
	assert.InDelta(t, float64(constants.DefaultPort), data["port"], 0)
	options, ok := data["options"].([]any)
	require.True(t, ok)
	assert.Len(t, options, 6)
}

func TestRun_JSONErrorOutput(t *testing.T) {
	clearEnv(t)
	schema, err := jsonschema.NewCompiler().Compile(resultSchemaPath)
	require.NoError(t, err)
	t.Chdir(t.TempDir())
	t.Setenv("NXP_OUTPUT_FORMAT", "json")

	code, stdout, stderr := runCLI("example.com")
	require.Equal(t, constants.ExitFailure, code)
	assert.NotEmpty(t, stderr)

	var doc any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.NoError(t, schema.Validate(doc))

	errInfo := doc.(map[string]any)["error"].(map[string]any)
	assert.Equal(t, "RESOURCE.LOAD_FAILED", errInfo["code"])
}

func TestRun_DryRun(t *testing.T) {
	clearEnv(t)
	dir := workspace(t)
	t.Setenv("NXP_DRY_RUN", "true")

	code, stdout, stderr := runCLI("example.com")
	require.Equal(t, constants.ExitOK, code, stderr)

	expected, err := preset.NewBuilder("").BuildPreset("example.com", constants.DefaultPort, nil)
	require.NoError(t, err)
	assert.Equal(t, expected+"\n", stdout)
	assert.NoFileExists(t, filepath.Join(dir, "example.com.nxs"))
}
