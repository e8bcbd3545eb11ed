// Package overrides загружает файл пользовательских дополнительных настроек.
//
// Формат - YAML (JSON тоже подходит) с плоским отображением ключ → скалярное значение:
//
//	Show remote audio alert message: true
//	Custom option: "x"
//
// Порядок ключей сохраняется. Файл проверяется по JSON Schema до разбора:
// не-отображение, вложенные значения и зарезервированные ключи отклоняются.
package overrides

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/Kargones/nx-preset/internal/pkg/apperrors"
	"github.com/Kargones/nx-preset/internal/preset"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const schemaURL = "https://github.com/Kargones/nx-preset/settings.schema.json"

//go:embed settings.schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// compiledSchema компилирует встроенную схему один раз.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("разбор схемы настроек: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("регистрация схемы настроек: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
	})
	return schema, schemaErr
}

// Load читает файл настроек. Пустой path означает отсутствие переопределений.
func Load(path string) (preset.Settings, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrSettingsInvalid,
			"не удалось прочитать файл настроек "+path, err)
	}
	return Parse(data)
}

// Parse разбирает содержимое файла настроек.
// Пустой документ даёт nil без ошибки.
func Parse(data []byte) (preset.Settings, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, invalid("файл настроек не является валидным YAML", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, nil
	}

	if err := validate(&root); err != nil {
		return nil, err
	}

	mapping := root.Content[0]
	settings := make(preset.Settings, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		// Merge key схема не видит: при Decode он уже развёрнут.
		if key.ShortTag() == mergeTag {
			return nil, invalid("merge key << в файле настроек не поддерживается", nil)
		}
		if value.Kind == yaml.AliasNode && value.Alias != nil {
			value = value.Alias
		}
		if value.Kind != yaml.ScalarNode {
			return nil, invalid("значение настройки "+key.Value+" должно быть скаляром", nil)
		}
		// Берётся исходный текст скаляра: `true` остаётся "true", `4001` - "4001".
		settings.Set(key.Value, value.Value)
	}
	return settings, nil
}

// validate проверяет документ по встроенной схеме.
func validate(root *yaml.Node) error {
	sch, err := compiledSchema()
	if err != nil {
		return invalid("схема настроек недоступна", err)
	}

	var generic any
	if err := root.Decode(&generic); err != nil {
		return invalid("не удалось декодировать файл настроек", err)
	}

	// YAML → JSON → значение jsonschema: так числа и ключи приводятся к JSON модели.
	// Ключи-не-строки дают map[interface{}]interface{} и отклоняются на Marshal.
	raw, err := json.Marshal(generic)
	if err != nil {
		var valueErr *json.UnsupportedValueError
		if errors.As(err, &valueErr) {
			return invalid("числовые значения настроек должны быть конечными (.inf и .nan не допускаются)", err)
		}
		return invalid("ключи настроек должны быть строками", err)
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return invalid("не удалось подготовить файл настроек к проверке", err)
	}

	if err := sch.Validate(instance); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return invalid("файл настроек не соответствует схеме", verr)
		}
		return invalid("ошибка проверки файла настроек", err)
	}
	return nil
}

// mergeTag - тег, который yaml.v3 присваивает ключу <<.
const mergeTag = "!!merge"

func invalid(msg string, cause error) error {
	return apperrors.NewAppError(apperrors.ErrSettingsInvalid, msg, cause)
}
