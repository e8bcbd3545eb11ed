// Package preset строит документ пресета подключения NoMachine (.nxs).
//
// Документ состоит из корня NXClientSettings с одной группой General.
// Порядок опций фиксирован: параметры подключения, дополнительные
// настройки, затем миниатюра сессии.
//
//	doc, err := preset.BuildPreset("example.com", constants.DefaultPort, nil)
package preset

import (
	"encoding/xml"
	"os"
	"strconv"
	"strings"

	"github.com/Kargones/nx-preset/internal/constants"
	"github.com/Kargones/nx-preset/internal/pkg/apperrors"
)

// Builder собирает документы пресетов.
// Путь к миниатюре задаётся один раз при создании и дальше не меняется.
// Builder не хранит изменяемого состояния и безопасен для конкурентного использования.
type Builder struct {
	resource string
}

// NewBuilder создаёт Builder, читающий миниатюру из resource.
// Пустой resource означает constants.ThumbnailResource.
func NewBuilder(resource string) *Builder {
	if resource == "" {
		resource = constants.ThumbnailResource
	}
	return &Builder{resource: resource}
}

// Resource возвращает путь к файлу миниатюры.
func (b *Builder) Resource() string {
	return b.resource
}

var defaultBuilder = NewBuilder(constants.ThumbnailResource)

// BuildPreset собирает документ стандартным Builder.
func BuildPreset(server string, port int, settings Settings) (string, error) {
	return defaultBuilder.BuildPreset(server, port, settings)
}

// LoadThumbnail читает миниатюру стандартным Builder.
func LoadThumbnail(path string) (string, error) {
	return defaultBuilder.LoadThumbnail(path)
}

// LoadThumbnail возвращает base64 миниатюру без обрезки перевода строки.
// Файл читается как текст: переводы строк \r\n и \r приводятся к \n.
// Аргумент path зарезервирован и не используется: читается всегда b.Resource().
// Файл перечитывается при каждом вызове.
func (b *Builder) LoadThumbnail(_ string) (string, error) {
	data, err := os.ReadFile(b.resource)
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrResourceLoad,
			"не удалось прочитать миниатюру "+b.resource, err)
	}
	return normalizeNewlines(string(data)), nil
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// ConnectionSettings возвращает параметры подключения в фиксированном порядке.
func ConnectionSettings(server string, port int) []Option {
	return []Option{
		{Key: constants.KeyConnectionService, Value: constants.DefaultConnectionService},
		{Key: constants.KeyDaemonPort, Value: strconv.Itoa(port)},
		{Key: constants.KeyServerHost, Value: server},
	}
}

// Document собирает дерево документа. settings накладываются на
// DefaultSettings(); nil означает настройки по умолчанию без изменений.
func (b *Builder) Document(server string, port int, settings Settings) (*Document, error) {
	additional := DefaultSettings().Merge(settings)

	thumbnail, err := b.LoadThumbnail("")
	if err != nil {
		return nil, err
	}

	options := make([]Option, 0, 3+len(additional)+1)
	options = append(options, ConnectionSettings(server, port)...)
	options = append(options, additional...)
	options = append(options, Option{Key: constants.KeySessionScreenshot, Value: thumbnail})

	return &Document{
		Version:     constants.SchemaVersion,
		Application: constants.ApplicationID,
		Groups: []Group{
			{Name: constants.GroupGeneral, Options: options},
		},
	}, nil
}

// BuildPreset возвращает полный текст документа: DOCTYPE и XML без пролога.
// server и значения настроек не проверяются: символы, недопустимые в XML,
// и битый UTF-8 заменяются на U+FFFD (см. IsXMLText).
func (b *Builder) BuildPreset(server string, port int, settings Settings) (string, error) {
	doc, err := b.Document(server, port, settings)
	if err != nil {
		return "", err
	}
	return Marshal(doc)
}

// Marshal сериализует документ в UTF-8 с префиксом DOCTYPE.
func Marshal(doc *Document) (string, error) {
	body, err := xml.Marshal(doc)
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrOutputFormat,
			"не удалось сериализовать документ", err)
	}
	return constants.DocType + string(body), nil
}
