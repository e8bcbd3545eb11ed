// Package constants содержит все константы, используемые в проекте nx-preset.
// Константы сгруппированы по их функциональному назначению.
package constants

// Константы приложения
const (
	// AppName - имя исполняемого файла, используется в usage и метриках
	AppName = "nx-preset"
	// ActGenerate - имя единственной операции (для метрик, трейсов и JSON вывода)
	ActGenerate = "generate"
	// APIVersion - версия формата JSON вывода
	APIVersion = "v1"
)

// Константы сообщений приложения
const (
	// MsgAppExit - сообщение о завершении работы программы
	MsgAppExit = "Завершение работы программы"
	// MsgErrProcessing - сообщение об обработке ошибки
	MsgErrProcessing = "Обработка ошибки"
)

// Константы документа NXClientSettings.
// Значения сверены с форматом .nxs клиента NoMachine, менять нельзя.
const (
	// DocType - префикс документа, XML пролог не выводится
	DocType = "<!DOCTYPE NXClientSettings>"
	// RootElement - имя корневого элемента
	RootElement = "NXClientSettings"
	// SchemaVersion - значение атрибута version корневого элемента
	SchemaVersion = "2.0"
	// ApplicationID - значение атрибута application корневого элемента
	ApplicationID = "nxclient"
	// GroupGeneral - имя единственной группы опций
	GroupGeneral = "General"
)

// Ключи опций подключения
const (
	// KeyConnectionService - сервис подключения
	KeyConnectionService = "Connection service"
	// KeyDaemonPort - порт демона NoMachine
	KeyDaemonPort = "NoMachine daemon port"
	// KeyServerHost - адрес сервера
	KeyServerHost = "Server host"
	// KeySessionScreenshot - миниатюра сессии, всегда последняя опция
	KeySessionScreenshot = "Session screenshot"
)

// Ключи дополнительных настроек по умолчанию
const (
	KeyAudioAlert      = "Show remote audio alert message"
	KeyResizeMessage   = "Show remote display resize message"
	KeyViewModeMessage = "Show remote desktop view mode message"
)

// Значения по умолчанию
const (
	// DefaultPort - порт демона NoMachine по умолчанию
	DefaultPort = 4000
	// DefaultConnectionService - значение опции Connection service
	DefaultConnectionService = "nx"
	// DefaultFlagValue - значение дополнительных настроек по умолчанию
	DefaultFlagValue = "false"
	// ThumbnailResource - путь к base64 миниатюре относительно рабочего каталога
	ThumbnailResource = "res/nm_thumb_default.b64"
	// PresetExt - расширение файла пресета
	PresetExt = ".nxs"
)

// Коды завершения процесса
const (
	// ExitOK - успешное завершение
	ExitOK = 0
	// ExitFailure - любая ошибка: usage, конфигурация, ресурс, запись
	ExitFailure = 1
)

// ReservedKeys возвращает ключи, которые пользовательские настройки переопределить не могут.
func ReservedKeys() []string {
	return []string{KeyConnectionService, KeyDaemonPort, KeyServerHost, KeySessionScreenshot}
}
