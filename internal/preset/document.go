package preset

import (
	"encoding/xml"
	"unicode/utf8"
)

// Document - корневой элемент NXClientSettings.
type Document struct {
	XMLName     xml.Name `xml:"NXClientSettings"`
	Version     string   `xml:"version,attr"`
	Application string   `xml:"application,attr"`
	Groups      []Group  `xml:"group"`
}

// Group - именованная группа опций.
type Group struct {
	Name    string   `xml:"name,attr"`
	Options []Option `xml:"option"`
}

// Option - одна пара key/value. Value всегда строка.
type Option struct {
	Key   string `xml:"key,attr" json:"key"`
	Value string `xml:"value,attr" json:"value"`
}

// Group возвращает группу по имени.
func (d *Document) Group(name string) (*Group, bool) {
	for i := range d.Groups {
		if d.Groups[i].Name == name {
			return &d.Groups[i], true
		}
	}
	return nil, false
}

// IsXMLText сообщает, можно ли записать s в значение атрибута без потерь.
// Недопустимые в XML 1.0 символы и битый UTF-8 encoding/xml заменяет на U+FFFD.
func IsXMLText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= 0x10FFFF:
		default:
			return false
		}
	}
	return true
}
