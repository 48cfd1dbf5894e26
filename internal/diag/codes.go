package diag

import "fmt"

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Векторные файлы
	VecInfo      Code = 1000
	VecBadLine   Code = 1001 // строка не из четырёх полей
	VecBadBits   Code = 1002 // битовое поле не шестнадцатеричное
	VecBadWidth  Code = 1003 // битовое поле не той разрядности
	VecEmptyFile Code = 1004

	// Прогон соответствия
	ChkInfo       Code = 2000
	ChkMismatch32 Code = 2001 // разобранные f32-биты разошлись с эталоном
	ChkMismatch64 Code = 2002 // разобранные f64-биты разошлись с эталоном
	ChkParseError Code = 2003 // литерал не разобрался вовсе

	// Ввод-вывод
	IOInfo     Code = 4000
	IOReadFail Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:   "unknown error",
	VecInfo:       "vector file note",
	VecBadLine:    "malformed vector line",
	VecBadBits:    "bit field is not hexadecimal",
	VecBadWidth:   "bit field has wrong width",
	VecEmptyFile:  "vector file holds no vectors",
	ChkInfo:       "conformance note",
	ChkMismatch32: "float32 bits mismatch",
	ChkMismatch64: "float64 bits mismatch",
	ChkParseError: "literal failed to parse",
	IOInfo:        "io note",
	IOReadFail:    "cannot read input",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("VEC%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("CHK%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
