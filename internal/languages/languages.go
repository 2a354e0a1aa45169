package languages

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Language struct {
	Name string
	Code string
}

// Table order matters: reverse lookups return the first entry with a code.
var Table = []Language{
	{Name: "english", Code: "en"},
	{Name: "german", Code: "de"},
	{Name: "spanish", Code: "es"},
	{Name: "french", Code: "fr"},
	{Name: "italian", Code: "it"},
	{Name: "portuguese", Code: "pt"},
	{Name: "russian", Code: "ru"},
	{Name: "japanese", Code: "ja"},
	{Name: "chinese", Code: "zh-CN"},
	{Name: "arabic", Code: "ar"},
	{Name: "hindi", Code: "hi"},
}

// ToCode maps a language name (any case) to its code. Input that is not a
// known name is returned unchanged.
func ToCode(lang string) string {
	lower := strings.ToLower(lang)
	for _, l := range Table {
		if l.Name == lower {
			return l.Code
		}
	}
	return lang
}

// NameForCode returns the capitalized name of the first table entry with the
// given code, or false when no entry matches.
func NameForCode(code string) (string, bool) {
	for _, l := range Table {
		if l.Code == code {
			return capitalize(l.Name), true
		}
	}
	return "", false
}

// DisplayName is NameForCode falling back to the code itself.
func DisplayName(code string) string {
	if name, ok := NameForCode(code); ok {
		return name
	}
	return code
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
