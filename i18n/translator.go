package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "key" or "method").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "required":
			msg = "必須項目が不足しています"
		case "unknown_method":
			msg = "未知のメソッドです"
		case "invalid_args":
			msg = "引数が不足しています"
		case "invalid_pointer":
			msg = "JSON Pointer が不正です"
		case "duplicate_key":
			msg = "キーが重複しています"
		case "parse_error":
			msg = "解析エラー"
		}
	default: // "en"
		switch code {
		case "required":
			msg = "required field missing"
		case "unknown_method":
			msg = "unknown method"
		case "invalid_args":
			msg = "not enough arguments"
		case "invalid_pointer":
			msg = "invalid JSON Pointer"
		case "duplicate_key":
			msg = "duplicate key"
		case "parse_error":
			msg = "parse error"
		}
	}
	if msg == "" {
		return code
	}
	if subject := data["method"]; subject != "" {
		return msg + ": " + subject
	}
	if subject := data["key"]; subject != "" {
		return msg + ": " + subject
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
