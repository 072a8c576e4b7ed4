package validators

import "unicode/utf8"

// DocumentLength is the exact size of a provider document (CPF digits).
const DocumentLength = 11

func IsValidDocument(document string) bool {
	return utf8.RuneCountInString(document) == DocumentLength
}
