package domain

import (
	"errors"
	"strings"
)

// MsgUnsupportedFileType is the user-facing alert shown when a receipt file
// is rejected. The wording is part of the product contract, keep it verbatim.
const MsgUnsupportedFileType = "Seuls les fichiers avec les extensions jpg, jpeg ou png sont acceptés."

var ErrUnsupportedFileType = errors.New(MsgUnsupportedFileType)
var ErrReceiptNotFound = errors.New("receipt not found")

// allowedExtensions is the receipt image allow-list. Matching is
// case-sensitive on purpose: it mirrors the historical behavior the web
// client shipped with.
var allowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// ValidExtension reports whether fileName carries an accepted receipt image
// extension (the substring after the last dot).
func ValidExtension(fileName string) bool {
	i := strings.LastIndexByte(fileName, '.')
	if i < 0 {
		return false
	}
	_, ok := allowedExtensions[fileName[i+1:]]
	return ok
}

// NormalizeFileName strips any path prefix from a declared file name.
// Browsers send values like `C:\fakepath\receipt.png`; only the base name is
// meaningful.
func NormalizeFileName(declared string) string {
	if i := strings.LastIndexAny(declared, `\/`); i >= 0 {
		return declared[i+1:]
	}
	return declared
}
