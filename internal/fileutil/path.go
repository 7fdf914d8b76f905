package fileutil

import "strings"

// EncryptedSuffix is inserted before the first dot of an encrypted file's path.
const EncryptedSuffix = "_encrypted"

// EncryptedPath derives the default output path for an encrypted file by replacing
// the first "." in path with "_encrypted.". The whole string is searched, directories included.
// A path without any dot gets the suffix appended.
func EncryptedPath(path string) string {
	if !strings.Contains(path, ".") {
		return path + EncryptedSuffix
	}

	return strings.Replace(path, ".", EncryptedSuffix+".", 1)
}
