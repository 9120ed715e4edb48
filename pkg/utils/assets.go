package utils

import "strings"

// JoinAssetURL concatenates the public asset base URL with a stored file
// reference, guaranteeing exactly one slash at the join.
func JoinAssetURL(base, image string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(image, "/")
}
