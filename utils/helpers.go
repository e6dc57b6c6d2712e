package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ExtractUserID extracts the user ID from a mention or a bare snowflake
func ExtractUserID(mention string) (string, error) {
	userID := strings.TrimSpace(mention)
	if strings.HasPrefix(userID, "<@") {
		if !strings.HasSuffix(userID, ">") {
			return "", fmt.Errorf("invalid mention format")
		}
		userID = strings.TrimPrefix(strings.TrimSuffix(userID, ">"), "<@")
		// nickname mentions carry an exclamation mark
		userID = strings.TrimPrefix(userID, "!")
	}

	// Discord IDs are snowflakes
	if _, err := strconv.ParseUint(userID, 10, 64); err != nil {
		return "", fmt.Errorf("invalid user ID")
	}

	return userID, nil
}

// ParseOwnerIDs turns a comma separated list of IDs or mentions into a set.
// Invalid entries are skipped.
func ParseOwnerIDs(list string) map[string]bool {
	owners := make(map[string]bool)
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		id, err := ExtractUserID(part)
		if err != nil {
			continue
		}
		owners[id] = true
	}
	return owners
}

// DisplayPath renders a source location for humans: remote sources are kept
// verbatim, local files are shown relative to the working directory.
func DisplayPath(file string) string {
	if strings.HasPrefix(file, "http") {
		return file
	}
	wd, err := os.Getwd()
	if err != nil {
		return file
	}
	rel, err := filepath.Rel(wd, file)
	if err != nil {
		return file
	}
	return rel
}
