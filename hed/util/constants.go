package util

import (
	"fmt"
)

var (
	VERSION_NUMBER = fmt.Sprintf("%.02f", 1.02)
	VERSION        = "hed " + VERSION_NUMBER
	COMMIT         = ""
)

func Version() string {
	if COMMIT == "" {
		return VERSION
	}
	return VERSION + " " + COMMIT
}
