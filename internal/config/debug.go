package config

import "os"

func IsDebug() bool {
	return os.Getenv("SHELLKIT_DEBUG") == "1"
}
