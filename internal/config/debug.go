package config

import "os"

func IsDebug() bool {
	return os.Getenv("HAVEN_DEBUG") == "1" || os.Getenv("HAVEN_DEBUG") == "true"
}
