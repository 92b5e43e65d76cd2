package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// lookup devolve a variável sem espaços; vazia conta como ausente.
func lookup(k string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(k))
	return v, v != ""
}

// getenvParsed aplica parse ao valor; ausente ou inválido devolve def.
func getenvParsed[T any](k string, def T, parse func(string) (T, error)) T {
	v, ok := lookup(k)
	if !ok {
		return def
	}
	out, err := parse(v)
	if err != nil {
		return def
	}
	return out
}

func getenvDefault(k, def string) string {
	if v, ok := lookup(k); ok {
		return v
	}
	return def
}

func getenvIsSet(k string) bool {
	_, ok := lookup(k)
	return ok
}

func getenvInt(k string) (int, bool) {
	v, ok := lookup(k)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(v)
	return i, err == nil
}

func getenvIntDefault(k string, def int) int {
	return getenvParsed(k, def, strconv.Atoi)
}

func getenvUint64Default(k string, def uint64) uint64 {
	return getenvParsed(k, def, func(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) })
}

func getenvFloatDefault(k string, def float64) float64 {
	return getenvParsed(k, def, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

func getenvBoolDefault(k string, def bool) bool {
	return getenvParsed(k, def, strconv.ParseBool)
}

func getenvDurationDefault(k string, def time.Duration) time.Duration {
	return getenvParsed(k, def, time.ParseDuration)
}
