package dcmread

import (
	"os"
	"strconv"
	"strings"
)

/*
===============================================================================
    Configuration
===============================================================================
*/

// Config represents the application configuration
type Config struct {
	OpenFileLimit int
	LogLevel      string

	/* With `StrictMode` enabled (the default), the parser will reject DICOM
	   inputs which either:
	   - Contain an element with an unrecognised VR code
	   - Contain an element with a value length exceeding the remaining input
	     size. For example incomplete Pixel Data.
	   With it disabled, a truncated trailing element yields a partial data
	   set instead of an error.
	*/
	StrictMode bool

	// AcceptMissingPreamble permits parsing inputs that are missing the
	// 128 byte preamble and "DICM" magic; the transfer syntax is then
	// inferred heuristically from the leading bytes.
	AcceptMissingPreamble bool

	// do not access / write `_set`. It is used internally.
	_set bool
}

// intFromEnv retrieves `key` from the OS environment.
// if the key is not found, or cannot be expressed as an integer,
// `found` will be false.
func intFromEnv(key string) (val int, found bool) {
	valStr, found := os.LookupEnv(key)
	if !found {
		return
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		found = false
	}
	return
}

func intFromEnvDefault(key string, def int) (val int) {
	val, found := intFromEnv(key)
	if !found {
		val = def
	}
	return
}

func strFromEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func strFromEnvDefault(key string, def string) (val string) {
	val, found := strFromEnv(key)
	if !found {
		val = def
	}
	return
}

func boolFromEnv(key string) (val bool, found bool) {
	valStr, found := os.LookupEnv(key)
	if !found {
		return
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		found = false
	}
	return
}

func boolFromEnvDefault(key string, def bool) (val bool) {
	val, found := boolFromEnv(key)
	if !found {
		val = def
	}
	return
}

var config Config

// GetConfig returns the application configuration.
// Will set from environment if not already set.
func GetConfig() Config {
	if !config._set {
		config.OpenFileLimit = intFromEnvDefault("DCMREAD_OPENFILELIMIT", 64)
		config.StrictMode = boolFromEnvDefault("DCMREAD_STRICTMODE", true)
		config.AcceptMissingPreamble = boolFromEnvDefault("DCMREAD_ACCEPTMISSINGPREAMBLE", false)
		config.LogLevel = strings.ToLower(strFromEnvDefault("DCMREAD_LOGLEVEL", "info"))
		switch config.LogLevel {
		case "debug", "info", "warn", "error", "fatal", "none", "disabled", "0", "1", "2", "3", "4", "5":
			SetLoggingLevel(config.LogLevel)
		default:
			panic(`Invalid "DCMREAD_LOGLEVEL". Choose from "debug", "info", "warn", "error", "fatal", or "none".`)
		}
		config._set = true
	}
	return config
}

// OverrideConfig overrides the configuration parsed from environment with the one provided
func OverrideConfig(newconfig Config) {
	if !newconfig._set { // to prevent being reverted with subsequent calls to `GetConfig`
		newconfig._set = true
	}
	config = newconfig
}
