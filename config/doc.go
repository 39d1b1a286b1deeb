// Package config loads levelsafe settings from the environment.
//
// Variables:
//
//	LEVELSAFE_LOG_LEVEL  zap level name (debug, info, warn, error); default warn
//	LEVELSAFE_INPUT      input file used when no path argument is given; default day2.txt
package config
