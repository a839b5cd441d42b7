// Package logger holds the process-wide structured logger. It is silent
// until Setup is called.
package logger
