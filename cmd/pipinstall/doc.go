// Package main is the entry point of the pip bootstrap helper.
//
// It checks whether `<python> -m pip --version` succeeds. If not, it
// downloads get-pip.py into a temporary file, runs it with the interpreter,
// verifies the result and prints next steps. The temporary file is always
// removed.
//
// Configuration:
//   - Environment variables (see internal/infrastructure/config)
//   - CLI flags (override env vars)
//
// Usage:
//
//	# Bootstrap pip for python3 from the official URL
//	./pipinstall
//
//	# Use a specific interpreter and mirror
//	./pipinstall -python /usr/bin/python3.12 -url https://mirror.example.com/get-pip.py
//
// The exit status is 0 whether or not pip could be installed; the outcome is
// reported on stdout.
package main
