// Package installer bootstraps pip for a Python interpreter.
//
// The flow is check, download, execute, verify:
//
//	<python> -m pip --version     # already there? stop
//	GET https://bootstrap.pypa.io/get-pip.py -> temp file
//	<python> <temp file>
//	<python> -m pip --version     # verify
//
// Download and execution failures are logged and reported as a failed
// Outcome; they never propagate to the caller and are never retried. The
// temporary installer script is removed on every exit path.
//
// The network and subprocess capabilities sit behind the Fetcher and Runner
// interfaces. HTTPFetcher is built on go-resty over a go-retryablehttp
// pooled transport; ExecRunner is built on os/exec.
package installer
