// Package file provides file-based implementations of driven port interfaces.
//
// ConfigStore keeps settings in ~/.jira-worker/config.toml and can watch
// the file for edits made while a server is running.
package file
