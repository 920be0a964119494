// Package process releases browser processes that outlive their launcher.
package process
