//go:build tools

// Package tools pins code generators used by go:generate.
package tools

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
