//go:build tools

package tools

// Pins the code generation tooling used for the handler mocks.
import (
	_ "github.com/vektra/mockery/v2"
)
