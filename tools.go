//go:build tools

package tools

import (
	_ "github.com/hexdigest/gowrap/cmd/gowrap"
	_ "github.com/lxc/incus/v6/cmd/generate-database"
	_ "github.com/matryer/moq"
	_ "golang.org/x/tools/cmd/goimports"
)
