// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// iniq queries INI configuration files.
package main

import (
	"context"
	"os"

	"github.com/yourbase/mini/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
