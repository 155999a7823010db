// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"fmt"

	"github.com/onsi/ginkgo/v2/formatter"
)

// Outf writes a colour formatted message to stdout.
//
// e.g.,
//
//	Outf("{{green}}{{bold}}executed block %d{{/}}\n", 1)
//
// ref.
// https://github.com/onsi/ginkgo/blob/v2.0.0/formatter/formatter.go#L52-L73
func Outf(format string, args ...interface{}) {
	fmt.Fprint(formatter.ColorableStdOut, formatter.F(format, args...))
}
