// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/zwilson999/vin-decoder/cmd/vin"

func main() {
	cmd.Execute()
}
