// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "dartscout-cli/cmd/dartscout"
)

func main() {
	cmd.Execute()
}
