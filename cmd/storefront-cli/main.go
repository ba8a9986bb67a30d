package main

import "storefront/cmd/storefront-cli/cmd"

func main() {
	cmd.Execute()
}
