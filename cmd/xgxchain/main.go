// Command xgxchain generates kind declarations from tables and checks them.
package main

import "github.com/xgx-io/xgx-chain/internal/cli"

func main() {
	cli.Execute()
}
