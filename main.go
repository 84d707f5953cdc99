// Public domain.

package main

import "github.com/soniakeys/asciimoon/internal/amprog"

func main() {
	amprog.Main()
}
