// Command ckbfx runs manifest-described effects for ckb-next and offers
// tooling around them: info blocks, gradient previews, simulations and
// recorded sessions.
package main

func main() {
	Execute()
}
