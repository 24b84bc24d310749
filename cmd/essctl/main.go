// Command essctl inspects, builds and verifies compound files.
package main

func main() {
	execute()
}
