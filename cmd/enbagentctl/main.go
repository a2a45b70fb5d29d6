// Command enbagentctl drives the controller/agent TLV framer from the
// command line: serve runs the agent side (Listening → Connected),
// dial runs the controller side (client connect).
package main

func main() {
	Execute()
}
