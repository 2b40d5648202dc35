// Command agent-tools runs the web search and report storage tools from the
// command line or serves them over MCP.
package main

func main() {
	Execute()
}
