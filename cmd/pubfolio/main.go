// Package main provides the pubfolio CLI.
//
// pubfolio builds photo gallery pages for a static portfolio site and keeps
// the site's portfolio and homepage listings up to date.
//
// Usage:
//
//	pubfolio generate <slug> <title> [description]
//	pubfolio sync
//	pubfolio serve
//
// See --help for all available commands.
package main

func main() {
	Execute()
}
