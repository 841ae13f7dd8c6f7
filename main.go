package main

import "defense-management-system/cmd/server"

func main() {
	server.Init()
	server.Run()
}
