package main

import "github.com/adanyl0v/go-todo-local/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustOpenStorage()
	defer app.CloseStorage()

	app.MustLoadTasks()
	app.MustListenAndServeHTTP()
}
