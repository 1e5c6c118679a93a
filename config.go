package main

type Config struct {
	// LibraryPath points to the JSON document the catalog is persisted in.
	LibraryPath string `env:"LIBRARY_PATH" env-default:"library.txt"`
	Port        string `env:"PORT" env-default:"3000"`
}
