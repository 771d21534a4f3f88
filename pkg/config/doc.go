// Package config populates configuration structs from environment variables.
//
// Fields are declared with github.com/caarlos0/env tags; a .env file in the
// working directory (or files passed with WithEnvFiles) is loaded first with
// github.com/joho/godotenv so local development does not require exporting
// variables by hand. Variables already present in the process environment win.
//
//	type Config struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	    Key  string `env:"JWT_SIGNING_KEY,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    // missing required variables are a startup fault
//	}
package config
