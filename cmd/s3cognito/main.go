package main

import (
	"github.com/famproperties/s3cognito/internal/cmd"
)

func main() {
	cmd.Execute()
}
