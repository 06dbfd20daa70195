package main

import (
	"context"

	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
