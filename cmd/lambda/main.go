// Command lambda runs configured transformation pipelines over JSON or YAML
// documents.
//
//	lambda --config lambda.yaml list
//	lambda --config lambda.yaml run activeByAge --file people.json
//	cat people.json | lambda run activeByAge --output yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
