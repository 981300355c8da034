package main

import (
	"context"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/uiobserver/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outputKey            = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate typed FuncN helpers for uio",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Highest number of typed arguments to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write",
				Value: "uio/func_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for uio started !")
	defer func() {
		log.Printf("Codegen for uio finished in %v", time.Since(start))
	}()

	genericParamCount := cmd.Uint(genericParamCountKey)
	out := cmd.String(outputKey)
	log.Printf("Generating up to %d typed arguments into %s", genericParamCount, out)

	contents, err := format.Source([]byte(templates.FuncsGen(int(genericParamCount))))
	if err != nil {
		return err
	}
	return os.WriteFile(out, contents, 0644)
}
