/*
 * Copyright 2026 The Renalscope Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/renalscope/renalscope/cmd"
)

func main() {
	app := &cli.Command{
		Name:  "renalscope",
		Usage: "Renalscope - Kidney Health Assessment",
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdPredict,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
