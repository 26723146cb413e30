// obstgarten estimates the win likelihood of the Orchard board game by
// Monte-Carlo simulation.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/urfave/cli.v1"

	"github.com/crackerlabs/go-cracker/cmd/params"
	"github.com/crackerlabs/go-cracker/cmd/utils"
	"github.com/crackerlabs/go-cracker/obstgarten"
)

var app = cli.NewApp()

func init() {
	app.Name = filepath.Base(os.Args[0])
	app.Version = params.Version
	app.Usage = "monte-carlo simulation of the Orchard board game"
	app.Flags = []cli.Flag{
		utils.GamesFlag,
		utils.FruitsFlag,
		utils.RavensFlag,
	}
	app.Action = action
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func action(ctx *cli.Context) error {
	games := ctx.GlobalUint64(utils.GamesFlag.Name)
	if games == 0 {
		games = 2000000
	}
	fruits := uint32(ctx.GlobalUint(utils.FruitsFlag.Name))
	if fruits == 0 {
		fruits = 4
	}
	ravens := uint32(ctx.GlobalUint(utils.RavensFlag.Name))
	if ravens == 0 {
		ravens = 5
	}

	stats := obstgarten.Simulate(games, fruits, ravens, nil)
	fmt.Printf("Likelihood winning: %v\n", stats.WinLikelihood())
	fmt.Printf("Likelihood loosing: %v\n", stats.LossLikelihood())
	return nil
}
