// cracker is the command-line client of the suffix search: it reads the
// search parameters from flags or a json config file, runs the search
// and prints the concatenated string together with its SHA-1 digest.
package main

import (
	"encoding/hex"
	"fmt"
	stdlog "log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"time"

	"github.com/inconshreveable/log15"
	"github.com/rcrowley/go-metrics"
	"gopkg.in/urfave/cli.v1"

	"github.com/crackerlabs/go-cracker/cmd/params"
	"github.com/crackerlabs/go-cracker/cmd/utils"
	"github.com/crackerlabs/go-cracker/common"
	"github.com/crackerlabs/go-cracker/config"
	"github.com/crackerlabs/go-cracker/cracker"
	"github.com/crackerlabs/go-cracker/pow"
)

var (
	log = log15.New("module", "cracker/main")

	app = cli.NewApp()
	cfg *config.Config

	//config
	configFlags = []cli.Flag{
		utils.ConfigFileFlag,
	}
	//search
	searchFlags = []cli.Flag{
		utils.BaseFlag,
		utils.DifficultyFlag,
		utils.WorkersFlag,
	}
	//log
	logFlags = []cli.Flag{
		utils.LogLvlFlag,
		utils.LogDirFlag,
	}
	//stat
	statFlags = []cli.Flag{
		utils.PProfEnabledFlag,
		utils.PProfPortFlag,
		utils.MetricsEnabledFlag,
	}
)

func init() {
	app.Name = filepath.Base(os.Args[0])
	app.Version = params.Version
	app.Usage = "searches an ascii suffix giving sha1(base+suffix) the requested leading zero hex digits"
	app.Flags = utils.MergeFlags(configFlags, searchFlags, logFlags, statFlags)
	app.Before = beforeAction
	app.Action = action
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func makeConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if file := ctx.GlobalString(utils.ConfigFileFlag.Name); file != "" {
		loaded, err := config.Load(file)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if ctx.GlobalIsSet(utils.BaseFlag.Name) {
		cfg.Base = ctx.GlobalString(utils.BaseFlag.Name)
	}
	if ctx.GlobalIsSet(utils.DifficultyFlag.Name) {
		cfg.Difficulty = uint32(ctx.GlobalUint(utils.DifficultyFlag.Name))
	}
	if ctx.GlobalIsSet(utils.WorkersFlag.Name) {
		cfg.Workers = uint32(ctx.GlobalUint(utils.WorkersFlag.Name))
	}
	if ctx.GlobalIsSet(utils.LogLvlFlag.Name) {
		cfg.LogLvl = ctx.GlobalString(utils.LogLvlFlag.Name)
	}
	if ctx.GlobalIsSet(utils.LogDirFlag.Name) {
		cfg.LogDir = ctx.GlobalString(utils.LogDirFlag.Name)
	}
	if ctx.GlobalIsSet(utils.PProfEnabledFlag.Name) {
		cfg.PProf = true
	}
	if ctx.GlobalIsSet(utils.PProfPortFlag.Name) {
		cfg.PProfPort = ctx.GlobalUint(utils.PProfPortFlag.Name)
	}
	if ctx.GlobalIsSet(utils.MetricsEnabledFlag.Name) {
		cfg.Metrics = true
	}
	return cfg, nil
}

func setupLogger(cfg *config.Config) {
	lvl, err := log15.LvlFromString(cfg.LogLvl)
	if err != nil {
		lvl = log15.LvlInfo
	}
	if cfg.LogDir != "" {
		log15.Root().SetHandler(common.LogHandler(cfg.LogDir, "cracker.log", cfg.LogLvl))
		return
	}
	log15.Root().SetHandler(log15.LvlFilterHandler(lvl, log15.StderrHandler))
}

func beforeAction(ctx *cli.Context) error {
	loaded, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	cfg = loaded
	setupLogger(cfg)

	if cfg.PProf {
		port := cfg.PProfPort
		if port == 0 {
			port = 8080
		}
		listenAddress := fmt.Sprintf("localhost:%d", port)
		common.Go(func() {
			log.Info("pprof server enabled", "addr", "http://"+listenAddress+"/debug/pprof")
			http.ListenAndServe(listenAddress, nil)
		})
	}
	if cfg.Metrics {
		common.Go(func() {
			metrics.Log(metrics.DefaultRegistry, time.Minute,
				stdlog.New(os.Stderr, "metrics ", stdlog.Lmicroseconds))
		})
	}
	return nil
}

func action(ctx *cli.Context) error {
	start := time.Now()
	suffix, found, err := cracker.GenerateValidString(cfg.Base, cfg.Difficulty, cfg.Workers)
	if err != nil {
		return err
	}
	log.Info("search returned", "elapsed", time.Since(start))

	if !found {
		fmt.Println("Nothing found")
		return nil
	}

	total := cfg.Base + suffix
	fmt.Println(total)
	fmt.Println(hex.EncodeToString(pow.Hash([]byte(total))))
	return nil
}
