package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lifeterm/golife/model"
	"github.com/lifeterm/golife/term"
	"github.com/lifeterm/golife/utils"
)

const (
	logDir      = "logs"
	logFileName = "golife.log"

	// How long a file-load diagnostic stays readable before the alternate
	// screen opens over it.
	loadErrorPause = 3 * time.Second
)

var (
	configFlag = flag.String("config", "config.json", "Path to the JSON config file")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/golife.log")
	soundFlag  = flag.Bool("sound", false, "Enable audio cues for commands")
)

// setupLogging routes the standard logger to a file when debug is on and
// discards it otherwise. The control loop owns the terminal, so logs can
// never go to stdout.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	return f
}

func main() {
	flag.Parse()

	// Load configuration - fallback to defaults if the file is unusable
	config, err := utils.LoadConfig(*configFlag)
	if err != nil {
		fmt.Println("Using default configuration:", err)
		config = utils.DefaultConfig()
	}
	if *debugFlag {
		config.Debug = true
	}
	if *soundFlag {
		config.Sound = true
	}

	logFile := setupLogging(config.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	// The optional positional argument names a grid file. Parsing happens
	// before the terminal session starts so a failure diagnostic is readable.
	savePath := config.SavePath
	var loaded *model.Grid
	if arg := flag.Arg(0); arg != "" {
		grid, err := model.NewGridFromFile(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error while loading from file: %v. Creating default grid.\n", err)
			time.Sleep(loadErrorPause)
		} else {
			loaded = grid
			savePath = arg
		}
	}

	session := term.NewSession()
	if err = session.Enter(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer session.Exit()
	defer session.RecoverAndExit()

	grid := loaded
	if grid == nil {
		cols, rows := session.Size()
		grid = model.NewGrid(rows, cols, config.Density)
	} else {
		// Resize only after a successful parse, before the loop starts.
		session.Resize(grid.GetWidth(), grid.GetHeight())
	}

	game := newGame(session, grid, config, savePath)
	game.run()

	session.Exit()
	fmt.Println(game.stats.Summary())
}
