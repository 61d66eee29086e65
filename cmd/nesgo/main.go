package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/pkg/errors"

	"github.com/brennanwhite/nesgo/nes"
	"github.com/brennanwhite/nesgo/romfile"
)

var (
	flagRomPath string
	flagDebug   bool
	flagLogging bool
	flagStats   bool
	flagScale   float64
)

func parseFlags() {
	flag.StringVar(&flagRomPath, "rom", "", "path to an iNES .nes image")
	flag.BoolVar(&flagDebug, "d", false, "enable debug panel")
	flag.BoolVar(&flagLogging, "l", false, "enable CPU trace logging")
	flag.BoolVar(&flagStats, "stats", false, "serve the runtime stats dashboard on localhost:8787 and log frame/cycle totals")
	flag.Float64Var(&flagScale, "scale", 2, "window scale factor")
	flag.Parse()
}

func main() {
	parseFlags()

	if flagRomPath == "" {
		log.Fatal("nesgo: -rom is required")
	}

	cart, err := romfile.Load(flagRomPath)
	if err != nil {
		log.Fatal(errors.Wrap(err, "nesgo: load cartridge"))
	}

	sys := nes.NewSystem(cart)
	if flagLogging {
		sys.Cpu.Logger = newCPUFileLogger()
	}

	if flagStats {
		go serveStatsDashboard(sys)
	}

	app := &emulatorApp{system: sys, debug: flagDebug, scale: flagScale}
	pixelgl.Run(app.run)
}

// newCPUFileLogger opens a per-run trace file under ./logs/, matching the
// teacher's cpu<timestamp>.log naming.
func newCPUFileLogger() *log.Logger {
	if err := os.MkdirAll("./logs", 0755); err != nil {
		log.Fatal(errors.Wrap(err, "nesgo: create log directory"))
	}
	logPath := fmt.Sprintf("./logs/cpu%s.log", time.Now().Format("20060102-150405"))
	f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE, 0664)
	if err != nil {
		log.Fatal(errors.Wrap(err, "nesgo: open CPU log file"))
	}
	return log.New(f, "", 0)
}
