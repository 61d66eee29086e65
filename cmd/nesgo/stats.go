package main

import (
	"fmt"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/brennanwhite/nesgo/nes"
)

const statsAddr = "localhost:8787"

// serveStatsDashboard launches the standard statsview runtime dashboard
// (goroutines, GC, memory) and additionally logs frame/cycle throughput
// from the running System, grounded on
// JetSetIlly-Gopher2600's statsview.Launch.
func serveStatsDashboard(sys *nes.System) {
	viewer.SetConfiguration(viewer.WithAddr(statsAddr))
	mgr := statsview.New()
	mgr.Start()

	fmt.Printf("nesgo: stats dashboard available at http://%s/debug/statsview\n", statsAddr)

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		s := sys.Stats()
		fmt.Printf("nesgo: frames=%d cycles=%d\n", s.FramesRun, s.CyclesRun)
	}
}
