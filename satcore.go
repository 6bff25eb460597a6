// This file is part of Satcore.
//
// Satcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Satcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Satcore.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"golang.org/x/term"

	"github.com/satcore/satcore/hardware/memory/inspect"
	"github.com/satcore/satcore/hardware/memory/memorymap"
	"github.com/satcore/satcore/hardware/preferences"
	"github.com/satcore/satcore/logger"
	"github.com/satcore/satcore/modalflag"
	"github.com/satcore/satcore/paths"
	"github.com/satcore/satcore/performance"
	"github.com/satcore/satcore/prefs"
	"github.com/satcore/satcore/statsview"
	"github.com/satcore/satcore/version"
)

func main() {
	// #ctrlc ends any running instances at the next frame boundary
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PERFORM", "MAP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		stop()
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)
	case "PERFORM":
		err = perform(md)
	case "MAP":
		err = memoryMap(md)
	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		stop()
		os.Exit(20)
	}
}

// setEcho sets the logger echo. the output is colourised if it is a terminal
func setEcho(echo bool) {
	if !echo {
		logger.SetEcho(nil)
		return
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	} else {
		logger.SetEcho(os.Stdout)
	}
}

// loadPreferences loads the preferences from disk, applying any preferences
// specified on the command line, followed by the region and hres flags
func loadPreferences(cmdline string, region string, hres string) (*preferences.Preferences, error) {
	if cmdline != "" {
		prefs.PushCommandLineStack(cmdline)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
			}
		}()
	}

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	if region != "" {
		if err := p.Region.Set(region); err != nil {
			return nil, err
		}
	}
	if hres != "" {
		if err := p.HRes.Set(hres); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	frames := md.AddInt("frames", 60, "number of frames to run")
	region := md.AddString("region", "", "console region: NTSC, PAL (default from preferences)")
	hres := md.AddString("hres", "", "horizontal resolution: 320, 352 (default from preferences)")
	numInstances := md.AddInt("instances", 1, "number of independent machines to run concurrently")
	fpsCap := md.AddBool("fpscap", false, "cap frame rate to that of the region")
	stats := md.AddBool("statsview", false, "run stats server")
	statsAddr := md.AddString("statsaddr", statsview.DefaultAddress, "address of the stats server")
	memviz := md.AddBool("memviz", false, "write graphviz view of the main scheduler after running")
	digest := md.AddBool("digest", false, "print a digest of the timing state of each machine")
	snapshot := md.AddString("snapshot", "", "write snapshot of the main machine to file after running")
	restore := md.AddString("restore", "", "restore snapshot from file before running")
	echo := md.AddBool("echo", false, "echo log to stdout")
	cmdline := md.AddString("prefs", "", "preferences to override for this run. eg. \"hardware.stepcap::16; hardware.secondary::false\"")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}
	if *numInstances < 1 {
		return fmt.Errorf("number of instances must be at least one")
	}

	setEcho(*echo)

	hp, err := loadPreferences(*cmdline, *region, *hres)
	if err != nil {
		return err
	}

	instances := make([]*instance, *numInstances)
	for i := range instances {
		instances[i], err = newInstance(i, hp, *digest)
		if err != nil {
			return err
		}
	}

	if *restore != "" {
		data, err := os.ReadFile(*restore)
		if err != nil {
			return err
		}
		for _, inst := range instances {
			if err := inst.m.Plumb(data); err != nil {
				return err
			}
		}
	}

	if *stats {
		stopStats := statsview.Launch(os.Stdout, *statsAddr)
		defer stopStats()
	}

	if err := runInstances(ctx, instances, *frames, *fpsCap); err != nil {
		return err
	}

	for _, inst := range instances {
		fmt.Println(inst)
	}

	if *memviz {
		fn := paths.UniqueFilename("memviz", "scheduler", "dot")
		if err := writeFile(fn, instances[0].m.Scheduler.Visualise); err != nil {
			return err
		}
		fmt.Printf("scheduler graph written to %s\n", fn)
	}

	if *snapshot != "" {
		if err := os.WriteFile(*snapshot, instances[0].m.Snapshot(), 0o644); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(fn string, write func(w io.Writer)) (rerr error) {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()
	write(f)
	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	region := md.AddString("region", "", "console region: NTSC, PAL (default from preferences)")
	hres := md.AddString("hres", "", "horizontal resolution: 320, 352 (default from preferences)")
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	leadtime := md.AddDuration("leadtime", 2*time.Second, "time to run before measurement begins")
	profile := md.AddString("profile", "NONE", "create profiling data: CPU, MEM, TRACE (comma separated)")
	cmdline := md.AddString("prefs", "", "preferences to override for this run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	hp, err := loadPreferences(*cmdline, *region, *hres)
	if err != nil {
		return err
	}

	inst, err := newInstance(0, hp, false)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, inst.m, *duration, *leadtime)
}

func memoryMap(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("addresses given as arguments are peeked in a newly reset machine")

	dump := md.AddInt("dump", 0, "number of bytes to dump from each address")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		fmt.Print(memorymap.Summary())
		return nil
	}

	hp, err := loadPreferences("", "", "")
	if err != nil {
		return err
	}

	inst, err := newInstance(0, hp, false)
	if err != nil {
		return err
	}

	in := inspect.NewInspector(inst.m.Bus)
	for _, a := range md.RemainingArgs() {
		ai, err := in.Peek(a)
		if err != nil {
			return err
		}
		fmt.Println(ai)

		if *dump > 0 {
			in.Dump(os.Stdout, ai.Address, ai.Address+uint32(*dump)-1)
		}
	}

	return nil
}
