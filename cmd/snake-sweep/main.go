package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"ledframe/internal/sims/snake"
)

type intList []int

func (l *intList) String() string { return fmt.Sprint(*l) }

func (l *intList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		*l = append(*l, n)
	}
	return nil
}

type floatList []float64

func (l *floatList) String() string { return fmt.Sprint(*l) }

func (l *floatList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return err
		}
		*l = append(*l, f)
	}
	return nil
}

func main() {
	episodes := flag.Int("episodes", 5, "episodes to play per candidate")
	maxTicks := flag.Int("ticks", 0, "tick cap per candidate (0 = generous default)")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 18, "board width")
	height := flag.Int("h", 18, "board height")
	seed := flag.Int64("seed", 1337, "seed used for deterministic runs")
	strategies := flag.String("strategies", "seek,strategic", "comma separated strategies")
	var buffers intList
	var fills floatList
	flag.Var(&buffers, "buffer", "shortcut buffers to try, comma separated (repeatable)")
	flag.Var(&fills, "fill", "shortcut fill thresholds to try, comma separated (repeatable)")
	flood := flag.Bool("flood", false, "also try seek with the flood check enabled")
	flag.Parse()

	base := snake.DefaultConfig()
	base.Width, base.Height, base.Seed = *width, *height, *seed

	var strats []snake.Strategy
	for _, name := range strings.Split(*strategies, ",") {
		s, err := snake.ParseStrategy(name)
		if err != nil {
			log.Fatal(err)
		}
		strats = append(strats, s)
	}
	floodOpts := []bool{false}
	if *flood {
		floodOpts = append(floodOpts, true)
	}

	reportHost()
	cands := snake.Candidates(base, strats, buffers, fills, floodOpts)
	fmt.Printf("Sweeping %d candidates (%d workers, %d episodes each)\n", len(cands), *workers, *episodes)

	start := time.Now()
	results := snake.Sweep(cands, *episodes, *maxTicks, *workers)
	elapsed := time.Since(start)

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.WinRate() != b.WinRate() {
			return a.WinRate() > b.WinRate()
		}
		return a.Stats.MeanLength() > b.Stats.MeanLength()
	})

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i, r := range results {
		if r.Err != nil {
			fmt.Printf("%2d) %s error: %v\n", i+1, r.Candidate.Label, r.Err)
			continue
		}
		st := r.Stats
		fmt.Printf("%2d) win=%.2f meanLen=%.1f best=%d deaths=%d ticks=%d last=%s %s\n",
			i+1, r.WinRate(), st.MeanLength(), st.BestLength, st.Deaths, st.Ticks, st.LastReason, r.Candidate.Label)
	}
}

// reportHost prints the machine the sweep runs on so timings can be compared.
func reportHost() {
	model := "unknown cpu"
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		model = infos[0].ModelName
	}
	cores, err := cpu.Counts(true)
	if err != nil {
		cores = runtime.NumCPU()
	}
	line := fmt.Sprintf("Host: %s, %d logical cores", model, cores)
	if vm, err := mem.VirtualMemory(); err == nil {
		line += fmt.Sprintf(", %.1f GiB memory (%.0f%% used)", float64(vm.Total)/(1<<30), vm.UsedPercent)
	}
	fmt.Println(line)
}
