package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"fireworks/internal/sims/fireworks"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("invalid burst count %q: %w", part, err)
		}
		*l = append(*l, n)
	}
	return nil
}

type job struct {
	burst int
	seed  int64
}

func main() {
	steps := flag.Int("steps", 1800, "ticks to simulate per scenario")
	tps := flag.Int("tps", 60, "ticks per simulated second")
	every := flag.Int("every", 6, "launch one rocket every n ticks")
	seeds := flag.Int("seeds", 4, "seeds per burst count")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	var bursts intList
	flag.Var(&bursts, "bursts", "comma-separated burst counts to sweep (repeatable)")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	if len(bursts) == 0 {
		bursts = intList{100, 300, 1000, 3000}
	}
	if *workers < 1 {
		*workers = 1
	}
	if *tps < 1 {
		log.Fatalf("-tps must be at least 1, got %d", *tps)
	}

	kv := make(map[string]string, len(overrides))
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			log.Printf("[Bench] Warning: ignoring override %q", o)
			continue
		}
		kv[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	base := fireworks.FromMap(kv)
	if err := base.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	var jobsList []job
	for _, b := range bursts {
		for s := 0; s < *seeds; s++ {
			jobsList = append(jobsList, job{burst: b, seed: base.Seed + int64(s)})
		}
	}

	fmt.Printf("Running %d scenarios (%d workers, %d steps at %d tps)\n", len(jobsList), *workers, *steps, *tps)

	jobs := make(chan job)
	results := make(chan fireworks.LoadResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				cfg := base
				cfg.Params.BurstCount = j.burst
				results <- fireworks.RunLoad(cfg, fireworks.LoadScenario{
					Steps:       *steps,
					Dt:          1.0 / float64(*tps),
					LaunchEvery: *every,
					Seed:        j.seed,
				})
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range jobsList {
			jobs <- j
		}
		close(jobs)
	}()

	start := time.Now()
	var all []fireworks.LoadResult
	for res := range results {
		if res.Err != nil {
			log.Fatalf("burst %d seed %d failed: %v", res.BurstCount, res.Seed, res.Err)
		}
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].BurstCount != all[j].BurstCount {
			return all[i].BurstCount < all[j].BurstCount
		}
		return all[i].Seed < all[j].Seed
	})

	fmt.Printf("\n%6s %6s %9s %9s %9s %9s %9s %10s\n", "burst", "seed", "peakPart", "peakTrail", "spawned", "dropped", "evicted", "elapsed")
	for _, res := range all {
		fmt.Printf("%6d %6d %9d %9d %9d %9d %9d %10s\n",
			res.BurstCount, res.Seed, res.PeakParticles, res.PeakTrails,
			res.Stats.Spawned, res.Stats.Dropped, res.Stats.TrailsEvicted,
			res.Elapsed.Round(time.Microsecond))
	}
	fmt.Printf("\nTotal elapsed %s\n", time.Since(start).Round(time.Millisecond))
}
