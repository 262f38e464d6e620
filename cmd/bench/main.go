// Command bench runs a synthetic archipelago workload and exposes optional
// pprof/Prometheus endpoints.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/louisXW/pagmo/archipelago"
	"github.com/louisXW/pagmo/demo/hillclimb"
	"github.com/louisXW/pagmo/demo/sphere"
	pmet "github.com/louisXW/pagmo/metrics/prom"
	"github.com/louisXW/pagmo/policy"
	"github.com/louisXW/pagmo/policy/fixed"
	"github.com/louisXW/pagmo/topology"
)

func main() {
	// ---- Flags ----
	var (
		islandsN  = flag.Int("islands", 8, "number of islands")
		popSize   = flag.Int("pop", 40, "per-island population size")
		dim       = flag.Int("dim", 10, "decision vector dimension")
		direction = flag.String("direction", "destination", "migration direction: source | destination")
		dist      = flag.String("distribution", "point_to_point", "distribution: point_to_point | broadcast")
		rate      = flag.Int("migrate", 2, "absolute migration rate per island")
		duration  = flag.Duration("duration", 5*time.Second, "benchmark duration")
		seed      = flag.Int64("seed", time.Now().UnixNano(), "random seed")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "pagmo", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	// ---- Build archipelago ----
	opt := archipelago.Options{Metrics: metrics}
	switch *direction {
	case "source":
		opt.Direction = archipelago.Source
	case "destination":
		opt.Direction = archipelago.Destination
	default:
		log.Fatalf("unknown direction: %q (use source or destination)", *direction)
	}
	switch *dist {
	case "point_to_point":
		opt.Distribution = archipelago.PointToPoint
	case "broadcast":
		opt.Distribution = archipelago.Broadcast
	default:
		log.Fatalf("unknown distribution: %q (use point_to_point or broadcast)", *dist)
	}

	prob := sphere.New(*dim, 5.0)
	algo := hillclimb.New(prob, 0.1, *seed)
	topo := ring(*islandsN)
	sel := fixed.NewSelection(policy.Rate{Abs: *rate})
	repl := fixed.NewReplacement()

	arch, err := archipelago.NewPopulated(prob, algo, *islandsN, *popSize, topo, sel, repl, opt)
	if err != nil {
		log.Fatalf("build archipelago: %v", err)
	}

	// ---- Run ----
	start := time.Now()
	if err := arch.EvolveFor(*duration); err != nil {
		log.Fatalf("evolve: %v", err)
	}
	if err := arch.Join(); err != nil {
		log.Fatalf("join: %v", err)
	}
	elapsed := time.Since(start)

	// ---- Report ----
	hist := arch.DumpMigrHistory()
	fmt.Printf("islands=%d pop=%d dim=%d direction=%s distribution=%s dur=%v seed=%d\n",
		*islandsN, *popSize, *dim, *direction, *dist, elapsed, *seed)
	fmt.Printf("migrations=%d\n", len(hist))
	fmt.Println(arch.HumanReadable())
}

// ring returns a ring topology 0-1-2-...-(n-1)-0.
func ring(n int) topology.Topology {
	g := topology.NewGraph(n)
	if n < 2 {
		return g
	}
	for i := 0; i < n; i++ {
		g.Connect(i, (i+1)%n)
	}
	return g
}
