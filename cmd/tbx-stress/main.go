package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/mirkobrombin/go-tbx/v1/critsect"
	"github.com/mirkobrombin/go-tbx/v1/metrics"
)

var (
	workers    = flag.Int("c", 10, "Number of concurrent workers")
	iterations = flag.Int("n", 10000, "Disable/Restore cycles per worker")
	listen     = flag.String("metrics", "", "Address to serve /metrics on (empty disables)")
)

func main() {
	flag.Parse()

	if *listen != "" {
		reg := metrics.NewRegistry()
		metrics.RegisterCoreMetrics(reg)
		http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			log.Fatal(http.ListenAndServe(*listen, nil))
		}()
	}

	log.Printf("Starting stress run: %d workers x %d cycles", *workers, *iterations)

	counter := 0
	start := time.Now()

	var eg errgroup.Group
	for w := 0; w < *workers; w++ {
		eg.Go(func() error {
			for i := 0; i < *iterations; i++ {
				s := critsect.Disable()
				counter++
				critsect.Restore(s)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatalf("Stress run failed: %v", err)
	}
	elapsed := time.Since(start)

	expected := *workers * *iterations
	log.Printf("Finished in %v", elapsed)
	log.Printf("Throughput: %.2f cycles/s", float64(expected)/elapsed.Seconds())
	if counter != expected {
		log.Fatalf("Lost updates: counter = %d, want %d", counter, expected)
	}
	log.Printf("Counter verified: %d", counter)
}
