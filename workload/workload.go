// Package workload drives a fit.Allocator with a synthetic sequence of allocation and free requests and
// collects the outcome, so that strategies can be compared under the same load.
package workload

import (
	"context"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/fitsim/memutils"
	"github.com/vkngwrapper/fitsim/memutils/fit"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// Scenario selects the shape of the generated requests
type Scenario uint32

const (
	// ScenarioRandom alternates randomly between allocating a random size and freeing either the oldest
	// or a random outstanding region
	ScenarioRandom Scenario = iota + 1
	// ScenarioBrowser mixes many small, short-lived "page" regions with a few large, long-lived
	// "servlet" regions
	ScenarioBrowser
)

var scenarioMapping = map[Scenario]string{
	ScenarioRandom:  "random",
	ScenarioBrowser: "browser",
}

func (s Scenario) String() string {
	return scenarioMapping[s]
}

func ParseScenario(name string) (Scenario, error) {
	for scenario, scenarioName := range scenarioMapping {
		if strings.EqualFold(scenarioName, name) {
			return scenario, nil
		}
	}

	return 0, errors.Newf("unknown scenario %q", name)
}

const (
	// MinActions is the smallest number of actions a run accepts: the standard deviation of the free
	// list length needs at least two samples
	MinActions = 2

	contextCheckInterval = 1024

	browserPageLimit    = 32
	browserServletLimit = 8
)

// Config describes one workload run
type Config struct {
	// Scenario is the request pattern; ScenarioRandom if left zero
	Scenario Scenario
	// Actions is the number of Alloc and Free calls to issue
	Actions int
	// Seed seeds the request generator. Runs with the same seed, size and strategy behave identically.
	Seed int64
	// MaxRequest is the largest size requested by the random scenario and the largest servlet in the
	// browser scenario. If zero, a sixteenth of the allocator's size is used.
	MaxRequest int
}

// Result is the outcome of a run
type Result struct {
	Scenario    Scenario
	Actions     int
	Allocations int
	Frees       int
	OutOfMemory int
	Elapsed     time.Duration

	// Report is the allocator's report taken when the last action completed
	Report fit.Report
	// Final describes the allocator's space when the last action completed, before the driver
	// returned its outstanding regions
	Final memutils.DetailedStatistics
}

// WriteJSON populates a json object with the result's fields
func (r Result) WriteJSON(json jwriter.ObjectState) {
	json.Name("Scenario").String(r.Scenario.String())
	json.Name("Actions").Int(r.Actions)
	json.Name("Allocations").Int(r.Allocations)
	json.Name("Frees").Int(r.Frees)
	json.Name("OutOfMemory").Int(r.OutOfMemory)
	json.Name("ElapsedNanoseconds").Int(int(r.Elapsed.Nanoseconds()))

	report := json.Name("Report").Object()
	r.Report.WriteJSON(report)
	report.End()

	final := json.Name("Final").Object()
	final.Name("TotalUnits").Int(r.Final.TotalUnits)
	final.Name("AllocationUnits").Int(r.Final.AllocationUnits)
	final.Name("Allocations").Int(r.Final.AllocationCount)
	final.Name("FreeRegions").Int(r.Final.UnusedRangeCount)
	final.Name("LargestFreeRegion").Int(r.Final.UnusedRangeSizeMax)
	final.Name("Fragmentation").Float64(r.Final.Fragmentation())
	final.End()
}

// Driver issues a workload against a single Allocator. A Driver is as single-threaded as the Allocator
// it drives.
type Driver struct {
	logger    *slog.Logger
	allocator fit.Allocator
	config    Config
	rng       *rand.Rand

	// held is ordered oldest first
	held     []*fit.Region
	servlets []*fit.Region

	result Result
}

// New prepares a Driver for an Allocator that has already been configured. logger may be nil.
func New(logger *slog.Logger, allocator fit.Allocator, config Config) (*Driver, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if config.Scenario == 0 {
		config.Scenario = ScenarioRandom
	}
	if _, known := scenarioMapping[config.Scenario]; !known {
		return nil, errors.Newf("unknown scenario %d", config.Scenario)
	}

	if config.Actions < MinActions {
		return nil, errors.Newf("a workload needs at least %d actions, but %d were requested", MinActions, config.Actions)
	}

	size := allocator.Size()
	if err := memutils.CheckPositive(size, "allocator size"); err != nil {
		return nil, errors.Wrap(err, "the allocator must be configured before it is driven")
	}

	if config.MaxRequest == 0 {
		config.MaxRequest = max(size/16, 1)
	}
	if config.MaxRequest < 0 || config.MaxRequest > size {
		return nil, errors.Newf("the largest request must be between 1 and %d, but is %d", size, config.MaxRequest)
	}

	return &Driver{
		logger:    logger,
		allocator: allocator,
		config:    config,
		rng:       rand.New(rand.NewSource(config.Seed)),
		result:    Result{Scenario: config.Scenario},
	}, nil
}

// Run issues the configured number of actions, then returns every region still outstanding to the
// allocator and validates it. Out-of-memory outcomes are counted, not returned as errors.
func (d *Driver) Run(ctx context.Context) (Result, error) {
	d.logger.Info("starting workload",
		slog.String("strategy", d.allocator.Name()),
		slog.String("scenario", d.config.Scenario.String()),
		slog.Int("actions", d.config.Actions),
		slog.Int("size", d.allocator.Size()))

	start := time.Now()
	for action := 0; action < d.config.Actions; action++ {
		if action%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return d.result, errors.Wrapf(err, "workload stopped after %d actions", action)
			}
		}

		var err error
		switch d.config.Scenario {
		case ScenarioBrowser:
			err = d.browserStep()
		default:
			err = d.randomStep()
		}
		if err != nil {
			return d.result, errors.Wrapf(err, "action %d", action)
		}
		d.result.Actions++
	}
	d.result.Elapsed = time.Since(start)

	d.result.Report = d.allocator.Report()
	d.result.Final.Clear()
	d.allocator.AddDetailedStatistics(&d.result.Final)

	d.releaseAll()

	if err := d.allocator.Validate(); err != nil {
		return d.result, errors.Wrapf(err, "%s failed validation after the workload", d.allocator.Name())
	}

	d.logger.Info("finished workload",
		slog.Any("report", d.result.Report),
		slog.Int("outOfMemory", d.result.OutOfMemory),
		slog.Duration("elapsed", d.result.Elapsed))

	return d.result, nil
}

func (d *Driver) randomStep() error {
	if len(d.held) == 0 || d.rng.Intn(2) == 0 {
		return d.request(&d.held, 1+d.rng.Intn(d.config.MaxRequest))
	}

	if d.rng.Intn(2) == 0 {
		d.release(&d.held, 0)
	} else {
		d.release(&d.held, d.rng.Intn(len(d.held)))
	}
	return nil
}

func (d *Driver) browserStep() error {
	switch {
	case len(d.held) >= browserPageLimit:
		d.release(&d.held, 0)
	case len(d.servlets) >= browserServletLimit && d.rng.Intn(4) == 0:
		d.release(&d.servlets, d.rng.Intn(len(d.servlets)))
	case len(d.servlets) < browserServletLimit && d.rng.Intn(10) == 0:
		return d.request(&d.servlets, d.servletSize(d.rng.Intn(browserServletLimit)))
	default:
		return d.request(&d.held, 1+d.rng.Intn(max(d.config.MaxRequest/8, 1)))
	}
	return nil
}

// servletSize maps a servlet number onto one of a few fixed sizes between a quarter of MaxRequest and
// MaxRequest itself, so that servlets of the same kind always ask for the same amount
func (d *Driver) servletSize(number int) int {
	quarter := max(d.config.MaxRequest/4, 1)
	return min(quarter*(1+number%4), d.config.MaxRequest)
}

func (d *Driver) request(pool *[]*fit.Region, size int) error {
	region, err := d.allocator.Alloc(size)
	if errors.Is(err, memutils.ErrOutOfMemory) {
		d.result.OutOfMemory++
		d.logger.Debug("allocation failed", slog.Int("wanted", size), slog.Int("outstanding", len(d.held)+len(d.servlets)))
		return nil
	} else if err != nil {
		return errors.Wrapf(err, "allocating %d units from %s", size, d.allocator.Name())
	}

	d.result.Allocations++
	*pool = append(*pool, region)
	d.logger.Debug("allocated", slog.String("region", region.String()))
	return nil
}

func (d *Driver) release(pool *[]*fit.Region, index int) {
	region := (*pool)[index]
	*pool = slices.Delete(*pool, index, index+1)

	d.logger.Debug("freeing", slog.String("region", region.String()))
	d.allocator.Free(region)
	d.result.Frees++
}

func (d *Driver) releaseAll() {
	for _, pool := range []*[]*fit.Region{&d.held, &d.servlets} {
		for len(*pool) > 0 {
			region := (*pool)[0]
			*pool = (*pool)[1:]
			d.allocator.Free(region)
		}
	}
}
