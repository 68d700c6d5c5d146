package provider

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegionIndexBuildsOnce verifies that N concurrent first queries build
// the region-metadata index exactly once: the locale service is hit once per
// record in total, and every caller sees the same result.
func TestRegionIndexBuildsOnce(t *testing.T) {
	p, svc := newTestProvider(t)

	workers := runtime.GOMAXPROCS(0) * 4
	if workers < 16 {
		workers = 16
	}

	start := make(chan struct{})
	results := make([]string, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			<-start
			info, ok := p.RegionInfo("US")
			if ok {
				results[w] = info.Alpha3
			}
		}(w)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(len(fixture())), svc.regionCalls.Load(),
		"build must run exactly once: one ResolveRegion call per record")
	for w := 0; w < workers; w++ {
		assert.Equal(t, "USA", results[w], "worker %d", w)
	}
}

// TestTagIndexesBuildOnce verifies the tag-scanning indexes enumerate the
// catalog exactly once per index under concurrent first access.
func TestTagIndexesBuildOnce(t *testing.T) {
	p, svc := newTestProvider(t)

	workers := 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			<-start
			tag, ok := p.PrimaryLocale("US")
			if !ok || tag != "en-US" {
				t.Errorf("PrimaryLocale(US) = (%q, %v)", tag, ok)
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Equal(t, int32(1), svc.tagsCalls.Load(), "catalog enumerated once")
	require.Equal(t, int32(len(svc.tags)), svc.resolveCalls.Load(),
		"each tag resolved once")
}

// TestConcurrentMixedQueries hammers every query path at once; run with
// -race this exercises the publication safety of all six lazy cells.
func TestConcurrentMixedQueries(t *testing.T) {
	p, _ := newTestProvider(t)

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				switch (w + i) % 8 {
				case 0:
					p.ByCode("us")
				case 1:
					p.ByPhoneCode("+1")
				case 2:
					p.ByCurrency("EUR")
				case 3:
					p.ByLanguage("en")
				case 4:
					p.RegionInfo("GB")
				case 5:
					p.PrimaryLocale("CA")
				case 6:
					p.Locales("US")
				case 7:
					p.ByRegionName("California")
				}
			}
		}(w)
	}
	wg.Wait()

	// Sanity after the storm.
	got := p.ByCurrency("EUR")
	assert.Equal(t, []string{"FR", "DE"}, codesOf(got))
}
