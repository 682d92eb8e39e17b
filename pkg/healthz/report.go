package healthz

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("meshmodel/healthz", "server health monitoring")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)

// A check is healthy as long as it has been ticked within
// three of its periods.
type check struct {
	last    time.Time
	timeout time.Duration
}

var (
	lock   sync.Mutex
	checks = map[string]*check{}
)

// Start registers a periodic check, for example the worker of an
// asynchronous event dispatcher.
func Start(key string, period time.Duration) {
	lock.Lock()
	defer lock.Unlock()
	checks[key] = &check{last: time.Now(), timeout: 3 * period}
}

// Tick reports the liveness of a started check.
func Tick(key string) {
	lock.Lock()
	defer lock.Unlock()
	c := checks[key]
	if c == nil {
		log.Error("tick for unknown health check {{key}}", "key", key)
		return
	}
	c.last = time.Now()
}

func End(key string) {
	lock.Lock()
	defer lock.Unlock()
	delete(checks, key)
}

// HealthInfo evaluates all checks. The info contains one line per check
// ordered by key.
func HealthInfo() (bool, string) {
	lock.Lock()
	defer lock.Unlock()

	keys := make([]string, 0, len(checks))
	for k := range checks {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	healthy := true
	now := time.Now()
	var info strings.Builder
	for _, key := range keys {
		c := checks[key]
		delay := now.Sub(c.last)
		state := "ok"
		if delay > c.timeout {
			healthy = false
			state = "outdated"
			log.Warn("outdated health check {{key}}", "key", key, "delay", delay)
		}
		fmt.Fprintf(&info, "%s: %s (%s)\n", key, state, c.last.Format(time.RFC3339))
	}
	return healthy, info.String()
}
