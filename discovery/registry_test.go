// The registration tests live in an external package because they use
// the in-memory registry, which itself imports discovery.
package discovery_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlim2012/distributed-toy-store/discovery"
	"github.com/dlim2012/distributed-toy-store/discovery/inmem"
)

// countingRegistry wraps the in-memory registry and counts health check
// renewals so the background loop becomes observable.
type countingRegistry struct {
	*inmem.Registry

	mu           sync.Mutex
	healthChecks int
}

func (c *countingRegistry) HealthCheck(instanceID, serviceName string) error {
	c.mu.Lock()
	c.healthChecks++
	c.mu.Unlock()
	return c.Registry.HealthCheck(instanceID, serviceName)
}

func (c *countingRegistry) HealthChecks() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.healthChecks
}

// failingRegistry rejects every registration.
type failingRegistry struct {
	*inmem.Registry
}

func (f *failingRegistry) Register(ctx context.Context, instanceID, serviceName, hostPort string) error {
	return errors.New("connection refused")
}

func TestRegisterServiceLifecycle(t *testing.T) {
	registry := inmem.NewRegistry()

	reg, err := discovery.RegisterService(context.Background(), registry, "catalog-1", "catalog", "127.0.0.1:1130")
	require.NoError(t, err)

	addrs, err := registry.Discover(context.Background(), "catalog")
	require.NoError(t, err)
	assert.Equal(t, []string{"127.0.0.1:1130"}, addrs)

	require.NoError(t, reg.Deregister(context.Background()))
	_, err = registry.Discover(context.Background(), "catalog")
	assert.Error(t, err)
}

func TestRegisterServiceRenewsHealthCheck(t *testing.T) {
	registry := &countingRegistry{Registry: inmem.NewRegistry()}

	reg, err := discovery.RegisterService(context.Background(), registry, "order-1", "order", "127.0.0.1:1121")
	require.NoError(t, err)
	defer reg.Deregister(context.Background())

	// The loop ticks once per second.
	assert.Eventually(t, func() bool {
		return registry.HealthChecks() >= 2
	}, 5*time.Second, 50*time.Millisecond)
}

func TestRegisterServiceSurfacesRegisterFailure(t *testing.T) {
	registry := &failingRegistry{Registry: inmem.NewRegistry()}

	_, err := discovery.RegisterService(context.Background(), registry, "order-1", "order", "127.0.0.1:1121")
	assert.Error(t, err)
}

func TestGenerateInstanceID(t *testing.T) {
	id := discovery.GenerateInstanceID("order-2")
	assert.True(t, strings.HasPrefix(id, "order-2-"))
}
