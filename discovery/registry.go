package discovery

import (
	"context"
	"log"
	"time"
)

// ServiceRegistration keeps one service instance registered for its
// lifetime: register once, renew the health check every second, and
// deregister on shutdown.
type ServiceRegistration struct {
	registry    Registry
	instanceID  string
	serviceName string
	stopChan    chan struct{}
}

// RegisterService registers the instance with the registry and starts
// the background health check loop.
func RegisterService(ctx context.Context, registry Registry, instanceID, serviceName, hostPort string) (*ServiceRegistration, error) {
	if err := registry.Register(ctx, instanceID, serviceName, hostPort); err != nil {
		return nil, err
	}

	reg := &ServiceRegistration{
		registry:    registry,
		instanceID:  instanceID,
		serviceName: serviceName,
		stopChan:    make(chan struct{}),
	}

	go reg.healthCheckLoop()

	return reg, nil
}

func (r *ServiceRegistration) healthCheckLoop() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopChan:
			return
		case <-ticker.C:
			if err := r.registry.HealthCheck(r.instanceID, r.serviceName); err != nil {
				log.Printf("Health check failed for %s: %v", r.instanceID, err)
			}
		}
	}
}

// Deregister stops the health check loop and removes the instance from
// the registry.
func (r *ServiceRegistration) Deregister(ctx context.Context) error {
	close(r.stopChan)
	return r.registry.Deregister(ctx, r.instanceID, r.serviceName)
}
