package service

import (
	"context"
	"net"

	"hello-web/internal/model/response"
)

type Resolver interface {
	Hostname(ctx context.Context, addr net.Addr) string
}

// Greeting is fixed at startup and shared read-only by every request.
type Greeting struct {
	Port    int
	Name    string
	HasName bool
}

type GreetingService struct {
	greeting *Greeting
	resolver Resolver
}

func NewGreetingService(greeting *Greeting, resolver Resolver) *GreetingService {
	return &GreetingService{
		greeting: greeting,
		resolver: resolver,
	}
}

// Page builds the greeting for a request that arrived on local.
func (gs *GreetingService) Page(ctx context.Context, local net.Addr) response.GreetingPage {
	return response.GreetingPage{
		Address: gs.resolver.Hostname(ctx, local),
		Port:    gs.greeting.Port,
		Name:    gs.greeting.Name,
		HasName: gs.greeting.HasName,
	}
}
