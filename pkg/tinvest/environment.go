package tinvest

// Environment selects which deployment of the public API a client
// talks to.
type Environment int

const (
	// Production is the live API with real accounts and money.
	Production Environment = iota
	// Sandbox simulates the production API on paper accounts.
	Sandbox
)

const (
	// ProductionEndpoint is the gRPC target of the live API.
	ProductionEndpoint = "invest-public-api.tinkoff.ru:443"
	// SandboxEndpoint is the gRPC target of the sandbox API.
	SandboxEndpoint = "sandbox-invest-public-api.tinkoff.ru:443"
)

// Endpoint returns the host:port gRPC target for the environment.
func (e Environment) Endpoint() string {
	if e == Sandbox {
		return SandboxEndpoint
	}
	return ProductionEndpoint
}

func (e Environment) String() string {
	if e == Sandbox {
		return "sandbox"
	}
	return "production"
}
