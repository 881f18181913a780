package service_mocks

//go:generate mockgen -destination=service_mocks.go -package=service_mocks stablestash/internal/services YieldServiceInterface,PoolAdapterInterface,ForwardingServiceInterface,CustodyClientInterface,SettlementVerifierInterface,MetricsRecorderInterface,CircuitBreakerInterface

// This file contains the go:generate directive to generate mocks for the
// service collaborator interfaces. To regenerate the mocks, run:
//   go generate ./internal/services/service_mocks
