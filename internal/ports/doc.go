// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports (StageSequencer, AssignmentGateway, StageService) are implemented
// by the application layer and called by handlers. Store ports (StageStore,
// ProjectStore) are implemented by outbound adapters and called by the
// application layer.
package ports
