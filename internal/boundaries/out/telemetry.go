package out

import "context"

// EndFunc finishes an operation started with NetworkTelemetry.Start.
type EndFunc func(outcome string, err error)

// NetworkTelemetry records traces and metrics for network operations.
type NetworkTelemetry interface {
	Start(ctx context.Context, operation, network string) (context.Context, EndFunc)
	RecordKills(ctx context.Context, network string, killed, skipped, failed int)
}
