package sim

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/scl-mpc/scl/protocol"
)

// Manager manages the parts of a simulation that vary from run to run:
// which protocol to simulate, what to do with its output and with the
// traces the simulation produces, which network conditions to use, and
// which hooks to run.
//
// The only methods a concrete manager must implement are Protocol (which
// protocol each party runs) and HandleSimulatorOutput (what to do with
// the resulting traces); everything else has a sensible default,
// available by embedding BaseManager.
type Manager interface {
	// Protocol returns a fresh protocol instance for every party to run
	// in one simulation replication. The length of the returned slice
	// defines the number of parties; a nil entry means that party runs
	// no code.
	Protocol() []protocol.Protocol

	// HandleSimulatorOutput receives the finished trace for partyID at
	// the end of a run.
	HandleSimulatorOutput(partyID int, trace Trace)

	// HandleProtocolOutput receives any output a party's protocol chain
	// produced. The default discards it.
	HandleProtocolOutput(partyID int, output any)

	// NetworkConfiguration returns the network conditions to simulate.
	// The default is SimpleNetworkConfig.
	NetworkConfiguration() NetworkConfig

	// Hooks returns the hooks registered via AddHook.
	Hooks() []TriggerHook
}

// BaseManager supplies the default implementations of Manager's optional
// methods; embed it in a concrete manager and implement Protocol and
// HandleSimulatorOutput.
type BaseManager struct {
	hooks []TriggerHook
}

// HandleProtocolOutput discards output; override by defining the method
// on the embedding type.
func (b *BaseManager) HandleProtocolOutput(int, any) {}

// NetworkConfiguration returns SimpleNetworkConfig{}; override by
// defining the method on the embedding type.
func (b *BaseManager) NetworkConfiguration() NetworkConfig {
	return SimpleNetworkConfig{}
}

// AddHook registers a hook to run during the simulation.
func (b *BaseManager) AddHook(th TriggerHook) {
	b.hooks = append(b.hooks, th)
}

// Hooks returns every hook registered via AddHook.
func (b *BaseManager) Hooks() []TriggerHook {
	return b.hooks
}

// StreamManager is a Manager that writes each party's trace to an
// io.Writer as a JSON object {"party_id":..,"trace":..}, one line per
// party.
type StreamManager struct {
	BaseManager
	Writer       io.Writer
	ProtocolFunc func() []protocol.Protocol
}

// NewStreamManager builds a StreamManager writing to w, using protoFunc
// to produce a fresh protocol vector for each replication.
func NewStreamManager(w io.Writer, protoFunc func() []protocol.Protocol) *StreamManager {
	return &StreamManager{Writer: w, ProtocolFunc: protoFunc}
}

// Protocol implements Manager.
func (m *StreamManager) Protocol() []protocol.Protocol {
	return m.ProtocolFunc()
}

// HandleSimulatorOutput implements Manager, writing the trace to Writer.
func (m *StreamManager) HandleSimulatorOutput(partyID int, trace Trace) {
	data, err := json.Marshal(trace)
	if err != nil {
		return
	}
	fmt.Fprintf(m.Writer, "{\"party_id\":%d,\"trace\":%s}\n", partyID, data)
}
