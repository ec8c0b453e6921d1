package sim

// Default parameters for a simulated TCP-like channel, matching the
// original's kDefault* constants.
const (
	DefaultBandwidth  = 1_000_000 // bits/s
	DefaultRTT        = 100       // ms
	DefaultMSS        = 1460      // bytes
	DefaultPacketLoss = 0.0       // percentage, as a fraction in [0, 1)
	DefaultWindowSize = 65536     // bytes
)

// ChannelConfig describes the simulated network conditions of a single
// channel: the parameters ComputeRecvTime needs to turn a packet size into
// a delivery delay.
type ChannelConfig struct {
	Bandwidth  int     // bits/s
	RTT        int     // ms
	MSS        int     // bytes
	PacketLoss float64 // fraction in [0, 1)
	WindowSize int     // bytes

	// Loopback channels (a party talking to itself) deliver instantly,
	// regardless of the other fields.
	Loopback bool
}

// DefaultChannelConfig returns a channel config with the original's
// default TCP-like parameters.
func DefaultChannelConfig() ChannelConfig {
	return ChannelConfig{
		Bandwidth:  DefaultBandwidth,
		RTT:        DefaultRTT,
		MSS:        DefaultMSS,
		PacketLoss: DefaultPacketLoss,
		WindowSize: DefaultWindowSize,
	}
}

// LoopbackChannelConfig returns a channel config for a same-party channel:
// instant delivery.
func LoopbackChannelConfig() ChannelConfig {
	return ChannelConfig{Loopback: true}
}

// NetworkConfig maps a channel to the configuration the simulator should
// use for it.
type NetworkConfig interface {
	ConfigFor(cid ChannelID) ChannelConfig
}

// NetworkConfigFunc adapts a plain function to NetworkConfig.
type NetworkConfigFunc func(cid ChannelID) ChannelConfig

// ConfigFor implements NetworkConfig.
func (f NetworkConfigFunc) ConfigFor(cid ChannelID) ChannelConfig { return f(cid) }

// SimpleNetworkConfig is the default network configuration: the same
// default parameters for every channel between distinct parties, and
// instant delivery for a party's channel to itself.
type SimpleNetworkConfig struct{}

// ConfigFor implements NetworkConfig.
func (SimpleNetworkConfig) ConfigFor(cid ChannelID) ChannelConfig {
	if cid.Local == cid.Remote {
		return LoopbackChannelConfig()
	}
	return DefaultChannelConfig()
}
